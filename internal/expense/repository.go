package expense

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

// Repository handles expense data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new expense repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts an expense and its paid-for rows in one transaction.
// Row positions record the paid-for order; the allocator depends on it.
func (r *Repository) Create(ctx context.Context, e *Expense) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO expenses (id, group_id, title, amount, is_reimbursement, paid_by, split_mode)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`
	err = tx.QueryRowContext(ctx, query,
		e.ID, e.GroupID, e.Title, e.Amount, e.IsReimbursement, e.PaidBy, e.SplitMode,
	).Scan(&e.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}

	if err := r.insertPaidFor(ctx, tx, e); err != nil {
		return err
	}

	return tx.Commit()
}

// GetByID retrieves an expense with its ordered paid-for rows.
// Returns nil when the expense does not exist.
func (r *Repository) GetByID(ctx context.Context, id string) (*Expense, error) {
	query := `
		SELECT id, group_id, title, amount, is_reimbursement, paid_by, split_mode, created_at
		FROM expenses
		WHERE id = $1
	`

	e := &Expense{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&e.ID,
		&e.GroupID,
		&e.Title,
		&e.Amount,
		&e.IsReimbursement,
		&e.PaidBy,
		&e.SplitMode,
		&e.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	if err := r.loadPaidFor(ctx, []*Expense{e}); err != nil {
		return nil, err
	}
	return e, nil
}

// ListByGroupID retrieves all expenses of a group in creation order, each
// with its ordered paid-for rows.
func (r *Repository) ListByGroupID(ctx context.Context, groupID string) ([]*Expense, error) {
	query := `
		SELECT id, group_id, title, amount, is_reimbursement, paid_by, split_mode, created_at
		FROM expenses
		WHERE group_id = $1
		ORDER BY created_at, id
	`

	rows, err := r.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*Expense
	for rows.Next() {
		e := &Expense{}
		if err := rows.Scan(
			&e.ID,
			&e.GroupID,
			&e.Title,
			&e.Amount,
			&e.IsReimbursement,
			&e.PaidBy,
			&e.SplitMode,
			&e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	if err := r.loadPaidFor(ctx, expenses); err != nil {
		return nil, err
	}
	return expenses, nil
}

// Update replaces an expense's content and its paid-for rows.
func (r *Repository) Update(ctx context.Context, e *Expense) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE expenses
		SET title = $2, amount = $3, is_reimbursement = $4, paid_by = $5, split_mode = $6
		WHERE id = $1
	`
	result, err := tx.ExecContext(ctx, query, e.ID, e.Title, e.Amount, e.IsReimbursement, e.PaidBy, e.SplitMode)
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	if affected == 0 {
		return ErrExpenseNotFound
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM expense_paid_for WHERE expense_id = $1`, e.ID); err != nil {
		return fmt.Errorf("failed to clear paid-for rows: %w", err)
	}
	if err := r.insertPaidFor(ctx, tx, e); err != nil {
		return err
	}

	return tx.Commit()
}

// Delete removes an expense; paid-for rows go with it via ON DELETE CASCADE.
func (r *Repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	if affected == 0 {
		return ErrExpenseNotFound
	}
	return nil
}

// CountByParticipantID reports how many expenses reference a participant,
// as payer or beneficiary.
func (r *Repository) CountByParticipantID(ctx context.Context, participantID string) (int, error) {
	query := `
		SELECT COUNT(DISTINCT e.id)
		FROM expenses e
		LEFT JOIN expense_paid_for pf ON pf.expense_id = e.id
		WHERE e.paid_by = $1 OR pf.participant_id = $1
	`

	var count int
	if err := r.db.QueryRowContext(ctx, query, participantID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count expenses for participant: %w", err)
	}
	return count, nil
}

func (r *Repository) insertPaidFor(ctx context.Context, tx *sql.Tx, e *Expense) error {
	query := `
		INSERT INTO expense_paid_for (expense_id, participant_id, shares, position)
		VALUES ($1, $2, $3, $4)
	`
	for i, pf := range e.PaidFor {
		if _, err := tx.ExecContext(ctx, query, e.ID, pf.ParticipantID, pf.Shares, i); err != nil {
			return fmt.Errorf("failed to create paid-for row: %w", err)
		}
	}
	return nil
}

// loadPaidFor fills the PaidFor slices of the given expenses, preserving
// the stored positions.
func (r *Repository) loadPaidFor(ctx context.Context, expenses []*Expense) error {
	if len(expenses) == 0 {
		return nil
	}

	byID := make(map[string]*Expense, len(expenses))
	ids := make([]string, len(expenses))
	for i, e := range expenses {
		byID[e.ID] = e
		ids[i] = e.ID
	}

	query := `
		SELECT expense_id, participant_id, shares
		FROM expense_paid_for
		WHERE expense_id = ANY($1)
		ORDER BY expense_id, position
	`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("failed to load paid-for rows: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var expenseID string
		var pf PaidFor
		if err := rows.Scan(&expenseID, &pf.ParticipantID, &pf.Shares); err != nil {
			return fmt.Errorf("failed to scan paid-for row: %w", err)
		}
		if e, ok := byID[expenseID]; ok {
			e.PaidFor = append(e.PaidFor, pf)
		}
	}
	return rows.Err()
}
