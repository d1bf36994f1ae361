package group

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository handles group data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new group repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a group and its initial participants in one transaction
func (r *Repository) Create(ctx context.Context, g *Group) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO groups (id, name, currency)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`
	if err := tx.QueryRowContext(ctx, query, g.ID, g.Name, g.Currency).Scan(&g.CreatedAt); err != nil {
		return fmt.Errorf("failed to create group: %w", err)
	}

	participantQuery := `
		INSERT INTO participants (id, group_id, name)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`
	for _, p := range g.Participants {
		if err := tx.QueryRowContext(ctx, participantQuery, p.ID, g.ID, p.Name).Scan(&p.CreatedAt); err != nil {
			return fmt.Errorf("failed to create participant: %w", err)
		}
	}

	return tx.Commit()
}

// GetByID retrieves a group by its ID. Returns nil when it does not exist.
func (r *Repository) GetByID(ctx context.Context, id string) (*Group, error) {
	query := `
		SELECT id, name, currency, created_at
		FROM groups
		WHERE id = $1
	`

	g := &Group{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&g.ID, &g.Name, &g.Currency, &g.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	return g, nil
}

// Update changes a group's name and/or currency
func (r *Repository) Update(ctx context.Context, g *Group) error {
	query := `
		UPDATE groups
		SET name = $2, currency = $3
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query, g.ID, g.Name, g.Currency)
	if err != nil {
		return fmt.Errorf("failed to update group: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update group: %w", err)
	}
	if affected == 0 {
		return ErrGroupNotFound
	}
	return nil
}

// ListParticipants retrieves the group's participants in creation order
func (r *Repository) ListParticipants(ctx context.Context, groupID string) ([]*Participant, error) {
	query := `
		SELECT id, group_id, name, created_at
		FROM participants
		WHERE group_id = $1
		ORDER BY created_at, id
	`

	rows, err := r.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	defer rows.Close()

	var participants []*Participant
	for rows.Next() {
		p := &Participant{}
		if err := rows.Scan(&p.ID, &p.GroupID, &p.Name, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, p)
	}
	return participants, rows.Err()
}

// GetParticipant retrieves one participant of a group. Returns nil when
// the participant does not exist in that group.
func (r *Repository) GetParticipant(ctx context.Context, groupID, participantID string) (*Participant, error) {
	query := `
		SELECT id, group_id, name, created_at
		FROM participants
		WHERE id = $1 AND group_id = $2
	`

	p := &Participant{}
	err := r.db.QueryRowContext(ctx, query, participantID, groupID).Scan(&p.ID, &p.GroupID, &p.Name, &p.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}
	return p, nil
}

// AddParticipant inserts a new participant into a group
func (r *Repository) AddParticipant(ctx context.Context, p *Participant) error {
	query := `
		INSERT INTO participants (id, group_id, name)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`
	if err := r.db.QueryRowContext(ctx, query, p.ID, p.GroupID, p.Name).Scan(&p.CreatedAt); err != nil {
		return fmt.Errorf("failed to add participant: %w", err)
	}
	return nil
}

// RemoveParticipant deletes a participant from a group
func (r *Repository) RemoveParticipant(ctx context.Context, groupID, participantID string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM participants WHERE id = $1 AND group_id = $2`, participantID, groupID)
	if err != nil {
		return fmt.Errorf("failed to remove participant: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to remove participant: %w", err)
	}
	if affected == 0 {
		return ErrParticipantNotFound
	}
	return nil
}
