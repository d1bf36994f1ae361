package expense

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/splitpot/backend/internal/expense/split"
)

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("inserts expense and paid-for rows in order", func(t *testing.T) {
		e := &Expense{
			ID:        "exp1",
			GroupID:   "grp1",
			Title:     "Dinner",
			Amount:    9000,
			PaidBy:    "alice",
			SplitMode: split.ModeEvenly,
			PaidFor: []PaidFor{
				{ParticipantID: "alice", Shares: 1},
				{ParticipantID: "bob", Shares: 1},
			},
		}

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO expenses").
			WithArgs("exp1", "grp1", "Dinner", int64(9000), false, "alice", split.ModeEvenly).
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))
		mock.ExpectExec("INSERT INTO expense_paid_for").
			WithArgs("exp1", "alice", int64(1), 0).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec("INSERT INTO expense_paid_for").
			WithArgs("exp1", "bob", int64(1), 1).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		err := repo.Create(context.Background(), e)
		assert.NoError(t, err)
		assert.False(t, e.CreatedAt.IsZero())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when a paid-for insert fails", func(t *testing.T) {
		e := &Expense{
			ID:        "exp2",
			GroupID:   "grp1",
			Title:     "Taxi",
			Amount:    1500,
			PaidBy:    "bob",
			SplitMode: split.ModeEvenly,
			PaidFor:   []PaidFor{{ParticipantID: "ghost", Shares: 1}},
		}

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO expenses").
			WithArgs("exp2", "grp1", "Taxi", int64(1500), false, "bob", split.ModeEvenly).
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))
		mock.ExpectExec("INSERT INTO expense_paid_for").
			WithArgs("exp2", "ghost", int64(1), 0).
			WillReturnError(assert.AnError)
		mock.ExpectRollback()

		err := repo.Create(context.Background(), e)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("loads expense with ordered paid-for rows", func(t *testing.T) {
		createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

		mock.ExpectQuery("SELECT id, group_id, title, amount, is_reimbursement, paid_by, split_mode, created_at FROM expenses").
			WithArgs("exp1").
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "group_id", "title", "amount", "is_reimbursement", "paid_by", "split_mode", "created_at",
			}).AddRow("exp1", "grp1", "Dinner", 9000, false, "alice", "BY_SHARES", createdAt))
		mock.ExpectQuery("SELECT expense_id, participant_id, shares FROM expense_paid_for").
			WillReturnRows(sqlmock.NewRows([]string{"expense_id", "participant_id", "shares"}).
				AddRow("exp1", "bob", 2).
				AddRow("exp1", "alice", 1))

		e, err := repo.GetByID(context.Background(), "exp1")
		assert.NoError(t, err)
		assert.Equal(t, "Dinner", e.Title)
		assert.Equal(t, split.ModeByShares, e.SplitMode)
		assert.Equal(t, []PaidFor{
			{ParticipantID: "bob", Shares: 2},
			{ParticipantID: "alice", Shares: 1},
		}, e.PaidFor)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns nil when not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, group_id, title, amount, is_reimbursement, paid_by, split_mode, created_at FROM expenses").
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "group_id", "title", "amount", "is_reimbursement", "paid_by", "split_mode", "created_at",
			}))

		e, err := repo.GetByID(context.Background(), "missing")
		assert.NoError(t, err)
		assert.Nil(t, e)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("replaces paid-for rows", func(t *testing.T) {
		e := &Expense{
			ID:        "exp1",
			Title:     "Dinner (corrected)",
			Amount:    9100,
			PaidBy:    "alice",
			SplitMode: split.ModeEvenly,
			PaidFor:   []PaidFor{{ParticipantID: "bob", Shares: 1}},
		}

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE expenses").
			WithArgs("exp1", "Dinner (corrected)", int64(9100), false, "alice", split.ModeEvenly).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("DELETE FROM expense_paid_for").
			WithArgs("exp1").
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec("INSERT INTO expense_paid_for").
			WithArgs("exp1", "bob", int64(1), 0).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		err := repo.Update(context.Background(), e)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reports missing expense", func(t *testing.T) {
		e := &Expense{ID: "missing", Title: "x", SplitMode: split.ModeEvenly}

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE expenses").
			WithArgs("missing", "x", int64(0), false, "", split.ModeEvenly).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.Update(context.Background(), e)
		assert.ErrorIs(t, err, ErrExpenseNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectExec("DELETE FROM expenses").
		WithArgs("exp1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(context.Background(), "exp1"))

	mock.ExpectExec("DELETE FROM expenses").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), "missing"), ErrExpenseNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CountByParticipantID(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery("SELECT COUNT").
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountByParticipantID(context.Background(), "alice")
	assert.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
