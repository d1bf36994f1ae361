package expense

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/splitpot/backend/internal/activity"
	"github.com/splitpot/backend/internal/expense/split"
	"github.com/splitpot/backend/internal/group"
)

func newTestService(t *testing.T) (*Service, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	svc := NewService(
		NewRepository(db),
		group.NewRepository(db),
		split.NewFactory(),
		activity.NewService(activity.NewRepository(db)),
	)
	return svc, mock
}

// expectGroupLookup mocks the group existence check plus its participant
// list, which Create and Update run before touching the expense tables.
func expectGroupLookup(mock sqlmock.Sqlmock, groupID string, participantIDs ...string) {
	createdAt := time.Now()
	mock.ExpectQuery("SELECT id, name, currency, created_at FROM groups").
		WithArgs(groupID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "currency", "created_at"}).
			AddRow(groupID, "Trip", "EUR", createdAt))

	rows := sqlmock.NewRows([]string{"id", "group_id", "name", "created_at"})
	for _, id := range participantIDs {
		rows.AddRow(id, groupID, "participant "+id, createdAt)
	}
	mock.ExpectQuery("SELECT id, group_id, name, created_at FROM participants").
		WithArgs(groupID).
		WillReturnRows(rows)
}

func TestService_Create(t *testing.T) {
	t.Run("rejects a payer outside the group", func(t *testing.T) {
		svc, mock := newTestService(t)
		expectGroupLookup(mock, "grp1", "p1", "p2")

		_, err := svc.Create(context.Background(), "grp1", "", &CreateExpenseRequest{
			GroupID:   "grp1",
			Title:     "Dinner",
			Amount:    5000,
			PaidBy:    "stranger",
			SplitMode: "EVENLY",
			PaidFor:   []*PaidForInput{{ParticipantID: "p1"}},
		})
		assert.ErrorIs(t, err, ErrUnknownParticipant)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects a beneficiary listed twice", func(t *testing.T) {
		svc, mock := newTestService(t)
		expectGroupLookup(mock, "grp1", "p1", "p2")

		_, err := svc.Create(context.Background(), "grp1", "", &CreateExpenseRequest{
			GroupID:   "grp1",
			Title:     "Dinner",
			Amount:    5000,
			PaidBy:    "p1",
			SplitMode: "EVENLY",
			PaidFor:   []*PaidForInput{{ParticipantID: "p2"}, {ParticipantID: "p2"}},
		})
		assert.ErrorIs(t, err, ErrDuplicateBeneficiary)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects percentages that do not sum to 100", func(t *testing.T) {
		svc, mock := newTestService(t)
		expectGroupLookup(mock, "grp1", "p1", "p2")

		_, err := svc.Create(context.Background(), "grp1", "", &CreateExpenseRequest{
			GroupID:   "grp1",
			Title:     "Dinner",
			Amount:    5000,
			PaidBy:    "p1",
			SplitMode: "BY_PERCENTAGE",
			PaidFor: []*PaidForInput{
				{ParticipantID: "p1", Shares: 5000},
				{ParticipantID: "p2", Shares: 4000},
			},
		})
		assert.ErrorIs(t, err, split.ErrBadPercentageSum)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("stores a valid expense and records it", func(t *testing.T) {
		svc, mock := newTestService(t)
		expectGroupLookup(mock, "grp1", "p1", "p2")

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO expenses").
			WithArgs(sqlmock.AnyArg(), "grp1", "Dinner", int64(5000), false, "p1", split.ModeEvenly).
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))
		mock.ExpectExec("INSERT INTO expense_paid_for").
			WithArgs(sqlmock.AnyArg(), "p1", int64(0), 0).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec("INSERT INTO expense_paid_for").
			WithArgs(sqlmock.AnyArg(), "p2", int64(0), 1).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()
		mock.ExpectQuery("INSERT INTO activities").
			WithArgs(sqlmock.AnyArg(), "grp1", activity.KindExpenseCreated, nil, sqlmock.AnyArg(), "Dinner").
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

		e, err := svc.Create(context.Background(), "grp1", "", &CreateExpenseRequest{
			GroupID:   "grp1",
			Title:     "Dinner",
			Amount:    5000,
			PaidBy:    "p1",
			SplitMode: "EVENLY",
			PaidFor:   []*PaidForInput{{ParticipantID: "p1"}, {ParticipantID: "p2"}},
		})
		assert.NoError(t, err)
		assert.NotEmpty(t, e.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestService_Delete(t *testing.T) {
	t.Run("reports unknown expense", func(t *testing.T) {
		svc, mock := newTestService(t)

		mock.ExpectQuery("SELECT id, group_id, title, amount, is_reimbursement, paid_by, split_mode, created_at FROM expenses").
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "group_id", "title", "amount", "is_reimbursement", "paid_by", "split_mode", "created_at",
			}))

		err := svc.Delete(context.Background(), "missing", "")
		assert.ErrorIs(t, err, ErrExpenseNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
