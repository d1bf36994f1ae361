package expense

import (
	"time"

	"github.com/splitpot/backend/internal/expense/split"
)

// Expense represents an expense in the system. Amount is in minor currency
// units and may be negative for refunds.
type Expense struct {
	ID              string     `json:"id"`
	GroupID         string     `json:"group_id"`
	Title           string     `json:"title"`
	Amount          int64      `json:"amount"`
	IsReimbursement bool       `json:"is_reimbursement"`
	PaidBy          string     `json:"paid_by"`
	SplitMode       split.Mode `json:"split_mode"`
	CreatedAt       time.Time  `json:"created_at"`

	// PaidFor is ordered: a row's position drives where leftover cents of
	// the split land, so it is persisted and restored as-is.
	PaidFor []PaidFor `json:"paid_for"`
}

// PaidFor is one beneficiary row of an expense.
type PaidFor struct {
	ParticipantID string `json:"participant_id"`
	Shares        int64  `json:"shares"`
}

// ToSplitExpense converts the stored expense to the allocator's input type.
func (e *Expense) ToSplitExpense() split.Expense {
	paidFor := make([]split.Beneficiary, len(e.PaidFor))
	for i, pf := range e.PaidFor {
		paidFor[i] = split.Beneficiary{ParticipantID: pf.ParticipantID, Shares: pf.Shares}
	}
	return split.Expense{
		Amount:          e.Amount,
		IsReimbursement: e.IsReimbursement,
		PaidBy:          e.PaidBy,
		PaidFor:         paidFor,
		Mode:            e.SplitMode,
	}
}

// Shares computes the per-participant allocation of this expense, in minor
// currency units. Recomputed on every call; never stored.
func (e *Expense) Shares() map[string]int64 {
	return split.CalculateShares(e.ToSplitExpense())
}

// ToSplitExpenses converts a list of stored expenses for the balance engine.
func ToSplitExpenses(expenses []*Expense) []split.Expense {
	out := make([]split.Expense, len(expenses))
	for i, e := range expenses {
		out[i] = e.ToSplitExpense()
	}
	return out
}
