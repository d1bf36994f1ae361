// Package balance computes group balances and reimbursement suggestions
// from in-memory expense records. Every function here is a pure
// transformation: no storage, no shared state, fresh maps and slices on
// each call, safe for concurrent use.
package balance

import (
	"github.com/splitpot/backend/internal/expense/split"
)

// Balance is one participant's aggregated position in minor currency
// units. Total is Paid minus PaidFor: positive means the participant is
// owed money, negative means they owe.
type Balance struct {
	Paid    int64 `json:"paid"`
	PaidFor int64 `json:"paid_for"`
	Total   int64 `json:"total"`
}

// Reimbursement is a suggested transfer: From should pay Amount to To.
type Reimbursement struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount int64  `json:"amount"`
}

// GetBalances folds the expenses, in input order, into per-participant
// balances. The payer is credited the full amount of each expense and
// every beneficiary is debited their allocated share. Reimbursement
// expenses still move money here; they are only excluded from spending
// totals. Because each expense's shares sum to exactly its amount, the
// totals always sum to zero.
func GetBalances(expenses []split.Expense) map[string]Balance {
	balances := make(map[string]Balance)

	for _, e := range expenses {
		payer := balances[e.PaidBy]
		payer.Paid += e.Amount
		balances[e.PaidBy] = payer

		for id, share := range split.CalculateShares(e) {
			b := balances[id]
			b.PaidFor += share
			balances[id] = b
		}
	}

	for id, b := range balances {
		b.Total = b.Paid - b.PaidFor
		balances[id] = b
	}
	return balances
}

// GetPublicBalances rebuilds a balances view from a reimbursement plan
// alone. A viewer without access to the underlying expenses still sees
// consistent, zero-summing totals reflecting who owes whom, without
// per-expense detail.
func GetPublicBalances(reimbursements []Reimbursement) map[string]Balance {
	balances := make(map[string]Balance)

	for _, r := range reimbursements {
		from := balances[r.From]
		from.PaidFor += r.Amount
		balances[r.From] = from

		to := balances[r.To]
		to.Paid += r.Amount
		balances[r.To] = to
	}

	for id, b := range balances {
		b.Total = b.Paid - b.PaidFor
		balances[id] = b
	}
	return balances
}
