package balance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/splitpot/backend/internal/expense/split"
)

// applyPlan plays a reimbursement plan back onto the balances and returns
// the resulting totals.
func applyPlan(balances map[string]Balance, plan []Reimbursement) map[string]int64 {
	totals := make(map[string]int64, len(balances))
	for id, b := range balances {
		totals[id] = b.Total
	}
	for _, r := range plan {
		totals[r.From] += r.Amount
		totals[r.To] -= r.Amount
	}
	return totals
}

func TestGetSuggestedReimbursements(t *testing.T) {
	t.Run("one creditor two debtors", func(t *testing.T) {
		balances := map[string]Balance{
			"A": {Total: 60},
			"B": {Total: -30},
			"C": {Total: -30},
		}

		plan := GetSuggestedReimbursements(balances)

		assert.Equal(t, []Reimbursement{
			{From: "C", To: "A", Amount: 30},
			{From: "B", To: "A", Amount: 30},
		}, plan)
	})

	t.Run("chained settlement", func(t *testing.T) {
		balances := map[string]Balance{
			"A": {Total: 10},
			"B": {Total: 5},
			"C": {Total: -8},
			"D": {Total: -7},
		}

		plan := GetSuggestedReimbursements(balances)

		assert.Equal(t, []Reimbursement{
			{From: "C", To: "A", Amount: 8},
			{From: "D", To: "A", Amount: 2},
			{From: "D", To: "B", Amount: 5},
		}, plan)
	})

	t.Run("already settled", func(t *testing.T) {
		balances := map[string]Balance{
			"A": {Paid: 50, PaidFor: 50, Total: 0},
			"B": {Paid: 50, PaidFor: 50, Total: 0},
		}
		assert.Empty(t, GetSuggestedReimbursements(balances))
	})

	t.Run("two-party group", func(t *testing.T) {
		balances := map[string]Balance{
			"A": {Total: 42},
			"B": {Total: -42},
		}
		assert.Equal(t, []Reimbursement{{From: "B", To: "A", Amount: 42}}, GetSuggestedReimbursements(balances))
	})
}

func TestGetSuggestedReimbursements_Properties(t *testing.T) {
	expenses := []split.Expense{
		evenly(100, "alice", "alice", "bob", "carol"),
		evenly(2599, "bob", "alice", "bob", "carol", "dave"),
		evenly(-101, "carol", "alice", "carol"),
		{
			Amount: 4242, PaidBy: "dave", Mode: split.ModeByShares,
			PaidFor: []split.Beneficiary{
				{ParticipantID: "alice", Shares: 1},
				{ParticipantID: "bob", Shares: 2},
				{ParticipantID: "dave", Shares: 3},
			},
		},
	}
	balances := GetBalances(expenses)
	plan := GetSuggestedReimbursements(balances)

	t.Run("completeness", func(t *testing.T) {
		for id, total := range applyPlan(balances, plan) {
			assert.Zerof(t, total, "participant %s not settled", id)
		}
	})

	t.Run("minimality", func(t *testing.T) {
		nonZero := 0
		for _, b := range balances {
			if b.Total != 0 {
				nonZero++
			}
		}
		assert.LessOrEqual(t, len(plan), nonZero-1)
	})

	t.Run("amounts are positive", func(t *testing.T) {
		for _, r := range plan {
			assert.Positive(t, r.Amount)
		}
	})

	t.Run("deterministic across calls", func(t *testing.T) {
		for i := 0; i < 10; i++ {
			assert.Equal(t, plan, GetSuggestedReimbursements(GetBalances(expenses)))
		}
	})
}

func TestGetSuggestedReimbursements_StableAcrossPartialSettlement(t *testing.T) {
	expenses := []split.Expense{
		evenly(100, "alice", "alice", "bob", "carol"),
		evenly(90, "bob", "alice", "bob", "carol"),
	}
	plan := GetSuggestedReimbursements(GetBalances(expenses))
	assert.NotEmpty(t, plan)

	// Execute the first suggestion as a reimbursement expense and
	// recompute: the remaining plan must be the tail of the original.
	executed := plan[0]
	settled := append(expenses, split.Expense{
		Amount:          executed.Amount,
		IsReimbursement: true,
		PaidBy:          executed.From,
		PaidFor:         []split.Beneficiary{{ParticipantID: executed.To, Shares: 1}},
		Mode:            split.ModeEvenly,
	})

	assert.Equal(t, plan[1:], GetSuggestedReimbursements(GetBalances(settled)))
}
