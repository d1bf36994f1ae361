package balance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/splitpot/backend/internal/expense/split"
)

func evenly(amount int64, paidBy string, paidFor ...string) split.Expense {
	bs := make([]split.Beneficiary, len(paidFor))
	for i, id := range paidFor {
		bs[i] = split.Beneficiary{ParticipantID: id, Shares: 1}
	}
	return split.Expense{Amount: amount, PaidBy: paidBy, PaidFor: bs, Mode: split.ModeEvenly}
}

func sumOfTotals(balances map[string]Balance) int64 {
	var sum int64
	for _, b := range balances {
		sum += b.Total
	}
	return sum
}

func TestGetBalances(t *testing.T) {
	t.Run("single expense", func(t *testing.T) {
		balances := GetBalances([]split.Expense{evenly(100, "alice", "alice", "bob", "carol")})

		assert.Equal(t, map[string]Balance{
			"alice": {Paid: 100, PaidFor: 33, Total: 67},
			"bob":   {Paid: 0, PaidFor: 33, Total: -33},
			"carol": {Paid: 0, PaidFor: 34, Total: -34},
		}, balances)
	})

	t.Run("payer absent from paid-for owes nothing", func(t *testing.T) {
		balances := GetBalances([]split.Expense{evenly(100, "alice", "bob", "carol")})

		assert.Equal(t, Balance{Paid: 100, PaidFor: 0, Total: 100}, balances["alice"])
		assert.Equal(t, Balance{Paid: 0, PaidFor: 50, Total: -50}, balances["bob"])
		assert.Equal(t, Balance{Paid: 0, PaidFor: 50, Total: -50}, balances["carol"])
	})

	t.Run("reimbursement expenses still move money", func(t *testing.T) {
		dinner := evenly(100, "alice", "alice", "bob")
		payback := evenly(50, "bob", "alice")
		payback.IsReimbursement = true

		balances := GetBalances([]split.Expense{dinner, payback})

		assert.Equal(t, Balance{Paid: 100, PaidFor: 100, Total: 0}, balances["alice"])
		assert.Equal(t, Balance{Paid: 50, PaidFor: 50, Total: 0}, balances["bob"])
	})

	t.Run("totals sum to zero for mixed modes and signs", func(t *testing.T) {
		expenses := []split.Expense{
			evenly(100, "alice", "alice", "bob", "carol"),
			evenly(-101, "bob", "alice", "bob", "carol"),
			{
				Amount: 9999, PaidBy: "carol", Mode: split.ModeByShares,
				PaidFor: []split.Beneficiary{{ParticipantID: "alice", Shares: 3}, {ParticipantID: "bob", Shares: 7}},
			},
			{
				Amount: 12345, PaidBy: "dave", Mode: split.ModeByPercentage,
				PaidFor: []split.Beneficiary{{ParticipantID: "dave", Shares: 2500}, {ParticipantID: "alice", Shares: 7500}},
			},
			{Amount: 42, PaidBy: "bob", Mode: split.ModeEvenly},
		}

		balances := GetBalances(expenses)
		assert.Zero(t, sumOfTotals(balances))
	})

	t.Run("no expenses", func(t *testing.T) {
		assert.Empty(t, GetBalances(nil))
	})
}

func TestGetPublicBalances(t *testing.T) {
	reimbursements := []Reimbursement{
		{From: "bob", To: "alice", Amount: 33},
		{From: "carol", To: "alice", Amount: 34},
	}

	balances := GetPublicBalances(reimbursements)

	assert.Equal(t, map[string]Balance{
		"alice": {Paid: 67, PaidFor: 0, Total: 67},
		"bob":   {Paid: 0, PaidFor: 33, Total: -33},
		"carol": {Paid: 0, PaidFor: 34, Total: -34},
	}, balances)
	assert.Zero(t, sumOfTotals(balances))
}

func TestGetPublicBalances_MatchesPlanTotals(t *testing.T) {
	// The public view derived from a plan must carry the same totals as
	// the balances the plan was computed from.
	expenses := []split.Expense{
		evenly(100, "alice", "alice", "bob", "carol"),
		evenly(60, "bob", "alice", "carol"),
	}
	balances := GetBalances(expenses)
	public := GetPublicBalances(GetSuggestedReimbursements(balances))

	for id, b := range balances {
		if b.Total != 0 {
			assert.Equalf(t, b.Total, public[id].Total, "participant %s", id)
		}
	}
}
