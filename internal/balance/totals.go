package balance

import "github.com/splitpot/backend/internal/expense/split"

// Spending totals. Reimbursement expenses move money between participants
// without anyone spending anything, so all three helpers skip them.

// TotalGroupSpending sums the amounts of all non-reimbursement expenses.
func TotalGroupSpending(expenses []split.Expense) int64 {
	var total int64
	for _, e := range expenses {
		if !e.IsReimbursement {
			total += e.Amount
		}
	}
	return total
}

// TotalPaidBy sums what one participant advanced across the group's
// non-reimbursement expenses.
func TotalPaidBy(participantID string, expenses []split.Expense) int64 {
	var total int64
	for _, e := range expenses {
		if !e.IsReimbursement && e.PaidBy == participantID {
			total += e.Amount
		}
	}
	return total
}

// TotalShareOf sums one participant's allocated shares across the group's
// non-reimbursement expenses.
func TotalShareOf(participantID string, expenses []split.Expense) int64 {
	var total int64
	for _, e := range expenses {
		if !e.IsReimbursement {
			total += split.CalculateShare(participantID, e)
		}
	}
	return total
}
