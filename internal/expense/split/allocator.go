package split

var defaultFactory = NewFactory()

// CalculateShares computes each beneficiary's share of the expense amount,
// in minor currency units. For the four known modes the returned shares sum
// to exactly e.Amount, including negative amounts: ideal shares are
// truncated toward zero, then the leftover cents are handed out by
// distributeRemainder. An unknown mode yields all-zero shares with no
// correction (the validation layer rejects such expenses before they get
// here).
//
// The IsReimbursement flag is deliberately ignored: reimbursement expenses
// split like any other and are only excluded from spending totals.
func CalculateShares(e Expense) map[string]int64 {
	if len(e.PaidFor) == 0 {
		// Degenerate split: the payer absorbs the full amount.
		return map[string]int64{e.PaidBy: e.Amount}
	}

	shares := make(map[string]int64, len(e.PaidFor))

	strategy, err := defaultFactory.Create(e.Mode)
	if err != nil {
		for _, b := range e.PaidFor {
			shares[b.ParticipantID] = 0
		}
		return shares
	}

	for _, b := range e.PaidFor {
		shares[b.ParticipantID] = strategy.share(&e, b)
	}
	distributeRemainder(&e, shares)
	return shares
}

// CalculateShare returns a single participant's share of the expense,
// consistent with CalculateShares. Participants not in the paid-for list
// owe nothing.
func CalculateShare(participantID string, e Expense) int64 {
	return CalculateShares(e)[participantID]
}

// distributeRemainder hands out the aggregate rounding error one cent at a
// time, starting at the last beneficiary and walking backward (wrapping
// around if needed), until the shares sum to exactly the expense amount.
// For negative amounts the cents are subtracted instead, with the same
// trailing preference.
func distributeRemainder(e *Expense, shares map[string]int64) {
	var sum int64
	for _, b := range e.PaidFor {
		sum += shares[b.ParticipantID]
	}
	remainder := e.Amount - sum
	if remainder == 0 {
		return
	}

	step := int64(1)
	if remainder < 0 {
		step = -1
	}
	for i := len(e.PaidFor) - 1; remainder != 0; i-- {
		if i < 0 {
			i = len(e.PaidFor) - 1
		}
		shares[e.PaidFor[i].ParticipantID] += step
		remainder -= step
	}
}
