package split

// =============================================================================
// BY_SHARES SPLIT STRATEGY
// Divides the amount proportionally to unitless relative weights
// =============================================================================

// BySharesStrategy implements the Strategy interface for weighted splits
type BySharesStrategy struct{}

// Mode returns the split mode identifier
func (s *BySharesStrategy) Mode() Mode {
	return ModeByShares
}

// Validate checks if the inputs are valid for a weighted split
func (s *BySharesStrategy) Validate(e *Expense) error {
	if len(e.PaidFor) == 0 {
		return ErrNoBeneficiaries
	}
	for _, b := range e.PaidFor {
		if b.Shares < 0 {
			return ErrNegativeShares
		}
	}
	if e.TotalShares() == 0 {
		return ErrZeroTotalShares
	}
	return nil
}

// share is amount * weight / totalWeight, truncated toward zero. A zero
// total weight would divide by zero, so it falls back to an even split
// across the beneficiaries: the full amount still gets distributed.
func (s *BySharesStrategy) share(e *Expense, b Beneficiary) int64 {
	total := e.TotalShares()
	if total == 0 {
		return e.Amount / int64(len(e.PaidFor))
	}
	return e.Amount * b.Shares / total
}
