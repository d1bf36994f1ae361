package split

// =============================================================================
// BY_PERCENTAGE SPLIT STRATEGY
// Divides the amount by declared percentages, in basis points out of 10000
// =============================================================================

// ByPercentageStrategy implements the Strategy interface for percentage splits
type ByPercentageStrategy struct{}

// Mode returns the split mode identifier
func (s *ByPercentageStrategy) Mode() Mode {
	return ModeByPercentage
}

// Validate checks if the inputs are valid for a percentage split
func (s *ByPercentageStrategy) Validate(e *Expense) error {
	if len(e.PaidFor) == 0 {
		return ErrNoBeneficiaries
	}
	for _, b := range e.PaidFor {
		if b.Shares < 0 || b.Shares > basisPointsTotal {
			return ErrPercentageOutOfRange
		}
	}
	if e.TotalShares() != basisPointsTotal {
		return ErrBadPercentageSum
	}
	return nil
}

// share is amount * basisPoints / 10000, truncated toward zero. Declared
// percentages that do not sum to 100% are not an error here: the remainder
// correction forces the shares to sum to the amount regardless.
func (s *ByPercentageStrategy) share(e *Expense, b Beneficiary) int64 {
	return e.Amount * b.Shares / basisPointsTotal
}
