package split

// =============================================================================
// EVENLY SPLIT STRATEGY
// Divides the amount into equal integer parts, up to rounding
// =============================================================================

// EvenlyStrategy implements the Strategy interface for even splits
type EvenlyStrategy struct{}

// Mode returns the split mode identifier
func (s *EvenlyStrategy) Mode() Mode {
	return ModeEvenly
}

// Validate checks if the inputs are valid for an even split.
// Beneficiary weights are ignored in this mode.
func (s *EvenlyStrategy) Validate(e *Expense) error {
	if len(e.PaidFor) == 0 {
		return ErrNoBeneficiaries
	}
	return nil
}

func (s *EvenlyStrategy) share(e *Expense, _ Beneficiary) int64 {
	return e.Amount / int64(len(e.PaidFor))
}
