package split

// =============================================================================
// BY_AMOUNT SPLIT STRATEGY
// Each beneficiary's weight is their share, already in minor currency units
// =============================================================================

// ByAmountStrategy implements the Strategy interface for exact amount splits
type ByAmountStrategy struct{}

// Mode returns the split mode identifier
func (s *ByAmountStrategy) Mode() Mode {
	return ModeByAmount
}

// Validate checks that the declared amounts cover the expense exactly
func (s *ByAmountStrategy) Validate(e *Expense) error {
	if len(e.PaidFor) == 0 {
		return ErrNoBeneficiaries
	}
	if e.TotalShares() != e.Amount {
		return ErrBadAmountSum
	}
	return nil
}

// share takes the declared amount as-is. Imported or degenerate expenses
// whose amounts do not sum to the total are still fully distributed: the
// shortfall or excess lands on the trailing beneficiaries through the
// remainder correction.
func (s *ByAmountStrategy) share(_ *Expense, b Beneficiary) int64 {
	return b.Shares
}
