package split

import (
	"errors"
	"fmt"
)

// Mode selects how an expense's amount is apportioned among beneficiaries
type Mode string

const (
	ModeEvenly       Mode = "EVENLY"
	ModeByShares     Mode = "BY_SHARES"
	ModeByPercentage Mode = "BY_PERCENTAGE"
	ModeByAmount     Mode = "BY_AMOUNT"
)

// basisPointsTotal is the denominator for BY_PERCENTAGE weights: percentages
// carry two implied decimal places, so 100% == 10000 basis points.
const basisPointsTotal = 10000

// Beneficiary is one entry of an expense's paid-for list. The meaning of
// Shares depends on the expense's mode: ignored for EVENLY, a relative
// weight for BY_SHARES, basis points for BY_PERCENTAGE, and minor currency
// units for BY_AMOUNT.
type Beneficiary struct {
	ParticipantID string `json:"participant_id"`
	Shares        int64  `json:"shares"`
}

// Expense carries the fields the allocator needs to compute shares.
// Amount is in minor currency units and may be negative (refund/income).
// PaidFor order is significant: trailing beneficiaries receive remainder
// cents first.
type Expense struct {
	Amount          int64
	IsReimbursement bool
	PaidBy          string
	PaidFor         []Beneficiary
	Mode            Mode
}

// TotalShares returns the sum of all beneficiary weights.
func (e *Expense) TotalShares() int64 {
	var total int64
	for _, b := range e.PaidFor {
		total += b.Shares
	}
	return total
}

// Strategy is the interface that all split strategies must implement
type Strategy interface {
	// Mode returns the mode identifier for this strategy
	Mode() Mode

	// Validate checks the invariants the expense form enforces for this mode
	Validate(e *Expense) error

	// share computes one beneficiary's ideal share truncated toward zero.
	// Individual shares may be off by a cent until the allocator applies
	// the remainder correction.
	share(e *Expense, b Beneficiary) int64
}

// Factory creates split strategies based on the requested mode. It is an
// explicit resolver: strategies are listed here, nothing registers itself
// globally.
type Factory struct{}

// NewFactory creates a new factory instance
func NewFactory() *Factory {
	return &Factory{}
}

// Create returns the appropriate strategy implementation based on the mode
func (f *Factory) Create(mode Mode) (Strategy, error) {
	switch mode {
	case ModeEvenly:
		return &EvenlyStrategy{}, nil
	case ModeByShares:
		return &BySharesStrategy{}, nil
	case ModeByPercentage:
		return &ByPercentageStrategy{}, nil
	case ModeByAmount:
		return &ByAmountStrategy{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}

// CreateFromString creates a strategy from a string mode (useful for API requests)
func (f *Factory) CreateFromString(mode string) (Strategy, error) {
	return f.Create(Mode(mode))
}

var (
	ErrUnknownMode          = errors.New("unknown split mode")
	ErrNoBeneficiaries      = errors.New("at least one beneficiary is required")
	ErrNegativeShares       = errors.New("share weights cannot be negative")
	ErrZeroTotalShares      = errors.New("share weights must sum to a positive value")
	ErrPercentageOutOfRange = errors.New("percentage must be between 0 and 100")
	ErrBadPercentageSum     = errors.New("percentages must sum to 100")
	ErrBadAmountSum         = errors.New("amounts must sum to the expense amount")
)
