package expense

// PaidForInput is one beneficiary of a new or updated expense. Shares may
// be negative for BY_AMOUNT refunds.
type PaidForInput struct {
	ParticipantID string `json:"participant_id" validate:"required,uuid4"`
	Shares        int64  `json:"shares"`
}

// CreateExpenseRequest represents the request to create an expense
type CreateExpenseRequest struct {
	GroupID         string          `json:"group_id" validate:"required,uuid4"`
	Title           string          `json:"title" validate:"required,min=1,max=255"`
	Amount          int64           `json:"amount"`
	IsReimbursement bool            `json:"is_reimbursement"`
	PaidBy          string          `json:"paid_by" validate:"required,uuid4"`
	SplitMode       string          `json:"split_mode" validate:"required,oneof=EVENLY BY_SHARES BY_PERCENTAGE BY_AMOUNT"`
	PaidFor         []*PaidForInput `json:"paid_for" validate:"required,min=1,dive"`
}

// UpdateExpenseRequest replaces an expense's content wholesale; shares and
// balances are recomputed from scratch on every read, so there is no
// partial update to reconcile.
type UpdateExpenseRequest struct {
	Title           string          `json:"title" validate:"required,min=1,max=255"`
	Amount          int64           `json:"amount"`
	IsReimbursement bool            `json:"is_reimbursement"`
	PaidBy          string          `json:"paid_by" validate:"required,uuid4"`
	SplitMode       string          `json:"split_mode" validate:"required,oneof=EVENLY BY_SHARES BY_PERCENTAGE BY_AMOUNT"`
	PaidFor         []*PaidForInput `json:"paid_for" validate:"required,min=1,dive"`
}

// ExpenseResponse represents the response for an expense
type ExpenseResponse struct {
	ID              string           `json:"id"`
	GroupID         string           `json:"group_id"`
	Title           string           `json:"title"`
	Amount          int64            `json:"amount"`
	IsReimbursement bool             `json:"is_reimbursement"`
	PaidBy          string           `json:"paid_by"`
	SplitMode       string           `json:"split_mode"`
	PaidFor         []PaidFor        `json:"paid_for"`
	Shares          map[string]int64 `json:"shares,omitempty"`
	CreatedAt       string           `json:"created_at"`
}

// ToResponse converts an Expense model to an ExpenseResponse DTO. Shares
// are computed on the fly; they are never stored.
func (e *Expense) ToResponse(withShares bool) *ExpenseResponse {
	resp := &ExpenseResponse{
		ID:              e.ID,
		GroupID:         e.GroupID,
		Title:           e.Title,
		Amount:          e.Amount,
		IsReimbursement: e.IsReimbursement,
		PaidBy:          e.PaidBy,
		SplitMode:       string(e.SplitMode),
		PaidFor:         e.PaidFor,
		CreatedAt:       e.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if withShares {
		resp.Shares = e.Shares()
	}
	return resp
}
