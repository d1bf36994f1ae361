package balance

import (
	"context"

	"github.com/splitpot/backend/internal/expense"
	"github.com/splitpot/backend/internal/expense/split"
	"github.com/splitpot/backend/internal/group"
)

// Totals aggregates a group's spending, plus the active participant's
// slice of it when one was supplied with the request.
type Totals struct {
	GroupSpending int64  `json:"group_spending"`
	YourPaid      *int64 `json:"your_paid,omitempty"`
	YourShare     *int64 `json:"your_share,omitempty"`
}

// Service computes balances, reimbursement plans, and totals for a group.
// It only reads: every result is derived fresh from the group's expenses.
type Service struct {
	groups   *group.Repository
	expenses *expense.Repository
}

// NewService creates a new balance service
func NewService(groups *group.Repository, expenses *expense.Repository) *Service {
	return &Service{
		groups:   groups,
		expenses: expenses,
	}
}

// GroupBalances returns the per-participant balances of a group together
// with the suggested reimbursement plan that would settle them.
func (s *Service) GroupBalances(ctx context.Context, groupID string) (map[string]Balance, []Reimbursement, error) {
	expenses, err := s.groupExpenses(ctx, groupID)
	if err != nil {
		return nil, nil, err
	}

	balances := GetBalances(expenses)
	return balances, GetSuggestedReimbursements(balances), nil
}

// PublicBalances returns the privacy-reduced balances view, derived from
// the reimbursement plan rather than from raw expenses.
func (s *Service) PublicBalances(ctx context.Context, groupID string) (map[string]Balance, error) {
	expenses, err := s.groupExpenses(ctx, groupID)
	if err != nil {
		return nil, err
	}

	return GetPublicBalances(GetSuggestedReimbursements(GetBalances(expenses))), nil
}

// GroupTotals returns the group's spending totals. When activeParticipant
// is non-empty, the response also carries that participant's paid amount
// and allocated share.
func (s *Service) GroupTotals(ctx context.Context, groupID, activeParticipant string) (*Totals, error) {
	expenses, err := s.groupExpenses(ctx, groupID)
	if err != nil {
		return nil, err
	}

	totals := &Totals{GroupSpending: TotalGroupSpending(expenses)}
	if activeParticipant != "" {
		paid := TotalPaidBy(activeParticipant, expenses)
		share := TotalShareOf(activeParticipant, expenses)
		totals.YourPaid = &paid
		totals.YourShare = &share
	}
	return totals, nil
}

func (s *Service) groupExpenses(ctx context.Context, groupID string) ([]split.Expense, error) {
	grp, err := s.groups.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if grp == nil {
		return nil, group.ErrGroupNotFound
	}

	records, err := s.expenses.ListByGroupID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	return expense.ToSplitExpenses(records), nil
}
