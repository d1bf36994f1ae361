package expense

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/splitpot/backend/internal/activity"
	"github.com/splitpot/backend/internal/expense/split"
	"github.com/splitpot/backend/internal/group"
)

// Common errors
var (
	ErrExpenseNotFound      = errors.New("expense not found")
	ErrUnknownParticipant   = errors.New("participant does not belong to the group")
	ErrDuplicateBeneficiary = errors.New("participant listed more than once in paid_for")
)

// Service handles expense business logic
type Service struct {
	repo       *Repository
	groups     *group.Repository
	strategies *split.Factory
	activities *activity.Service
}

// NewService creates a new expense service with dependencies injected
func NewService(repo *Repository, groups *group.Repository, strategies *split.Factory, activities *activity.Service) *Service {
	return &Service{
		repo:       repo,
		groups:     groups,
		strategies: strategies,
		activities: activities,
	}
}

// Create validates and stores a new expense. The split inputs are checked
// against the selected strategy the same way the expense form does;
// nothing derived from the split is persisted.
func (s *Service) Create(ctx context.Context, groupID, actorID string, req *CreateExpenseRequest) (*Expense, error) {
	if err := s.checkParticipants(ctx, groupID, req.PaidBy, req.PaidFor); err != nil {
		return nil, err
	}

	e := &Expense{
		ID:              uuid.NewString(),
		GroupID:         groupID,
		Title:           req.Title,
		Amount:          req.Amount,
		IsReimbursement: req.IsReimbursement,
		PaidBy:          req.PaidBy,
		SplitMode:       split.Mode(req.SplitMode),
		PaidFor:         toPaidFor(req.PaidFor),
	}
	if err := s.validateSplit(e); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}

	s.activities.Record(ctx, groupID, activity.KindExpenseCreated, actorID, e.ID, e.Title)
	return e, nil
}

// GetByID retrieves an expense with its paid-for rows
func (s *Service) GetByID(ctx context.Context, id string) (*Expense, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, ErrExpenseNotFound
	}
	return e, nil
}

// ListByGroup retrieves all expenses of a group in creation order
func (s *Service) ListByGroup(ctx context.Context, groupID string) ([]*Expense, error) {
	grp, err := s.groups.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if grp == nil {
		return nil, group.ErrGroupNotFound
	}
	return s.repo.ListByGroupID(ctx, groupID)
}

// Update replaces an expense's content wholesale after re-validating the
// split inputs.
func (s *Service) Update(ctx context.Context, id, actorID string, req *UpdateExpenseRequest) (*Expense, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrExpenseNotFound
	}

	if err := s.checkParticipants(ctx, existing.GroupID, req.PaidBy, req.PaidFor); err != nil {
		return nil, err
	}

	e := &Expense{
		ID:              existing.ID,
		GroupID:         existing.GroupID,
		Title:           req.Title,
		Amount:          req.Amount,
		IsReimbursement: req.IsReimbursement,
		PaidBy:          req.PaidBy,
		SplitMode:       split.Mode(req.SplitMode),
		PaidFor:         toPaidFor(req.PaidFor),
		CreatedAt:       existing.CreatedAt,
	}
	if err := s.validateSplit(e); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}

	s.activities.Record(ctx, e.GroupID, activity.KindExpenseUpdated, actorID, e.ID, e.Title)
	return e, nil
}

// Delete removes an expense
func (s *Service) Delete(ctx context.Context, id, actorID string) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrExpenseNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.activities.Record(ctx, existing.GroupID, activity.KindExpenseDeleted, actorID, existing.ID, existing.Title)
	return nil
}

// validateSplit applies the strategy's form-level checks to the expense.
func (s *Service) validateSplit(e *Expense) error {
	strategy, err := s.strategies.Create(e.SplitMode)
	if err != nil {
		return err
	}
	splitExpense := e.ToSplitExpense()
	return strategy.Validate(&splitExpense)
}

// checkParticipants verifies the group exists and that the payer and every
// beneficiary belong to it, with no beneficiary listed twice.
func (s *Service) checkParticipants(ctx context.Context, groupID, paidBy string, paidFor []*PaidForInput) error {
	grp, err := s.groups.GetByID(ctx, groupID)
	if err != nil {
		return err
	}
	if grp == nil {
		return group.ErrGroupNotFound
	}

	participants, err := s.groups.ListParticipants(ctx, groupID)
	if err != nil {
		return err
	}
	known := make(map[string]bool, len(participants))
	for _, p := range participants {
		known[p.ID] = true
	}

	if !known[paidBy] {
		return ErrUnknownParticipant
	}
	seen := make(map[string]bool, len(paidFor))
	for _, pf := range paidFor {
		if !known[pf.ParticipantID] {
			return ErrUnknownParticipant
		}
		if seen[pf.ParticipantID] {
			return ErrDuplicateBeneficiary
		}
		seen[pf.ParticipantID] = true
	}
	return nil
}

func toPaidFor(inputs []*PaidForInput) []PaidFor {
	paidFor := make([]PaidFor, len(inputs))
	for i, in := range inputs {
		paidFor[i] = PaidFor{ParticipantID: in.ParticipantID, Shares: in.Shares}
	}
	return paidFor
}
