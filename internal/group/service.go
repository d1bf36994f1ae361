package group

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/splitpot/backend/internal/activity"
)

// Common errors
var (
	ErrGroupNotFound       = errors.New("group not found")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrParticipantInUse    = errors.New("participant is referenced by expenses")
	ErrDuplicateName       = errors.New("a participant with that name already exists")
)

// ExpenseCounter reports how many expenses reference a participant, as
// payer or beneficiary. Implemented by the expense repository; declared
// here so the group feature does not depend on the expense feature.
type ExpenseCounter interface {
	CountByParticipantID(ctx context.Context, participantID string) (int, error)
}

// Service handles group business logic
type Service struct {
	repo       *Repository
	expenses   ExpenseCounter
	activities *activity.Service
}

// NewService creates a new group service
func NewService(repo *Repository, expenses ExpenseCounter, activities *activity.Service) *Service {
	return &Service{
		repo:       repo,
		expenses:   expenses,
		activities: activities,
	}
}

// Create creates a group with its initial participants
func (s *Service) Create(ctx context.Context, req *CreateGroupRequest) (*Group, error) {
	g := &Group{
		ID:       uuid.NewString(),
		Name:     req.Name,
		Currency: req.Currency,
	}
	seen := make(map[string]bool, len(req.Participants))
	for _, name := range req.Participants {
		if seen[name] {
			return nil, ErrDuplicateName
		}
		seen[name] = true
		g.Participants = append(g.Participants, &Participant{
			ID:      uuid.NewString(),
			GroupID: g.ID,
			Name:    name,
		})
	}

	if err := s.repo.Create(ctx, g); err != nil {
		return nil, err
	}

	s.activities.Record(ctx, g.ID, activity.KindGroupCreated, "", "", g.Name)
	return g, nil
}

// GetByID retrieves a group with its participants
func (s *Service) GetByID(ctx context.Context, id string) (*Group, error) {
	g, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGroupNotFound
	}

	g.Participants, err = s.repo.ListParticipants(ctx, id)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// Update changes a group's name and/or currency
func (s *Service) Update(ctx context.Context, id, actorID string, req *UpdateGroupRequest) (*Group, error) {
	g, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGroupNotFound
	}

	if req.Name != nil {
		g.Name = *req.Name
	}
	if req.Currency != nil {
		g.Currency = *req.Currency
	}
	if err := s.repo.Update(ctx, g); err != nil {
		return nil, err
	}

	s.activities.Record(ctx, g.ID, activity.KindGroupUpdated, actorID, "", g.Name)
	return g, nil
}

// ListParticipants retrieves the group's participants
func (s *Service) ListParticipants(ctx context.Context, groupID string) ([]*Participant, error) {
	g, err := s.repo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGroupNotFound
	}
	return s.repo.ListParticipants(ctx, groupID)
}

// AddParticipant adds a participant to a group
func (s *Service) AddParticipant(ctx context.Context, groupID, actorID string, req *AddParticipantRequest) (*Participant, error) {
	g, err := s.repo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGroupNotFound
	}

	existing, err := s.repo.ListParticipants(ctx, groupID)
	if err != nil {
		return nil, err
	}
	for _, p := range existing {
		if p.Name == req.Name {
			return nil, ErrDuplicateName
		}
	}

	p := &Participant{
		ID:      uuid.NewString(),
		GroupID: groupID,
		Name:    req.Name,
	}
	if err := s.repo.AddParticipant(ctx, p); err != nil {
		return nil, err
	}

	s.activities.Record(ctx, groupID, activity.KindParticipantAdded, actorID, "", p.Name)
	return p, nil
}

// RemoveParticipant removes a participant that no expense references.
// Balances are recomputed from raw expenses on every read, so removing a
// referenced participant would silently corrupt them.
func (s *Service) RemoveParticipant(ctx context.Context, groupID, participantID, actorID string) error {
	p, err := s.repo.GetParticipant(ctx, groupID, participantID)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrParticipantNotFound
	}

	count, err := s.expenses.CountByParticipantID(ctx, participantID)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrParticipantInUse
	}

	if err := s.repo.RemoveParticipant(ctx, groupID, participantID); err != nil {
		return err
	}

	s.activities.Record(ctx, groupID, activity.KindParticipantRemoved, actorID, "", p.Name)
	return nil
}
