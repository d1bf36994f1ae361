package activity

import (
	"context"
	"log"

	"github.com/google/uuid"
)

// Service handles the group activity log
type Service struct {
	repo *Repository
}

// NewService creates a new activity service
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Record appends an entry to a group's activity log. Logging is best
// effort: a failure here must not fail the operation being recorded, so
// errors are logged and swallowed. Empty actorID/expenseID are stored as
// NULL.
func (s *Service) Record(ctx context.Context, groupID string, kind Kind, actorID, expenseID, summary string) {
	a := &Activity{
		ID:      uuid.NewString(),
		GroupID: groupID,
		Kind:    kind,
		Summary: summary,
	}
	if actorID != "" {
		a.ActorID = &actorID
	}
	if expenseID != "" {
		a.ExpenseID = &expenseID
	}

	if err := s.repo.Create(ctx, a); err != nil {
		log.Printf("Failed to record %s activity for group %s: %v", kind, groupID, err)
	}
}

// ListByGroup retrieves a page of a group's activity log, newest first
func (s *Service) ListByGroup(ctx context.Context, groupID string, page, perPage int) ([]*Activity, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return s.repo.ListByGroupID(ctx, groupID, perPage, offset)
}
