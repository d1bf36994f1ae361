package activity

import "time"

// Kind identifies what happened in a group
type Kind string

const (
	KindGroupCreated       Kind = "GROUP_CREATED"
	KindGroupUpdated       Kind = "GROUP_UPDATED"
	KindParticipantAdded   Kind = "PARTICIPANT_ADDED"
	KindParticipantRemoved Kind = "PARTICIPANT_REMOVED"
	KindExpenseCreated     Kind = "EXPENSE_CREATED"
	KindExpenseUpdated     Kind = "EXPENSE_UPDATED"
	KindExpenseDeleted     Kind = "EXPENSE_DELETED"
)

// Activity is one entry of a group's activity log. ActorID is the active
// participant when one was supplied with the request; ExpenseID is set for
// expense events (and survives the expense's deletion). Summary is a short
// display string, usually the expense or participant name.
type Activity struct {
	ID        string    `json:"id"`
	GroupID   string    `json:"group_id"`
	Kind      Kind      `json:"kind"`
	ActorID   *string   `json:"actor_id,omitempty"`
	ExpenseID *string   `json:"expense_id,omitempty"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
}

// ActivityResponse represents the response for an activity entry
type ActivityResponse struct {
	ID        string  `json:"id"`
	GroupID   string  `json:"group_id"`
	Kind      Kind    `json:"kind"`
	ActorID   *string `json:"actor_id,omitempty"`
	ExpenseID *string `json:"expense_id,omitempty"`
	Summary   string  `json:"summary"`
	CreatedAt string  `json:"created_at"`
}

// ToResponse converts an Activity model to an ActivityResponse DTO
func (a *Activity) ToResponse() *ActivityResponse {
	return &ActivityResponse{
		ID:        a.ID,
		GroupID:   a.GroupID,
		Kind:      a.Kind,
		ActorID:   a.ActorID,
		ExpenseID: a.ExpenseID,
		Summary:   a.Summary,
		CreatedAt: a.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
