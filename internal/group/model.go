package group

import "time"

// Group is a shared-expense group. There are no user accounts: groups are
// anonymous and participants are scoped to one group.
type Group struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"created_at"`

	// Populated on demand
	Participants []*Participant `json:"participants,omitempty"`
}

// Participant is a person within one group. The id is the opaque handle
// all computations reference; the name is display-only.
type Participant struct {
	ID        string    `json:"id"`
	GroupID   string    `json:"group_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
