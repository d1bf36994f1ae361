package group

// CreateGroupRequest represents the request to create a new group
type CreateGroupRequest struct {
	Name         string   `json:"name" validate:"required,min=1,max=100"`
	Currency     string   `json:"currency" validate:"required,min=1,max=10"`
	Participants []string `json:"participants" validate:"required,min=1,dive,min=1,max=100"`
}

// UpdateGroupRequest represents the request to update a group
type UpdateGroupRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Currency *string `json:"currency,omitempty" validate:"omitempty,min=1,max=10"`
}

// AddParticipantRequest represents the request to add a participant to a group
type AddParticipantRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// GroupResponse represents the response for a group
type GroupResponse struct {
	ID           string                 `json:"id"`
	Name         string                 `json:"name"`
	Currency     string                 `json:"currency"`
	CreatedAt    string                 `json:"created_at"`
	Participants []*ParticipantResponse `json:"participants,omitempty"`
}

// ParticipantResponse represents a participant in a group response
type ParticipantResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ToResponse converts a Group model to a GroupResponse DTO
func (g *Group) ToResponse() *GroupResponse {
	resp := &GroupResponse{
		ID:        g.ID,
		Name:      g.Name,
		Currency:  g.Currency,
		CreatedAt: g.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
	for _, p := range g.Participants {
		resp.Participants = append(resp.Participants, p.ToResponse())
	}
	return resp
}

// ToResponse converts a Participant model to a ParticipantResponse DTO
func (p *Participant) ToResponse() *ParticipantResponse {
	return &ParticipantResponse{
		ID:   p.ID,
		Name: p.Name,
	}
}
