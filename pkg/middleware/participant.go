package middleware

import (
	"context"
	"net/http"
)

type contextKey string

const activeParticipantKey contextKey = "activeParticipant"

// ActiveParticipantHeader names the header clients use to identify which
// group participant is acting. Groups have no accounts, so attribution is
// purely declarative.
const ActiveParticipantHeader = "X-Active-Participant"

// ActiveParticipant reads the participant header and stashes the value in
// the request context. Absence is not an error; handlers that care check
// with GetActiveParticipant.
func ActiveParticipant(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if participantID := r.Header.Get(ActiveParticipantHeader); participantID != "" {
			ctx := context.WithValue(r.Context(), activeParticipantKey, participantID)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

// GetActiveParticipant extracts the acting participant ID from context
func GetActiveParticipant(ctx context.Context) (string, bool) {
	participantID, ok := ctx.Value(activeParticipantKey).(string)
	return participantID, ok
}
