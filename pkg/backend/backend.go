package backend

import "context"

// ChatResult is the raw reply from the AI backend. Citations are kept as
// loose JSON values because the backend emits several shapes; normalization
// happens downstream.
type ChatResult struct {
	Response  string        `json:"response"`
	Citations []interface{} `json:"citations"`
}

// SessionState is the backend's view of a session. Pointer fields are
// absent when the backend has not extracted that value yet.
type SessionState struct {
	SessionID         string   `json:"session_id"`
	Phase             string   `json:"phase"`
	CompletionRate    float64  `json:"completion_rate"`
	UserName          *string  `json:"user_name"`
	UserEmail         *string  `json:"user_email"`
	UserRole          *string  `json:"user_role"`
	SchoolAffiliation *string  `json:"school_affiliation"`
	VentureStage      *string  `json:"venture_stage"`
	PrimaryNeed       *string  `json:"primary_need"`
	UrgencyLevel      *string  `json:"urgency_level"`
	Department        *string  `json:"department"`
	StartupStage      *string  `json:"startup_stage"`
}

// Provider abstracts the AI backend so services can be tested without
// a live upstream.
type Provider interface {
	Chat(ctx context.Context, sessionID, message string) (*ChatResult, error)
	GetSession(ctx context.Context, sessionID string) (*SessionState, error)
}
