package dto

import (
	"time"
)

type CreateSessionRequest struct {
	SessionId string `json:"session_id" validate:"required,max=64"`
	Phase     string `json:"phase,omitempty"`
}

type SessionResponse struct {
	SessionId         string    `json:"session_id"`
	Phase             string    `json:"phase"`
	CompletionRate    float64   `json:"completion_rate"`
	UserName          *string   `json:"user_name,omitempty"`
	UserEmail         *string   `json:"user_email,omitempty"`
	UserRole          *string   `json:"user_role,omitempty"`
	SchoolAffiliation *string   `json:"school_affiliation,omitempty"`
	VentureStage      *string   `json:"venture_stage,omitempty"`
	PrimaryNeed       *string   `json:"primary_need,omitempty"`
	UrgencyLevel      *string   `json:"urgency_level,omitempty"`
	Department        *string   `json:"department,omitempty"`
	StartupStage      *string   `json:"startup_stage,omitempty"`
	LastActivity      time.Time `json:"last_activity"`
	CreatedAt         time.Time `json:"created_at"`
}

type SessionStatusResponse struct {
	SessionId       string                 `json:"session_id"`
	Phase           string                 `json:"phase"`
	CompletionRate  float64                `json:"completion_rate"`
	DatabaseFields  map[string]interface{} `json:"database_fields"`
	MissingRequired []string               `json:"missing_required"`
	MessageCount    int64                  `json:"message_count"`
}

type BridgeSessionRequest struct {
	SessionId string `json:"session_id" validate:"required,max=64"`
}

type BridgeSessionResponse struct {
	SessionId string           `json:"session_id"`
	Status    string           `json:"status"` // "exists" | "synced" | "backend_only"
	Session   *SessionResponse `json:"session,omitempty"`
}

// SyncDataRequest carries the field payload pushed from the AI backend.
// Every profile field is optional; nil means "no update for this field".
type SyncDataRequest struct {
	SessionId         string   `json:"session_id" validate:"required,max=64"`
	Phase             *string  `json:"phase,omitempty"`
	CompletionRate    *float64 `json:"completion_rate,omitempty" validate:"omitempty,gte=0,lte=1"`
	UserName          *string  `json:"user_name,omitempty"`
	UserEmail         *string  `json:"user_email,omitempty" validate:"omitempty,email"`
	UserRole          *string  `json:"user_role,omitempty"`
	SchoolAffiliation *string  `json:"school_affiliation,omitempty"`
	VentureStage      *string  `json:"venture_stage,omitempty"`
	PrimaryNeed       *string  `json:"primary_need,omitempty"`
	UrgencyLevel      *string  `json:"urgency_level,omitempty"`
	Department        *string  `json:"department,omitempty"`
	StartupStage      *string  `json:"startup_stage,omitempty"`
}

type SyncDataResponse struct {
	SessionId string           `json:"session_id"`
	Status    string           `json:"status"` // "created" | "updated" | "no_changes"
	Session   *SessionResponse `json:"session"`
}

type ResetSessionResponse struct {
	SessionId       string `json:"session_id"`
	MessagesDeleted int64  `json:"messages_deleted"`
}
