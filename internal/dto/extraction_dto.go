package dto

import (
	"time"

	"github.com/google/uuid"
)

type StoreExtractedDataRequest struct {
	SessionId string                 `json:"session_id" validate:"required,max=64"`
	DataType  string                 `json:"data_type" validate:"required,max=64"`
	Source    string                 `json:"source,omitempty"`
	Content   string                 `json:"content" validate:"required"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

type ExtractedDataResponse struct {
	Id          uuid.UUID              `json:"id"`
	SessionId   string                 `json:"session_id"`
	DataType    string                 `json:"data_type"`
	Source      string                 `json:"source,omitempty"`
	Content     string                 `json:"content"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
	ExtractedAt time.Time              `json:"extracted_at"`
}

type AdminStatsResponse struct {
	TotalSessions     int64   `json:"total_sessions"`
	TotalMessages     int64   `json:"total_messages"`
	TotalFeedback     int64   `json:"total_feedback"`
	PendingLinks      int     `json:"pending_links"`
	AvgCompletionRate float64 `json:"avg_completion_rate"`
}
