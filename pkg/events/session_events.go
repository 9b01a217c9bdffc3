package events

import "time"

// NewFeedbackReceivedEvent is emitted after a feedback row is persisted.
func NewFeedbackReceivedEvent(sessionID string, rating int, category string) Event {
	return BaseEvent{
		Type: "FEEDBACK_RECEIVED",
		Data: map[string]interface{}{
			"session_id": sessionID,
			"rating":     rating,
			"category":   category,
		},
		OccurredAt: time.Now(),
	}
}

// NewSessionSyncedEvent is emitted when reconciliation changes local state.
func NewSessionSyncedEvent(sessionID, status string) Event {
	return BaseEvent{
		Type: "SESSION_SYNCED",
		Data: map[string]interface{}{
			"session_id": sessionID,
			"status":     status,
		},
		OccurredAt: time.Now(),
	}
}
