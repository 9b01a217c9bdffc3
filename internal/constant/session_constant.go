package constant

const (
	MessageRoleUser      = "user"
	MessageRoleAssistant = "assistant"

	// Initial phase for a freshly created session, matching the backend's
	// onboarding vocabulary.
	SessionPhaseWelcome = "welcome_data_collection"

	// Reconciliation outcome statuses returned to callers.
	SyncStatusExists      = "exists"
	SyncStatusSynced      = "synced"
	SyncStatusBackendOnly = "backend_only"
	SyncStatusCreated     = "created"
	SyncStatusUpdated     = "updated"
	SyncStatusNoChanges   = "no_changes"
)

// TopicExtractedData is the default watermill topic for the extraction
// pipeline, overridable via EXTRACTION_TOPIC_NAME.
const TopicExtractedData = "EXTRACTED_DATA"
