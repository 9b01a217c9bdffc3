package service

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionNotFound is returned when neither the local store nor the
	// AI backend knows the session.
	ErrSessionNotFound = errors.New("session not found")

	// ErrMessageNotFound is returned for citation lookups against an
	// unknown message id.
	ErrMessageNotFound = errors.New("message not found")

	// ErrMissingData rejects reconciliation calls without a session id.
	ErrMissingData = errors.New("session_id is required")
)

// StoreWriteError wraps a persistence failure that survived the retry
// budget. Callers translate it to a 503 so the backend can resubmit.
type StoreWriteError struct {
	Op  string
	Err error
}

func (e *StoreWriteError) Error() string {
	return fmt.Sprintf("store write failed (%s): %v", e.Op, e.Err)
}

func (e *StoreWriteError) Unwrap() error {
	return e.Err
}
