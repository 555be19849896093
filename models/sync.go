// SPDX-License-Identifier: Apache-2.0

package models

// ErrorKind is the engine's error taxonomy as surfaced to event consumers.
type ErrorKind string

const (
	ErrKindNone                  ErrorKind = ""
	ErrKindAuthenticationMissing ErrorKind = "authentication_missing"
	ErrKindRemoteUnavailable     ErrorKind = "remote_unavailable"
	ErrKindLocalPersistence      ErrorKind = "local_persistence"
	ErrKindResolutionCancelled   ErrorKind = "resolution_cancelled"
	ErrKindInvariantViolation    ErrorKind = "invariant_violation"
)

// SyncResult is the outcome of one orchestrator Run. Skipped is set when the
// call observed another sync already in flight and did nothing.
type SyncResult struct {
	Success   bool      `json:"success"`
	Skipped   bool      `json:"skipped"`
	Error     ErrorKind `json:"error,omitempty"`
	Timestamp int64     `json:"timestamp"`
}

// SyncCompleted is the event published after every non-skipped Run outcome,
// including retryable failures awaiting the next attempt.
type SyncCompleted struct {
	RunID        string    `json:"run_id"`
	Success      bool      `json:"success"`
	Error        ErrorKind `json:"error,omitempty"`
	Reason       string    `json:"reason"`
	Timestamp    int64     `json:"timestamp"`
	LastSyncTime int64     `json:"last_sync_time,omitempty"`
	WillRetry    bool      `json:"will_retry"`
}

// SyncStatus is a point-in-time view of the orchestrator's internal state.
type SyncStatus struct {
	Syncing      bool  `json:"syncing"`
	RetryCount   int   `json:"retry_count"`
	MaxRetries   int   `json:"max_retries"`
	LastSyncTime int64 `json:"last_sync_time,omitempty"`
}
