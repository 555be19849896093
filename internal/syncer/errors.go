// SPDX-License-Identifier: Apache-2.0

package syncer

import (
	"errors"

	"github.com/minitranslate/vocabsync/internal/adapter"
	"github.com/minitranslate/vocabsync/internal/conflict"
	"github.com/minitranslate/vocabsync/models"
)

// classify maps an operational error from one sync step onto the engine's
// error taxonomy. The engine is the only place errors are classified; every
// other component propagates them wrapped but untouched.
//
// Errors that carry no remote or resolution sentinel come from the local
// store, which wraps nothing, so the default bucket is local persistence.
func classify(err error) models.ErrorKind {
	switch {
	case err == nil:
		return models.ErrKindNone
	case errors.Is(err, adapter.ErrUnauthorized):
		return models.ErrKindAuthenticationMissing
	case errors.Is(err, conflict.ErrResolutionCancelled):
		return models.ErrKindResolutionCancelled
	case errors.Is(err, conflict.ErrInvariantViolation):
		return models.ErrKindInvariantViolation
	case errors.Is(err, adapter.ErrRemoteUnavailable),
		errors.Is(err, adapter.ErrSnapshotTooLarge):
		return models.ErrKindRemoteUnavailable
	default:
		return models.ErrKindLocalPersistence
	}
}

// terminal reports whether an error kind bypasses the retry loop entirely.
// Invariant violations are programmer errors and retrying cannot fix them.
func terminal(kind models.ErrorKind) bool {
	switch kind {
	case models.ErrKindAuthenticationMissing,
		models.ErrKindResolutionCancelled,
		models.ErrKindInvariantViolation:
		return true
	}
	return false
}
