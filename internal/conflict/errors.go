// SPDX-License-Identifier: Apache-2.0

package conflict

import "errors"

var (
	// ErrInvariantViolation reports a structurally malformed snapshot (for
	// example, a nil vocabulary items collection). This is a programmer or
	// collaborator error and is propagated unmodified, never swallowed.
	ErrInvariantViolation = errors.New("snapshot invariant violation")

	// ErrResolutionCancelled reports that an interactive resolution was
	// abandoned by the user. Terminal for the current sync cycle.
	ErrResolutionCancelled = errors.New("conflict resolution cancelled")

	// ErrUnknownCategory reports a conflict whose category has no
	// registered strategy.
	ErrUnknownCategory = errors.New("unknown conflict category")
)
