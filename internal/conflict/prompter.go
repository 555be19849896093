// SPDX-License-Identifier: Apache-2.0

package conflict

import (
	"context"

	"github.com/minitranslate/vocabsync/models"
)

// Prompter presents one conflict to a human and waits for a side to be
// picked. The hosting environment selects the implementation: interactive
// hosts block on a UI, headless hosts report that no choice is available so
// the manual strategy can degrade to its auto-resolve fallback.
type Prompter interface {
	// Choose returns the selected side. ok is false when the environment
	// cannot prompt (no UI surface); the caller then auto-resolves.
	// An abandoned prompt returns [ErrResolutionCancelled].
	Choose(ctx context.Context, c models.Conflict) (choice models.ResolutionChoice, ok bool, err error)
}

// HeadlessPrompter is the non-interactive [Prompter]. It never blocks and
// always reports that no choice is available.
type HeadlessPrompter struct{}

func (HeadlessPrompter) Choose(context.Context, models.Conflict) (models.ResolutionChoice, bool, error) {
	return "", false, nil
}
