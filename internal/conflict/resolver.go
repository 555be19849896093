// SPDX-License-Identifier: Apache-2.0

package conflict

import (
	"context"
	"fmt"

	"github.com/minitranslate/vocabsync/internal/logger"
	"github.com/minitranslate/vocabsync/internal/store"
	"github.com/minitranslate/vocabsync/models"
)

// Strategy decides one conflict. Implementations may block (reading a stored
// preference, waiting on a prompt) but must always terminate with a
// Resolution or an error.
type Strategy interface {
	Name() models.ResolutionStrategy
	Resolve(ctx context.Context, c models.Conflict) (models.Resolution, error)
}

// Resolver routes each conflict to the strategy registered for its category:
// vocabulary conflicts resolve by timestamp, settings and preference
// conflicts by the user's stored preference.
type Resolver struct {
	strategies map[models.ConflictCategory]Strategy
	logger     *logger.Logger
}

// NewResolver wires the default category routing. prompter backs the manual
// strategy, which is not routed by default but is available through
// [Resolver.Manual] for interactive hosts.
func NewResolver(prefs store.PreferenceReader, prompter Prompter, log *logger.Logger) *Resolver {
	userPref := &userPreferenceStrategy{prefs: prefs}
	return &Resolver{
		strategies: map[models.ConflictCategory]Strategy{
			models.ConflictVocabulary: timestampStrategy{},
			models.ConflictSettings:   userPref,
			models.ConflictPreference: userPref,
		},
		logger: log,
	}
}

// Resolve decides a single conflict via its category's strategy.
func (r *Resolver) Resolve(ctx context.Context, c models.Conflict) (models.Resolution, error) {
	strategy, ok := r.strategies[c.Category]
	if !ok {
		return models.Resolution{}, fmt.Errorf("%w: %q", ErrUnknownCategory, c.Category)
	}

	resolution, err := strategy.Resolve(ctx, c)
	if err != nil {
		return models.Resolution{}, err
	}

	r.logger.Debug().
		Str("category", string(c.Category)).
		Str("key", c.Key).
		Str("strategy", string(resolution.Strategy)).
		Str("choice", string(resolution.Choice)).
		Msg("conflict resolved")

	return resolution, nil
}

// ResolveAll decides every conflict in order.
func (r *Resolver) ResolveAll(ctx context.Context, conflicts []models.Conflict) ([]models.Resolution, error) {
	resolutions := make([]models.Resolution, 0, len(conflicts))
	for _, c := range conflicts {
		resolution, err := r.Resolve(ctx, c)
		if err != nil {
			return nil, fmt.Errorf("resolve %s conflict on %q: %w", c.Category, c.Key, err)
		}
		resolutions = append(resolutions, resolution)
	}
	return resolutions, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// timestamp strategy
// ─────────────────────────────────────────────────────────────────────────────

// timestampStrategy keeps the side with the strictly greater lastModified.
// An exact tie keeps local; the tie-break is documented behavior, not an
// accident of ordering.
type timestampStrategy struct{}

func (timestampStrategy) Name() models.ResolutionStrategy { return models.StrategyTimestamp }

func (timestampStrategy) Resolve(_ context.Context, c models.Conflict) (models.Resolution, error) {
	localTime := itemLastModified(c.Local)
	remoteTime := itemLastModified(c.Remote)

	resolution := models.Resolution{
		Category: c.Category,
		Key:      c.Key,
		Strategy: models.StrategyTimestamp,
	}

	switch {
	case localTime > remoteTime:
		resolution.Choice = models.ChooseLocal
		resolution.Reason = "local data is newer"
		resolution.Data = c.Local
	case remoteTime > localTime:
		resolution.Choice = models.ChooseRemote
		resolution.Reason = "remote data is newer"
		resolution.Data = c.Remote
	default:
		resolution.Choice = models.ChooseLocal
		resolution.Reason = "timestamps equal, keeping local"
		resolution.Data = c.Local
	}

	return resolution, nil
}

func itemLastModified(v any) int64 {
	switch item := v.(type) {
	case *models.VocabularyItem:
		if item != nil {
			return item.LastModified
		}
	case models.VocabularyItem:
		return item.LastModified
	}
	return 0
}

// ─────────────────────────────────────────────────────────────────────────────
// user-preference strategy
// ─────────────────────────────────────────────────────────────────────────────

// userPreferenceStrategy keeps the side named by the stored
// conflictResolution.preferredSource preference. Unset or unreadable
// preferences default to local.
type userPreferenceStrategy struct {
	prefs store.PreferenceReader
}

func (*userPreferenceStrategy) Name() models.ResolutionStrategy {
	return models.StrategyUserPreference
}

func (s *userPreferenceStrategy) Resolve(ctx context.Context, c models.Conflict) (models.Resolution, error) {
	resolution := models.Resolution{
		Category: c.Category,
		Key:      c.Key,
		Strategy: models.StrategyUserPreference,
	}

	preferred := "local"
	if s.prefs != nil {
		value, ok, err := s.prefs.Get(ctx, models.PreferredSourcePath)
		if err == nil && ok {
			if str, isString := value.(string); isString && str != "" {
				preferred = str
			}
		}
	}

	// The stored preference names the remote side "cloud".
	if preferred == "cloud" || preferred == "remote" {
		resolution.Choice = models.ChooseRemote
		resolution.Reason = "user preference selects cloud data"
		resolution.Data = c.Remote
		return resolution, nil
	}

	resolution.Choice = models.ChooseLocal
	resolution.Reason = "user preference selects local data"
	resolution.Data = c.Local
	return resolution, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// manual strategy
// ─────────────────────────────────────────────────────────────────────────────

// manualStrategy asks a human. Without an interactive prompter it degrades
// to keeping local and records the auto-resolve sentinel in Reason so test
// suites and event consumers can tell the degraded path apart.
type manualStrategy struct {
	prompter Prompter
}

func (*manualStrategy) Name() models.ResolutionStrategy { return models.StrategyManual }

func (s *manualStrategy) Resolve(ctx context.Context, c models.Conflict) (models.Resolution, error) {
	resolution := models.Resolution{
		Category: c.Category,
		Key:      c.Key,
		Strategy: models.StrategyManual,
	}

	choice, ok, err := s.prompter.Choose(ctx, c)
	if err != nil {
		return models.Resolution{}, err
	}
	if !ok {
		resolution.Choice = models.ChooseLocal
		resolution.Reason = models.AutoResolveReason
		resolution.Data = c.Local
		return resolution, nil
	}

	resolution.Choice = choice
	resolution.Reason = "user selected manually"
	resolution.Data = c.Local
	if choice == models.ChooseRemote {
		resolution.Data = c.Remote
	}
	return resolution, nil
}

// Manual returns a strategy that resolves through the given prompter.
// Interactive hosts route selected categories to it via [Resolver.Route].
func Manual(prompter Prompter) Strategy {
	return &manualStrategy{prompter: prompter}
}

// Route overrides the strategy used for one conflict category.
func (r *Resolver) Route(category models.ConflictCategory, strategy Strategy) {
	r.strategies[category] = strategy
}
