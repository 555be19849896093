// SPDX-License-Identifier: Apache-2.0

package conflict

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minitranslate/vocabsync/internal/logger"
	"github.com/minitranslate/vocabsync/models"
)

// stubPreferences is a PreferenceReader backed by a plain map.
type stubPreferences struct {
	values map[string]any
	err    error
}

func (s *stubPreferences) Get(_ context.Context, path string) (any, bool, error) {
	if s.err != nil {
		return nil, false, s.err
	}
	value, ok := s.values[path]
	return value, ok, nil
}

// stubPrompter scripts the manual strategy's answer.
type stubPrompter struct {
	choice models.ResolutionChoice
	ok     bool
	err    error
	asked  int
}

func (s *stubPrompter) Choose(context.Context, models.Conflict) (models.ResolutionChoice, bool, error) {
	s.asked++
	return s.choice, s.ok, s.err
}

func vocabularyConflict(localTime, remoteTime int64) models.Conflict {
	return models.Conflict{
		Category: models.ConflictVocabulary,
		Key:      "apfel",
		Local:    &models.VocabularyItem{Term: "apfel", Translation: "apple", LastModified: localTime},
		Remote:   &models.VocabularyItem{Term: "apfel", Translation: "apple (fruit)", LastModified: remoteTime},
		Kind:     models.KindModification,
	}
}

func settingsConflict() models.Conflict {
	return models.Conflict{
		Category: models.ConflictSettings,
		Key:      "aiProvider",
		Local:    "gemini",
		Remote:   "openai",
		Kind:     models.KindValueMismatch,
	}
}

func TestResolve_TimestampStrategy(t *testing.T) {
	tests := []struct {
		name       string
		localTime  int64
		remoteTime int64
		wantChoice models.ResolutionChoice
		wantReason string
	}{
		{
			name:       "local newer keeps local",
			localTime:  2000,
			remoteTime: 1000,
			wantChoice: models.ChooseLocal,
			wantReason: "local data is newer",
		},
		{
			name:       "remote newer keeps remote",
			localTime:  1000,
			remoteTime: 2000,
			wantChoice: models.ChooseRemote,
			wantReason: "remote data is newer",
		},
		{
			name:       "exact tie keeps local",
			localTime:  1000,
			remoteTime: 1000,
			wantChoice: models.ChooseLocal,
			wantReason: "timestamps equal, keeping local",
		},
	}

	r := NewResolver(&stubPreferences{}, HeadlessPrompter{}, logger.Nop())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := vocabularyConflict(tt.localTime, tt.remoteTime)

			resolution, err := r.Resolve(context.Background(), c)

			require.NoError(t, err)
			assert.Equal(t, models.StrategyTimestamp, resolution.Strategy)
			assert.Equal(t, tt.wantChoice, resolution.Choice)
			assert.Equal(t, tt.wantReason, resolution.Reason)
			assert.Equal(t, models.ConflictVocabulary, resolution.Category)
			assert.Equal(t, "apfel", resolution.Key)

			wantData := c.Local
			if tt.wantChoice == models.ChooseRemote {
				wantData = c.Remote
			}
			assert.Equal(t, wantData, resolution.Data)
		})
	}
}

func TestResolve_UserPreferenceStrategy(t *testing.T) {
	tests := []struct {
		name       string
		prefs      *stubPreferences
		wantChoice models.ResolutionChoice
	}{
		{
			name:       "cloud preference keeps remote",
			prefs:      &stubPreferences{values: map[string]any{models.PreferredSourcePath: "cloud"}},
			wantChoice: models.ChooseRemote,
		},
		{
			name:       "local preference keeps local",
			prefs:      &stubPreferences{values: map[string]any{models.PreferredSourcePath: "local"}},
			wantChoice: models.ChooseLocal,
		},
		{
			name:       "unset preference defaults to local",
			prefs:      &stubPreferences{},
			wantChoice: models.ChooseLocal,
		},
		{
			name:       "unreadable preference defaults to local",
			prefs:      &stubPreferences{err: errors.New("database is locked")},
			wantChoice: models.ChooseLocal,
		},
		{
			name:       "non-string preference defaults to local",
			prefs:      &stubPreferences{values: map[string]any{models.PreferredSourcePath: 42}},
			wantChoice: models.ChooseLocal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(tt.prefs, HeadlessPrompter{}, logger.Nop())
			c := settingsConflict()

			resolution, err := r.Resolve(context.Background(), c)

			require.NoError(t, err)
			assert.Equal(t, models.StrategyUserPreference, resolution.Strategy)
			assert.Equal(t, tt.wantChoice, resolution.Choice)

			wantData := c.Local
			if tt.wantChoice == models.ChooseRemote {
				wantData = c.Remote
			}
			assert.Equal(t, wantData, resolution.Data)
		})
	}
}

func TestResolve_ManualStrategy(t *testing.T) {
	t.Run("prompter choice wins", func(t *testing.T) {
		prompter := &stubPrompter{choice: models.ChooseRemote, ok: true}
		r := NewResolver(&stubPreferences{}, prompter, logger.Nop())
		r.Route(models.ConflictSettings, Manual(prompter))
		c := settingsConflict()

		resolution, err := r.Resolve(context.Background(), c)

		require.NoError(t, err)
		assert.Equal(t, models.StrategyManual, resolution.Strategy)
		assert.Equal(t, models.ChooseRemote, resolution.Choice)
		assert.Equal(t, "user selected manually", resolution.Reason)
		assert.Equal(t, c.Remote, resolution.Data)
		assert.Equal(t, 1, prompter.asked)
	})

	t.Run("headless environment auto-resolves to local", func(t *testing.T) {
		r := NewResolver(&stubPreferences{}, HeadlessPrompter{}, logger.Nop())
		r.Route(models.ConflictSettings, Manual(HeadlessPrompter{}))
		c := settingsConflict()

		resolution, err := r.Resolve(context.Background(), c)

		require.NoError(t, err)
		assert.Equal(t, models.ChooseLocal, resolution.Choice)
		assert.Equal(t, models.AutoResolveReason, resolution.Reason)
		assert.Equal(t, c.Local, resolution.Data)
	})

	t.Run("cancelled prompt propagates", func(t *testing.T) {
		prompter := &stubPrompter{err: ErrResolutionCancelled}
		r := NewResolver(&stubPreferences{}, prompter, logger.Nop())
		r.Route(models.ConflictSettings, Manual(prompter))

		_, err := r.Resolve(context.Background(), settingsConflict())

		assert.ErrorIs(t, err, ErrResolutionCancelled)
	})
}

func TestResolve_UnknownCategory(t *testing.T) {
	r := NewResolver(&stubPreferences{}, HeadlessPrompter{}, logger.Nop())

	_, err := r.Resolve(context.Background(), models.Conflict{Category: "bookmarks"})

	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestResolveAll(t *testing.T) {
	t.Run("resolves every conflict in order", func(t *testing.T) {
		r := NewResolver(
			&stubPreferences{values: map[string]any{models.PreferredSourcePath: "cloud"}},
			HeadlessPrompter{},
			logger.Nop(),
		)

		conflicts := []models.Conflict{
			vocabularyConflict(2000, 1000),
			settingsConflict(),
		}

		resolutions, err := r.ResolveAll(context.Background(), conflicts)

		require.NoError(t, err)
		require.Len(t, resolutions, 2)
		assert.Equal(t, models.ChooseLocal, resolutions[0].Choice)
		assert.Equal(t, models.ChooseRemote, resolutions[1].Choice)
	})

	t.Run("stops on first error", func(t *testing.T) {
		prompter := &stubPrompter{err: ErrResolutionCancelled}
		r := NewResolver(&stubPreferences{}, prompter, logger.Nop())
		r.Route(models.ConflictVocabulary, Manual(prompter))

		conflicts := []models.Conflict{
			vocabularyConflict(2000, 1000),
			settingsConflict(),
		}

		_, err := r.ResolveAll(context.Background(), conflicts)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrResolutionCancelled)
		assert.Equal(t, 1, prompter.asked)
	})
}
