// SPDX-License-Identifier: Apache-2.0

package conflict

import (
	"time"

	"github.com/minitranslate/vocabsync/models"
)

// Merger folds a resolution list (or a plain two-snapshot merge) into one
// consolidated snapshot. Merge never mutates its inputs, and with a fixed
// clock it is fully deterministic: identical inputs produce byte-identical
// output.
type Merger struct {
	now func() time.Time
}

// NewMerger constructs a Merger stamping output snapshots with the given
// clock. A nil clock falls back to time.Now.
func NewMerger(now func() time.Time) *Merger {
	if now == nil {
		now = time.Now
	}
	return &Merger{now: now}
}

// Merge produces the consolidated snapshot.
//
// With no resolutions (the fast-merge path used when detection found no
// conflicts) the newer of the two snapshots becomes the base: vocabulary is
// unioned by term with the newer item winning on overlap, and settings and
// preferences shallow-merge with the base's values taking precedence.
//
// With resolutions, base (conventionally the local snapshot) is the working
// copy: each resolution overwrites its vocabulary term, settings key, or
// preference path with the resolved data (a vocabulary resolution for a term
// the base lacks inserts it), and everything untouched by a resolution
// unions exactly as in the fast path. A resolution carrying nil data kept
// the side where the key is absent, so the key ends up absent from the
// output as well.
//
// The output carries Source=merged, LastModified=merge time, and vocabulary
// sorted by term.
func (m *Merger) Merge(base, other models.Snapshot, resolutions []models.Resolution) models.Snapshot {
	var merged models.Snapshot
	if len(resolutions) == 0 {
		merged = m.fastMerge(base, other)
	} else {
		merged = m.applyResolutions(base, other, resolutions)
	}

	merged.LastModified = m.now().UnixMilli()
	merged.Source = models.SourceMerged
	merged.SortVocabulary()
	return merged
}

func (m *Merger) fastMerge(base, other models.Snapshot) models.Snapshot {
	// Newer snapshot wins the base role; ties defer to other, matching the
	// strict-greater comparison used since the first release.
	if base.LastModified <= other.LastModified {
		base, other = other, base
	}

	merged := base.Clone()
	merged.Vocabulary.Items = unionVocabulary(merged.Vocabulary.Items, other.Vocabulary.Items)
	merged.Settings = mergeSettings(merged.Settings, other.Settings, nil)
	merged.Preferences = mergePreferences(merged.Preferences, other.Preferences, nil)
	return merged
}

func (m *Merger) applyResolutions(base, other models.Snapshot, resolutions []models.Resolution) models.Snapshot {
	merged := base.Clone()
	if merged.Settings == nil {
		merged.Settings = models.SettingsMap{}
	}
	if merged.Preferences == nil {
		merged.Preferences = models.Preferences{}
	}

	resolvedTerms := make(map[string]bool)
	resolvedSettings := make(map[string]bool)
	resolvedPrefRoots := make(map[string]bool)
	for _, r := range resolutions {
		switch r.Category {
		case models.ConflictVocabulary:
			resolvedTerms[r.Key] = true
			applyVocabularyResolution(&merged, r)
		case models.ConflictSettings:
			resolvedSettings[r.Key] = true
			if r.Data == nil {
				delete(merged.Settings, r.Key)
				continue
			}
			merged.Settings[r.Key] = r.Data
		case models.ConflictPreference:
			resolvedPrefRoots[prefRoot(r.Key)] = true
			if r.Data == nil {
				merged.Preferences.Delete(r.Key)
				continue
			}
			merged.Preferences.Set(r.Key, r.Data)
		}
	}

	// Everything a resolution did not touch unions as in the fast path.
	// Resolved keys are excluded outright: a resolution that kept the side
	// where the key is absent must leave it absent, so the refill may not
	// re-add the losing side's value.
	merged.Vocabulary.Items = unionUnresolved(merged.Vocabulary.Items, other.Vocabulary.Items, resolvedTerms)
	merged.Settings = mergeSettings(merged.Settings, other.Settings, resolvedSettings)
	merged.Preferences = mergePreferences(merged.Preferences, other.Preferences, resolvedPrefRoots)
	return merged
}

// prefRoot returns the top-level segment of a dotted preference path. The
// preference refill is a shallow top-level merge, so exclusion is tracked at
// that granularity.
func prefRoot(path string) string {
	for i := 0; i < len(path); i++ {
		if path[i] == '.' {
			return path[:i]
		}
	}
	return path
}

// applyVocabularyResolution overwrites the resolved term in place, inserting
// the item when the term is not yet present (the remote-new-item path).
func applyVocabularyResolution(snap *models.Snapshot, r models.Resolution) {
	item, ok := resolutionItem(r.Data)
	if !ok {
		return
	}

	for i := range snap.Vocabulary.Items {
		if snap.Vocabulary.Items[i].Term == r.Key {
			snap.Vocabulary.Items[i] = item
			return
		}
	}
	snap.Vocabulary.Items = append(snap.Vocabulary.Items, item)
}

func resolutionItem(data any) (models.VocabularyItem, bool) {
	switch v := data.(type) {
	case *models.VocabularyItem:
		if v != nil {
			return *v, true
		}
	case models.VocabularyItem:
		return v, true
	}
	return models.VocabularyItem{}, false
}

// unionVocabulary adds items from other that are absent from base, and
// replaces base items when other's copy is strictly newer.
func unionVocabulary(base, other []models.VocabularyItem) []models.VocabularyItem {
	index := make(map[string]int, len(base))
	for i, item := range base {
		index[item.Term] = i
	}

	for _, item := range other {
		if i, ok := index[item.Term]; ok {
			if item.LastModified > base[i].LastModified {
				base[i] = item
			}
			continue
		}
		index[item.Term] = len(base)
		base = append(base, item)
	}

	return base
}

// unionUnresolved is unionVocabulary restricted to terms no resolution
// already decided.
func unionUnresolved(base, other []models.VocabularyItem, resolved map[string]bool) []models.VocabularyItem {
	var unresolved []models.VocabularyItem
	for _, item := range other {
		if !resolved[item.Term] {
			unresolved = append(unresolved, item)
		}
	}
	return unionVocabulary(base, unresolved)
}

// mergeSettings keeps base's value on overlapping keys and fills gaps from
// other. Keys in resolved were decided upstream and are never refilled.
func mergeSettings(base, other models.SettingsMap, resolved map[string]bool) models.SettingsMap {
	if base == nil {
		base = models.SettingsMap{}
	}
	for key, value := range other {
		if resolved[key] {
			continue
		}
		if _, ok := base[key]; !ok {
			base[key] = value
		}
	}
	return base
}

// mergePreferences shallow-merges the top-level preference keys, base wins.
// Top-level keys in resolved were decided upstream and are never refilled.
func mergePreferences(base, other models.Preferences, resolved map[string]bool) models.Preferences {
	if base == nil {
		base = models.Preferences{}
	}
	for key, value := range other {
		if resolved[key] {
			continue
		}
		if _, ok := base[key]; !ok {
			base[key] = value
		}
	}
	return base
}
