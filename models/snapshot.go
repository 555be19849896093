// SPDX-License-Identifier: Apache-2.0

package models

import "sort"

// Source identifies which replica a Snapshot was read from, or that it is the
// product of a merge.
type Source string

const (
	SourceLocal  Source = "local"
	SourceRemote Source = "remote"
	SourceMerged Source = "merged"
)

// VocabularyItem is a single saved term. Term is the unique key within one
// snapshot; LastModified is a Unix-millisecond timestamp of the last edit.
// Notes and Examples are display-only extras and are stripped before the
// size-capped remote write.
type VocabularyItem struct {
	Term         string   `json:"term"`
	Translation  string   `json:"translation"`
	LastModified int64    `json:"lastModified"`
	Notes        string   `json:"notes,omitempty"`
	Examples     []string `json:"examples,omitempty"`
}

// Vocabulary holds the saved term list of one snapshot.
//
// Items may be nil on a snapshot that was never initialised by its producer;
// that violates the snapshot invariant and is rejected by the conflict
// detector rather than papered over.
type Vocabulary struct {
	Items []VocabularyItem `json:"items"`
}

// SettingsMap holds application settings as scalar values keyed by name.
// Only keys on the configured critical-key allowlist participate in conflict
// detection; everything else merges silently.
type SettingsMap map[string]any

// Preferences is the nested user-preference document. The distinguished path
// "conflictResolution.preferredSource" selects the default side for settings
// conflicts.
type Preferences map[string]any

// PreferredSourcePath is the dotted preference path that controls the
// user-preference resolution strategy.
const PreferredSourcePath = "conflictResolution.preferredSource"

// Lookup walks the nested preference maps along a dotted path.
// The second return reports whether every segment of the path was present.
func (p Preferences) Lookup(path string) (any, bool) {
	if p == nil {
		return nil, false
	}

	var cur any = map[string]any(p)
	start := 0
	for i := 0; i <= len(path); i++ {
		if i != len(path) && path[i] != '.' {
			continue
		}
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[path[start:i]]
		if !ok {
			return nil, false
		}
		start = i + 1
	}

	return cur, true
}

// Delete removes the value at a dotted path. Missing intermediates make it
// a no-op; empty intermediate maps are left in place.
func (p Preferences) Delete(path string) {
	if p == nil {
		return
	}

	m := map[string]any(p)
	start := 0
	for i := 0; i < len(path); i++ {
		if path[i] != '.' {
			continue
		}
		next, ok := m[path[start:i]].(map[string]any)
		if !ok {
			return
		}
		m = next
		start = i + 1
	}
	delete(m, path[start:])
}

// Set writes value at a dotted path, creating intermediate maps as needed.
// Existing non-map intermediates are replaced.
func (p Preferences) Set(path string, value any) {
	m := map[string]any(p)
	start := 0
	for i := 0; i < len(path); i++ {
		if path[i] != '.' {
			continue
		}
		seg := path[start:i]
		next, ok := m[seg].(map[string]any)
		if !ok {
			next = make(map[string]any)
			m[seg] = next
		}
		m = next
		start = i + 1
	}
	m[path[start:]] = value
}

// Snapshot is a complete point-in-time view of the synchronized dataset.
// Snapshots are treated as immutable values: engine components never mutate a
// snapshot they received, they build new ones via Clone.
type Snapshot struct {
	Vocabulary   Vocabulary  `json:"vocabulary"`
	Settings     SettingsMap `json:"settings"`
	Preferences  Preferences `json:"userPreferences"`
	LastModified int64       `json:"lastModified"`
	Source       Source      `json:"source"`
}

// SyncMetadata is the envelope block stored next to the dataset in the
// size-capped remote store.
type SyncMetadata struct {
	LastModified int64  `json:"lastModified"`
	Source       Source `json:"source"`
	Version      string `json:"version"`
}

// RemotePayload is the wire representation written to the fast remote store:
// the compressed dataset plus its metadata envelope.
type RemotePayload struct {
	Vocabulary  Vocabulary   `json:"vocabulary"`
	Settings    SettingsMap  `json:"settings"`
	Preferences Preferences  `json:"userPreferences"`
	Metadata    SyncMetadata `json:"syncMetadata"`
}

// Clone returns a deep copy of the snapshot. The copy shares no mutable state
// with the receiver, so callers may freely modify it.
func (s Snapshot) Clone() Snapshot {
	out := s
	if s.Vocabulary.Items != nil {
		out.Vocabulary.Items = make([]VocabularyItem, len(s.Vocabulary.Items))
		for i, item := range s.Vocabulary.Items {
			out.Vocabulary.Items[i] = item
			if item.Examples != nil {
				out.Vocabulary.Items[i].Examples = append([]string(nil), item.Examples...)
			}
		}
	}
	out.Settings = SettingsMap(cloneMap(s.Settings))
	out.Preferences = Preferences(cloneMap(s.Preferences))
	return out
}

// Item returns the vocabulary item with the given term, if present.
func (s Snapshot) Item(term string) (VocabularyItem, bool) {
	for _, item := range s.Vocabulary.Items {
		if item.Term == term {
			return item, true
		}
	}
	return VocabularyItem{}, false
}

// SortVocabulary orders the vocabulary items by term. Merge output is sorted
// so that identical inputs always produce byte-identical snapshots.
func (s *Snapshot) SortVocabulary() {
	sort.Slice(s.Vocabulary.Items, func(i, j int) bool {
		return s.Vocabulary.Items[i].Term < s.Vocabulary.Items[j].Term
	})
}

func cloneMap(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}
	dst := make(map[string]any, len(src))
	for k, v := range src {
		if nested, ok := v.(map[string]any); ok {
			dst[k] = cloneMap(nested)
			continue
		}
		dst[k] = v
	}
	return dst
}
