// SPDX-License-Identifier: Apache-2.0

package models

// ConflictCategory is the closed set of dataset areas a conflict can belong to.
type ConflictCategory string

const (
	ConflictVocabulary ConflictCategory = "vocabulary"
	ConflictSettings   ConflictCategory = "settings"
	ConflictPreference ConflictCategory = "preference"
)

// ConflictKind names the shape of the disagreement.
type ConflictKind string

const (
	KindModification       ConflictKind = "modification"
	KindValueMismatch      ConflictKind = "value_mismatch"
	KindPreferenceMismatch ConflictKind = "preference_mismatch"
)

// Conflict is one detected disagreement between the local and remote snapshot.
// Key is the vocabulary term, settings key, or preference path. Local and
// Remote carry the two sides' values; a nil side means the key exists in only
// one replica. For vocabulary conflicts the values are *VocabularyItem.
type Conflict struct {
	Category ConflictCategory `json:"category"`
	Key      string           `json:"key"`
	Local    any              `json:"local"`
	Remote   any              `json:"remote"`
	Kind     ConflictKind     `json:"kind"`
}

// ResolutionStrategy names the policy that produced a Resolution.
type ResolutionStrategy string

const (
	StrategyTimestamp      ResolutionStrategy = "timestamp"
	StrategyUserPreference ResolutionStrategy = "user_preference"
	StrategyManual         ResolutionStrategy = "manual"
)

// ResolutionChoice is the side whose value a Resolution keeps.
type ResolutionChoice string

const (
	ChooseLocal  ResolutionChoice = "local"
	ChooseRemote ResolutionChoice = "remote"
)

// AutoResolveReason is the sentinel recorded in Resolution.Reason when a
// manual resolution ran without an interactive prompter and degraded to the
// automatic default.
const AutoResolveReason = "auto-resolve"

// Resolution is the decided outcome for one Conflict. It is pure data: the
// merger applies Data at Category/Key, nothing else interprets it.
type Resolution struct {
	Category ConflictCategory   `json:"category"`
	Key      string             `json:"key"`
	Strategy ResolutionStrategy `json:"strategy"`
	Choice   ResolutionChoice   `json:"choice"`
	Reason   string             `json:"reason"`
	Data     any                `json:"data"`
}

// ResolutionRecord is one row of the local conflict-history log.
type ResolutionRecord struct {
	ID         string           `json:"id"`
	RunID      string           `json:"run_id"`
	Category   ConflictCategory `json:"category"`
	Key        string           `json:"key"`
	Strategy   string           `json:"strategy"`
	Choice     string           `json:"choice"`
	Reason     string           `json:"reason"`
	ResolvedAt int64            `json:"resolved_at"`
}
