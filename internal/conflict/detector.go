// SPDX-License-Identifier: Apache-2.0

// Package conflict implements the pure core of the sync engine: detection of
// disagreements between the local and remote snapshot, per-category
// resolution strategies, and the merge that folds resolutions into one
// consolidated snapshot.
package conflict

import (
	"fmt"
	"reflect"

	"github.com/minitranslate/vocabsync/models"
)

// Detector compares two snapshots and produces an ordered conflict list.
// It is stateless apart from the configured critical-settings allowlist and
// performs no I/O.
type Detector struct {
	criticalKeys []string
}

// NewDetector constructs a Detector checking the given settings keys for
// conflicts. Keys outside the allowlist merge silently.
func NewDetector(criticalKeys []string) *Detector {
	return &Detector{criticalKeys: criticalKeys}
}

// Detect returns every disagreement between local and remote, ordered as:
// vocabulary conflicts (in local item order), settings conflicts (in
// allowlist order), then the preference conflict. The ordering carries no
// merge semantics; it only keeps test fixtures reproducible.
//
// A snapshot without an items collection violates the snapshot invariant and
// yields a wrapped [ErrInvariantViolation].
func (d *Detector) Detect(local, remote models.Snapshot) ([]models.Conflict, error) {
	if local.Vocabulary.Items == nil {
		return nil, fmt.Errorf("%w: local snapshot has no vocabulary items collection", ErrInvariantViolation)
	}
	if remote.Vocabulary.Items == nil {
		return nil, fmt.Errorf("%w: remote snapshot has no vocabulary items collection", ErrInvariantViolation)
	}

	conflicts := d.detectVocabulary(local, remote)
	conflicts = append(conflicts, d.detectSettings(local.Settings, remote.Settings)...)
	conflicts = append(conflicts, detectPreference(local.Preferences, remote.Preferences)...)

	return conflicts, nil
}

// detectVocabulary reports modification conflicts: terms present in both
// replicas whose lastModified timestamps disagree. Terms present on only one
// side are not conflicts; the merge unions them.
func (d *Detector) detectVocabulary(local, remote models.Snapshot) []models.Conflict {
	remoteByTerm := make(map[string]models.VocabularyItem, len(remote.Vocabulary.Items))
	for _, item := range remote.Vocabulary.Items {
		remoteByTerm[item.Term] = item
	}

	var conflicts []models.Conflict
	for _, localItem := range local.Vocabulary.Items {
		remoteItem, ok := remoteByTerm[localItem.Term]
		if !ok {
			continue
		}
		if localItem.LastModified == remoteItem.LastModified {
			continue
		}

		localItem := localItem
		conflicts = append(conflicts, models.Conflict{
			Category: models.ConflictVocabulary,
			Key:      localItem.Term,
			Local:    &localItem,
			Remote:   &remoteItem,
			Kind:     models.KindModification,
		})
	}

	return conflicts
}

// detectSettings reports value mismatches on the critical-key allowlist.
// A key defined on only one side still conflicts; the absent side is nil.
func (d *Detector) detectSettings(local, remote models.SettingsMap) []models.Conflict {
	var conflicts []models.Conflict
	for _, key := range d.criticalKeys {
		localValue, localOK := local[key]
		remoteValue, remoteOK := remote[key]
		if !localOK && !remoteOK {
			continue
		}
		if reflect.DeepEqual(localValue, remoteValue) {
			continue
		}

		conflicts = append(conflicts, models.Conflict{
			Category: models.ConflictSettings,
			Key:      key,
			Local:    localValue,
			Remote:   remoteValue,
			Kind:     models.KindValueMismatch,
		})
	}

	return conflicts
}

// detectPreference reports a mismatch on the distinguished
// conflictResolution.preferredSource path.
func detectPreference(local, remote models.Preferences) []models.Conflict {
	localValue, localOK := local.Lookup(models.PreferredSourcePath)
	remoteValue, remoteOK := remote.Lookup(models.PreferredSourcePath)
	if !localOK && !remoteOK {
		return nil
	}
	if reflect.DeepEqual(localValue, remoteValue) {
		return nil
	}

	return []models.Conflict{{
		Category: models.ConflictPreference,
		Key:      models.PreferredSourcePath,
		Local:    localValue,
		Remote:   remoteValue,
		Kind:     models.KindPreferenceMismatch,
	}}
}
