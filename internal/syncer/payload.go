// SPDX-License-Identifier: Apache-2.0

package syncer

import "github.com/minitranslate/vocabsync/models"

// payloadVersion tags the fast-store envelope format.
const payloadVersion = "1.0"

// buildPayload compresses a snapshot into the fast-store wire form: each
// vocabulary item is stripped to its term, translation and lastModified so
// the serialized payload fits the store's size cap.
func buildPayload(snap models.Snapshot) models.RemotePayload {
	items := make([]models.VocabularyItem, len(snap.Vocabulary.Items))
	for i, item := range snap.Vocabulary.Items {
		items[i] = models.VocabularyItem{
			Term:         item.Term,
			Translation:  item.Translation,
			LastModified: item.LastModified,
		}
	}

	return models.RemotePayload{
		Vocabulary:  models.Vocabulary{Items: items},
		Settings:    snap.Settings,
		Preferences: snap.Preferences,
		Metadata: models.SyncMetadata{
			LastModified: snap.LastModified,
			Source:       snap.Source,
			Version:      payloadVersion,
		},
	}
}

// snapshotFromPayload reassembles a remote snapshot from the fast-store
// envelope. The items collection is normalized to non-nil so the result
// always satisfies the snapshot invariant.
func snapshotFromPayload(payload models.RemotePayload) models.Snapshot {
	snap := models.Snapshot{
		Vocabulary:   payload.Vocabulary,
		Settings:     payload.Settings,
		Preferences:  payload.Preferences,
		LastModified: payload.Metadata.LastModified,
		Source:       models.SourceRemote,
	}
	if snap.Vocabulary.Items == nil {
		snap.Vocabulary.Items = []models.VocabularyItem{}
	}
	return snap
}
