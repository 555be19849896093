// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"

	"github.com/minitranslate/vocabsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// LocalSnapshotStore reads and writes the local replica of the synchronized
// dataset. Implementations must return snapshots with Source set to
// models.SourceLocal.
type LocalSnapshotStore interface {
	// GetSnapshot assembles the full local snapshot. A database that has
	// never been written yields an empty (but well-formed) snapshot.
	GetSnapshot(ctx context.Context) (models.Snapshot, error)

	// PutSnapshot replaces the local replica with the given snapshot in a
	// single transaction.
	PutSnapshot(ctx context.Context, snap models.Snapshot) error

	// GetLastSyncTime returns the persisted completion time of the last
	// successful sync in Unix milliseconds, or 0 if none is recorded.
	GetLastSyncTime(ctx context.Context) (int64, error)

	// PutLastSyncTime persists the completion time of a successful sync.
	PutLastSyncTime(ctx context.Context, ts int64) error
}

// ConflictHistoryRepository records applied conflict resolutions and serves
// them back newest-first. Implementations cap the log at the most recent
// historyCapacity entries.
type ConflictHistoryRepository interface {
	Record(ctx context.Context, records ...models.ResolutionRecord) error
	History(ctx context.Context, limit int) ([]models.ResolutionRecord, error)
}

// PreferenceReader provides read access to the user's stored
// conflict-resolution preference by dotted path.
type PreferenceReader interface {
	Get(ctx context.Context, path string) (any, bool, error)
}
