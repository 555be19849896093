// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"fmt"

	"github.com/minitranslate/vocabsync/internal/config"
	"github.com/minitranslate/vocabsync/internal/logger"
)

// Storages groups the local persistence repositories into a single value
// that is passed to the engine layer.
type Storages struct {
	// Snapshots is the SQLite-backed local replica.
	Snapshots LocalSnapshotStore
	// History is the capped conflict-resolution log.
	History ConflictHistoryRepository
	// Preferences reads the stored conflict-resolution preference. Backed
	// by the same repository as Snapshots.
	Preferences PreferenceReader
}

// NewStorages initialises the local storage layer: it opens the SQLite
// database named by cfg.DB.DSN (creating the file if needed), runs pending
// goose migrations, and wires the repositories.
func NewStorages(cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating local storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	snapshots := NewSnapshotRepository(db, log)

	return &Storages{
		Snapshots:   snapshots,
		History:     NewHistoryRepository(db, log),
		Preferences: snapshots.(*snapshotRepository),
	}, nil
}
