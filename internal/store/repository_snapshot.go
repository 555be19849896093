// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/minitranslate/vocabsync/internal/logger"
	"github.com/minitranslate/vocabsync/models"
)

const (
	metaKeyPreferences  = "preferences"
	metaKeyLastModified = "last_modified"
	metaKeyLastSyncTime = "last_sync_time"
)

type snapshotRepository struct {
	*DB
	logger *logger.Logger
}

// NewSnapshotRepository returns the SQLite-backed [LocalSnapshotStore].
// Vocabulary items and settings live in their own tables; the nested
// preference document and the snapshot timestamps live in the meta table as
// JSON/scalar values.
func NewSnapshotRepository(db *DB, logger *logger.Logger) LocalSnapshotStore {
	return &snapshotRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *snapshotRepository) GetSnapshot(ctx context.Context) (models.Snapshot, error) {
	log := r.logger

	snap := models.Snapshot{
		Vocabulary:  models.Vocabulary{Items: []models.VocabularyItem{}},
		Settings:    models.SettingsMap{},
		Preferences: models.Preferences{},
		Source:      models.SourceLocal,
	}

	rows, err := r.DB.QueryContext(ctx, getAllVocabularyItems)
	if err != nil {
		log.Err(err).Str("func", "snapshotRepository.GetSnapshot").Msg("failed to query vocabulary items")
		return models.Snapshot{}, fmt.Errorf("failed to query vocabulary items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.VocabularyItem
		var examples string
		if err = rows.Scan(&item.Term, &item.Translation, &item.LastModified, &item.Notes, &examples); err != nil {
			return models.Snapshot{}, fmt.Errorf("failed to scan vocabulary item: %w", err)
		}
		if examples != "" && examples != "[]" {
			if err = json.Unmarshal([]byte(examples), &item.Examples); err != nil {
				return models.Snapshot{}, fmt.Errorf("failed to decode examples for term %q: %w", item.Term, err)
			}
		}
		snap.Vocabulary.Items = append(snap.Vocabulary.Items, item)
	}
	if err = rows.Err(); err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to iterate vocabulary items: %w", err)
	}

	if snap.Settings, err = r.getSettings(ctx); err != nil {
		return models.Snapshot{}, err
	}

	if err = r.getMetaJSON(ctx, metaKeyPreferences, &snap.Preferences); err != nil {
		return models.Snapshot{}, err
	}

	lastModified, err := r.getMetaInt(ctx, metaKeyLastModified)
	if err != nil {
		return models.Snapshot{}, err
	}
	snap.LastModified = lastModified

	return snap, nil
}

func (r *snapshotRepository) PutSnapshot(ctx context.Context, snap models.Snapshot) error {
	log := r.logger

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin snapshot transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteAllVocabularyItems); err != nil {
		return fmt.Errorf("failed to clear vocabulary items: %w", err)
	}
	for _, item := range snap.Vocabulary.Items {
		examples := "[]"
		if len(item.Examples) > 0 {
			data, encErr := json.Marshal(item.Examples)
			if encErr != nil {
				return fmt.Errorf("failed to encode examples for term %q: %w", item.Term, encErr)
			}
			examples = string(data)
		}
		if _, err = tx.ExecContext(ctx, insertVocabularyItem,
			item.Term, item.Translation, item.LastModified, item.Notes, examples,
		); err != nil {
			log.Err(err).
				Str("func", "snapshotRepository.PutSnapshot").
				Str("term", item.Term).
				Msg("failed to insert vocabulary item")
			return fmt.Errorf("failed to insert vocabulary item %q: %w", item.Term, err)
		}
	}

	if _, err = tx.ExecContext(ctx, deleteAllSettings); err != nil {
		return fmt.Errorf("failed to clear settings: %w", err)
	}
	for key, value := range snap.Settings {
		data, encErr := json.Marshal(value)
		if encErr != nil {
			return fmt.Errorf("failed to encode setting %q: %w", key, encErr)
		}
		if _, err = tx.ExecContext(ctx, insertSetting, key, string(data)); err != nil {
			return fmt.Errorf("failed to insert setting %q: %w", key, err)
		}
	}

	prefs, err := json.Marshal(snap.Preferences)
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}
	if _, err = tx.ExecContext(ctx, upsertMetaValue, metaKeyPreferences, string(prefs)); err != nil {
		return fmt.Errorf("failed to store preferences: %w", err)
	}
	if _, err = tx.ExecContext(ctx, upsertMetaValue, metaKeyLastModified, strconv.FormatInt(snap.LastModified, 10)); err != nil {
		return fmt.Errorf("failed to store snapshot timestamp: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot transaction: %w", err)
	}

	return nil
}

func (r *snapshotRepository) GetLastSyncTime(ctx context.Context) (int64, error) {
	return r.getMetaInt(ctx, metaKeyLastSyncTime)
}

func (r *snapshotRepository) PutLastSyncTime(ctx context.Context, ts int64) error {
	if _, err := r.DB.ExecContext(ctx, upsertMetaValue, metaKeyLastSyncTime, strconv.FormatInt(ts, 10)); err != nil {
		return fmt.Errorf("failed to store last sync time: %w", err)
	}
	return nil
}

// Get implements [PreferenceReader] against the stored preference document,
// so the resolver's user-preference strategy reads the same data the engine
// syncs.
func (r *snapshotRepository) Get(ctx context.Context, path string) (any, bool, error) {
	var prefs models.Preferences
	if err := r.getMetaJSON(ctx, metaKeyPreferences, &prefs); err != nil {
		return nil, false, err
	}

	value, ok := prefs.Lookup(path)
	return value, ok, nil
}

func (r *snapshotRepository) getSettings(ctx context.Context) (models.SettingsMap, error) {
	settings := models.SettingsMap{}

	rows, err := r.DB.QueryContext(ctx, getAllSettings)
	if err != nil {
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key, raw string
		if err = rows.Scan(&key, &raw); err != nil {
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		var value any
		if err = json.Unmarshal([]byte(raw), &value); err != nil {
			return nil, fmt.Errorf("failed to decode setting %q: %w", key, err)
		}
		settings[key] = value
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate settings: %w", err)
	}

	return settings, nil
}

func (r *snapshotRepository) getMetaJSON(ctx context.Context, key string, dst any) error {
	var raw string
	err := r.DB.QueryRowContext(ctx, getMetaValue, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read meta key %q: %w", key, err)
	}

	if err = json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("failed to decode meta key %q: %w", key, err)
	}
	return nil
}

func (r *snapshotRepository) getMetaInt(ctx context.Context, key string) (int64, error) {
	var raw string
	err := r.DB.QueryRowContext(ctx, getMetaValue, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read meta key %q: %w", key, err)
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse meta key %q: %w", key, err)
	}
	return value, nil
}
