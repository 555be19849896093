// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minitranslate/vocabsync/internal/logger"
	"github.com/minitranslate/vocabsync/models"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newDBFromSQL(db *sql.DB) *DB {
	return &DB{
		DB:     db,
		logger: logger.Nop(),
	}
}

func newTestSnapshotRepo(t *testing.T, db *sql.DB) *snapshotRepository {
	t.Helper()
	return NewSnapshotRepository(newDBFromSQL(db), logger.Nop()).(*snapshotRepository)
}

var vocabularyColumns = []string{"term", "translation", "last_modified", "notes", "examples"}

// ── GetSnapshot ──────────────────────────────────────────────────────────────

func TestSnapshotRepository_GetSnapshot_EmptyDatabase(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestSnapshotRepo(t, db)

	mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows(vocabularyColumns))
	mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows([]string{"key", "value"}))
	mock.ExpectQuery("SELECT value").WithArgs(metaKeyPreferences).WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery("SELECT value").WithArgs(metaKeyLastModified).WillReturnError(sql.ErrNoRows)

	snap, err := repo.GetSnapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, models.SourceLocal, snap.Source)
	assert.NotNil(t, snap.Vocabulary.Items)
	assert.Empty(t, snap.Vocabulary.Items)
	assert.Empty(t, snap.Settings)
	assert.Zero(t, snap.LastModified)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSnapshotRepository_GetSnapshot_FullDataset(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestSnapshotRepo(t, db)

	mock.ExpectQuery("SELECT").WillReturnRows(
		sqlmock.NewRows(vocabularyColumns).
			AddRow("hello", "你好", int64(1000), "", "[]").
			AddRow("world", "世界", int64(2000), "greeting", `["hello world"]`),
	)
	mock.ExpectQuery("SELECT").WillReturnRows(
		sqlmock.NewRows([]string{"key", "value"}).
			AddRow("targetLanguage", `"zh"`).
			AddRow("theme", `"dark"`),
	)
	mock.ExpectQuery("SELECT value").WithArgs(metaKeyPreferences).WillReturnRows(
		sqlmock.NewRows([]string{"value"}).AddRow(`{"conflictResolution":{"preferredSource":"cloud"}}`),
	)
	mock.ExpectQuery("SELECT value").WithArgs(metaKeyLastModified).WillReturnRows(
		sqlmock.NewRows([]string{"value"}).AddRow("2000"),
	)

	snap, err := repo.GetSnapshot(context.Background())
	require.NoError(t, err)

	require.Len(t, snap.Vocabulary.Items, 2)
	assert.Equal(t, "hello", snap.Vocabulary.Items[0].Term)
	assert.Equal(t, []string{"hello world"}, snap.Vocabulary.Items[1].Examples)
	assert.Equal(t, "zh", snap.Settings["targetLanguage"])
	assert.Equal(t, int64(2000), snap.LastModified)

	pref, ok := snap.Preferences.Lookup(models.PreferredSourcePath)
	require.True(t, ok)
	assert.Equal(t, "cloud", pref)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSnapshotRepository_GetSnapshot_QueryError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestSnapshotRepo(t, db)

	mock.ExpectQuery("SELECT").WillReturnError(assert.AnError)

	_, err := repo.GetSnapshot(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// ── PutSnapshot ──────────────────────────────────────────────────────────────

func TestSnapshotRepository_PutSnapshot_WritesAllSections(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestSnapshotRepo(t, db)

	snap := models.Snapshot{
		Vocabulary: models.Vocabulary{Items: []models.VocabularyItem{
			{Term: "hello", Translation: "你好", LastModified: 1000},
		}},
		Settings:     models.SettingsMap{"targetLanguage": "zh"},
		Preferences:  models.Preferences{},
		LastModified: 3000,
		Source:       models.SourceMerged,
	}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM vocabulary_items").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO vocabulary_items").
		WithArgs("hello", "你好", int64(1000), "", "[]").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("DELETE FROM settings").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO settings").
		WithArgs("targetLanguage", `"zh"`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO meta").
		WithArgs(metaKeyPreferences, "{}").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO meta").
		WithArgs(metaKeyLastModified, "3000").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.PutSnapshot(context.Background(), snap))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSnapshotRepository_PutSnapshot_RollsBackOnError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestSnapshotRepo(t, db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM vocabulary_items").WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := repo.PutSnapshot(context.Background(), models.Snapshot{})
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── last sync time ───────────────────────────────────────────────────────────

func TestSnapshotRepository_LastSyncTime_RoundTrip(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestSnapshotRepo(t, db)

	mock.ExpectExec("INSERT INTO meta").
		WithArgs(metaKeyLastSyncTime, "4500").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("SELECT value").WithArgs(metaKeyLastSyncTime).WillReturnRows(
		sqlmock.NewRows([]string{"value"}).AddRow("4500"),
	)

	require.NoError(t, repo.PutLastSyncTime(context.Background(), 4500))

	ts, err := repo.GetLastSyncTime(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4500), ts)
}

func TestSnapshotRepository_GetLastSyncTime_Unset(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestSnapshotRepo(t, db)

	mock.ExpectQuery("SELECT value").WithArgs(metaKeyLastSyncTime).WillReturnError(sql.ErrNoRows)

	ts, err := repo.GetLastSyncTime(context.Background())
	require.NoError(t, err)
	assert.Zero(t, ts)
}

// ── preference reader ────────────────────────────────────────────────────────

func TestSnapshotRepository_Get_PreferencePath(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestSnapshotRepo(t, db)

	mock.ExpectQuery("SELECT value").WithArgs(metaKeyPreferences).WillReturnRows(
		sqlmock.NewRows([]string{"value"}).AddRow(`{"conflictResolution":{"preferredSource":"local"}}`),
	)

	value, ok, err := repo.Get(context.Background(), models.PreferredSourcePath)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "local", value)
}

func TestSnapshotRepository_Get_UnsetPath(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestSnapshotRepo(t, db)

	mock.ExpectQuery("SELECT value").WithArgs(metaKeyPreferences).WillReturnError(sql.ErrNoRows)

	_, ok, err := repo.Get(context.Background(), models.PreferredSourcePath)
	require.NoError(t, err)
	assert.False(t, ok)
}
