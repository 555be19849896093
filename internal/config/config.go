// SPDX-License-Identifier: Apache-2.0

package config

import "time"

// StructuredConfig is the top-level configuration container for vocabsync.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, an optional JSON file, and
// built-in defaults (in that priority order; earlier sources win).
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Sync holds the engine parameters: scheduler interval, retry policy,
	// conflict-detection allowlist, and the fast-store size cap.
	Sync Sync `envPrefix:"VOCABSYNC_SYNC_"`

	// Storage holds the local replica settings.
	Storage Storage `envPrefix:"VOCABSYNC_STORAGE_"`

	// Remote holds the remote replica endpoint settings used by the
	// fast-store and blob-store clients.
	Remote Remote `envPrefix:"VOCABSYNC_REMOTE_"`

	// Server holds the reference remote server's listen settings. Ignored
	// by the syncd daemon.
	Server Server `envPrefix:"VOCABSYNC_SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged below the values
	// already loaded from environment variables and flags.
	// Populated via the VOCABSYNC_CONFIG environment variable or the
	// -c / -config flag.
	JSONFilePath string `env:"VOCABSYNC_CONFIG"`
}

// Sync holds the engine's scheduling, retry and conflict parameters.
type Sync struct {
	// AutoSyncInterval is how often the scheduler triggers a sync run
	// (e.g. "5m"). Must be at least one minute.
	// Env: VOCABSYNC_SYNC_AUTO_SYNC_INTERVAL
	AutoSyncInterval time.Duration `env:"AUTO_SYNC_INTERVAL"`

	// MaxRetries is the number of scheduled retries after a retryable
	// failure before the cycle is abandoned.
	// Env: VOCABSYNC_SYNC_MAX_RETRIES
	MaxRetries int `env:"MAX_RETRIES"`

	// RetryDelay is the fixed delay before a scheduled retry fires.
	// Env: VOCABSYNC_SYNC_RETRY_DELAY
	RetryDelay time.Duration `env:"RETRY_DELAY"`

	// CriticalSettingsKeys is the allowlist of settings keys that
	// participate in conflict detection. All other keys merge silently.
	// Env: VOCABSYNC_SYNC_CRITICAL_SETTINGS_KEYS (comma-separated)
	CriticalSettingsKeys []string `env:"CRITICAL_SETTINGS_KEYS"`

	// MaxRemoteSnapshotBytes caps the serialized payload written to the
	// fast remote store.
	// Env: VOCABSYNC_SYNC_MAX_REMOTE_SNAPSHOT_BYTES
	MaxRemoteSnapshotBytes int `env:"MAX_REMOTE_SNAPSHOT_BYTES"`

	// RunOnce makes the daemon perform a single forced sync and exit
	// instead of starting the scheduler.
	// Env: VOCABSYNC_SYNC_RUN_ONCE
	RunOnce bool `env:"RUN_ONCE"`

	// Interactive routes settings and preference conflicts to the
	// terminal prompter instead of the stored-preference strategy.
	// Env: VOCABSYNC_SYNC_INTERACTIVE
	Interactive bool `env:"INTERACTIVE"`
}

// Storage groups local persistence settings.
type Storage struct {
	// DB holds the local SQLite replica settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path used for the local replica
	// (e.g. "/var/lib/vocabsync/local.db").
	// Env: VOCABSYNC_STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Remote holds the endpoint settings shared by both remote store clients.
type Remote struct {
	// BaseURL is the remote service base URL (e.g. "https://sync.example.com").
	// Env: VOCABSYNC_REMOTE_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds every individual remote operation: fetch,
	// fast write, and durable write.
	// Env: VOCABSYNC_REMOTE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// SnapshotName is the fixed blob name used for durable backups.
	// Env: VOCABSYNC_REMOTE_SNAPSHOT_NAME
	SnapshotName string `env:"SNAPSHOT_NAME"`

	// Token is the bearer token presented to the remote service. The
	// credential flow that obtains it lives outside this application.
	// Env: VOCABSYNC_REMOTE_TOKEN
	Token string `env:"TOKEN"`
}

// Server holds listen settings for the reference remote server.
type Server struct {
	// HTTPAddress is the TCP address the server listens on, "host:port".
	// Env: VOCABSYNC_SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// TokenSignKey is the HMAC secret used to validate bearer tokens.
	// Env: VOCABSYNC_SERVER_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// MaxSnapshotBytes is the per-write cap enforced by the fast-store
	// endpoint; oversize writes are rejected with 413.
	// Env: VOCABSYNC_SERVER_MAX_SNAPSHOT_BYTES
	MaxSnapshotBytes int `env:"MAX_SNAPSHOT_BYTES"`
}

// defaultConfig returns the built-in fallback values, mirroring the
// original deployment's sync profile: sync every five minutes, three
// retries one second apart, a ~100 KB fast-store cap, and the three
// conflict-critical settings keys.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Sync: Sync{
			AutoSyncInterval:       5 * time.Minute,
			MaxRetries:             3,
			RetryDelay:             time.Second,
			CriticalSettingsKeys:   []string{"aiProvider", "apiKey", "targetLanguage"},
			MaxRemoteSnapshotBytes: 100 * 1024,
		},
		Remote: Remote{
			RequestTimeout: 15 * time.Second,
			SnapshotName:   "mini-translate-backup.json",
		},
		Server: Server{
			HTTPAddress:      "localhost:8080",
			MaxSnapshotBytes: 100 * 1024,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first source to set a field wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
