// SPDX-License-Identifier: Apache-2.0

package config

import (
	"flag"
	"strings"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server listen address in format [host]:[port]
//	-d local database DSN (SQLite file path)
//	-remote remote service base URL
//	-c/-config json file path with configs
//	-sync-interval auto-sync interval (e.g., "5m")
//	-max-retries retry attempts for transient sync failures
//	-retry-delay fixed delay between retries (e.g., "1s")
//	-critical-keys comma-separated settings keys checked for conflicts
//	-max-snapshot-bytes fast-store payload size cap
//	-request-timeout per-operation remote timeout (e.g., "15s")
//	-snapshot-name durable backup blob name
//	-token bearer token for the remote service
//	-once perform a single forced sync and exit
//	-interactive resolve settings conflicts through the terminal prompter
//	-token-sign-key bearer token HMAC secret (server)
func ParseFlags() *StructuredConfig {
	var serverAddress string
	var databaseDSN string
	var remoteBaseURL string
	var jsonConfigPath string
	var syncInterval time.Duration
	var maxRetries int
	var retryDelay time.Duration
	var criticalKeys string
	var maxSnapshotBytes int
	var requestTimeout time.Duration
	var snapshotName string
	var remoteToken string
	var runOnce bool
	var interactive bool
	var tokenSignKey string

	flag.StringVar(&serverAddress, "a", "", "Server listen address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Local database DSN")
	flag.StringVar(&remoteBaseURL, "remote", "", "Remote service base URL")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Auto-sync interval (e.g., 5m)")
	flag.IntVar(&maxRetries, "max-retries", 0, "Max retries for transient sync failures")
	flag.DurationVar(&retryDelay, "retry-delay", 0, "Delay between retries (e.g., 1s)")
	flag.StringVar(&criticalKeys, "critical-keys", "", "Comma-separated critical settings keys")
	flag.IntVar(&maxSnapshotBytes, "max-snapshot-bytes", 0, "Fast-store payload size cap")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Remote request timeout (e.g., 15s)")
	flag.StringVar(&snapshotName, "snapshot-name", "", "Durable backup blob name")
	flag.StringVar(&remoteToken, "token", "", "Bearer token for the remote service")
	flag.BoolVar(&runOnce, "once", false, "Perform a single forced sync and exit")
	flag.BoolVar(&interactive, "interactive", false, "Resolve settings conflicts interactively")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Bearer token signing key")

	flag.Parse()

	return &StructuredConfig{
		Sync: Sync{
			AutoSyncInterval:       syncInterval,
			MaxRetries:             maxRetries,
			RetryDelay:             retryDelay,
			CriticalSettingsKeys:   splitKeys(criticalKeys),
			MaxRemoteSnapshotBytes: maxSnapshotBytes,
			RunOnce:                runOnce,
			Interactive:            interactive,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Remote: Remote{
			BaseURL:        remoteBaseURL,
			RequestTimeout: requestTimeout,
			SnapshotName:   snapshotName,
			Token:          remoteToken,
		},
		Server: Server{
			HTTPAddress:  serverAddress,
			TokenSignKey: tokenSignKey,
		},
		JSONFilePath: jsonConfigPath,
	}
}

func splitKeys(s string) []string {
	if s == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	keys := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			keys = append(keys, p)
		}
	}
	if len(keys) == 0 {
		return nil
	}
	return keys
}
