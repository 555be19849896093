// SPDX-License-Identifier: Apache-2.0

package config

import "time"

// validate checks that the final merged [StructuredConfig] satisfies the
// application invariants before it is handed to a view constructor.
//
// Only cross-source consistency is checked here; the per-binary views apply
// their own stricter rules in [SyncdConfig.validate] and
// [ServerConfig.validate].
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *SyncdConfig) validate() error {
	if cfg.Sync.AutoSyncInterval < time.Minute {
		return ErrInvalidSyncConfigs
	}
	if cfg.Sync.MaxRetries < 1 || cfg.Sync.RetryDelay <= 0 {
		return ErrInvalidSyncConfigs
	}
	if len(cfg.Sync.CriticalSettingsKeys) == 0 || cfg.Sync.MaxRemoteSnapshotBytes <= 0 {
		return ErrInvalidSyncConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Remote.BaseURL == "" || cfg.Remote.RequestTimeout <= 0 || cfg.Remote.SnapshotName == "" {
		return ErrInvalidRemoteConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.TokenSignKey == "" || cfg.Server.MaxSnapshotBytes <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
