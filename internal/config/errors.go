// SPDX-License-Identifier: Apache-2.0

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidSyncConfigs indicates invalid engine settings (for example,
	// a sub-minute auto-sync interval or a zero retry budget).
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
	// ErrInvalidStorageConfigs indicates invalid local replica settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidRemoteConfigs indicates invalid remote endpoint settings
	// (for example, missing base URL or request timeout).
	ErrInvalidRemoteConfigs = errors.New("invalid remote configuration")
	// ErrInvalidServerConfigs indicates invalid reference-server settings
	// (for example, missing listen address or token secret).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
