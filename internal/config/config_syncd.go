// SPDX-License-Identifier: Apache-2.0

package config

import "fmt"

// SyncdConfig is the configuration view consumed by the syncd daemon: the
// engine parameters, the local replica location, and the remote endpoint.
type SyncdConfig struct {
	// Sync contains the engine scheduling, retry and conflict parameters.
	Sync Sync
	// Storage contains the local replica settings.
	Storage Storage
	// Remote contains the remote endpoint settings.
	Remote Remote
}

// ServerConfig is the configuration view consumed by the reference remote
// server.
type ServerConfig struct {
	// Server contains the listen address, token secret and write cap.
	Server Server
}

// GetSyncdConfig builds and validates the daemon-specific config view from
// the merged structured configuration.
func GetSyncdConfig() (*SyncdConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	syncdCfg := &SyncdConfig{
		Sync:    cfg.Sync,
		Storage: cfg.Storage,
		Remote:  cfg.Remote,
	}

	return syncdCfg, syncdCfg.validate()
}

// GetServerConfig builds and validates the server-specific config view from
// the merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{Server: cfg.Server}

	return serverCfg, serverCfg.validate()
}
