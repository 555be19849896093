// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON-friendly field
// types so that durations can be written as "5m" in the config file.
type StructuredJSONConfig struct {
	Sync struct {
		AutoSyncInterval       Duration `json:"auto_sync_interval"`
		MaxRetries             int      `json:"max_retries"`
		RetryDelay             Duration `json:"retry_delay"`
		CriticalSettingsKeys   []string `json:"critical_settings_keys"`
		MaxRemoteSnapshotBytes int      `json:"max_remote_snapshot_bytes"`
	} `json:"sync,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Remote struct {
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
		SnapshotName   string   `json:"snapshot_name"`
	} `json:"remote,omitempty"`

	Server struct {
		HTTPAddress      string `json:"http_address"`
		TokenSignKey     string `json:"token_sign_key"`
		MaxSnapshotBytes int    `json:"max_snapshot_bytes"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Sync: Sync{
			AutoSyncInterval:       time.Duration(jsonCfg.Sync.AutoSyncInterval),
			MaxRetries:             jsonCfg.Sync.MaxRetries,
			RetryDelay:             time.Duration(jsonCfg.Sync.RetryDelay),
			CriticalSettingsKeys:   jsonCfg.Sync.CriticalSettingsKeys,
			MaxRemoteSnapshotBytes: jsonCfg.Sync.MaxRemoteSnapshotBytes,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Remote: Remote{
			BaseURL:        jsonCfg.Remote.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.Remote.RequestTimeout),
			SnapshotName:   jsonCfg.Remote.SnapshotName,
		},
		Server: Server{
			HTTPAddress:      jsonCfg.Server.HTTPAddress,
			TokenSignKey:     jsonCfg.Server.TokenSignKey,
			MaxSnapshotBytes: jsonCfg.Server.MaxSnapshotBytes,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h" or "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
