// SPDX-License-Identifier: Apache-2.0

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSplitKeys(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: nil},
		{name: "single key", input: "targetLanguage", want: []string{"targetLanguage"}},
		{name: "multiple keys", input: "aiProvider,apiKey,targetLanguage", want: []string{"aiProvider", "apiKey", "targetLanguage"}},
		{name: "whitespace trimmed", input: " aiProvider , apiKey ", want: []string{"aiProvider", "apiKey"}},
		{name: "only separators", input: ",,", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitKeys(tt.input))
		})
	}
}

func TestSyncdConfigValidate(t *testing.T) {
	valid := func() *SyncdConfig {
		cfg := &SyncdConfig{}
		base := defaultConfig()
		cfg.Sync = base.Sync
		cfg.Remote = base.Remote
		cfg.Remote.BaseURL = "https://sync.example.com"
		cfg.Storage.DB.DSN = "/tmp/local.db"
		return cfg
	}

	t.Run("valid config passes", func(t *testing.T) {
		assert.NoError(t, valid().validate())
	})

	t.Run("sub-minute interval rejected", func(t *testing.T) {
		cfg := valid()
		cfg.Sync.AutoSyncInterval = 30 * time.Second
		assert.ErrorIs(t, cfg.validate(), ErrInvalidSyncConfigs)
	})

	t.Run("zero retries rejected", func(t *testing.T) {
		cfg := valid()
		cfg.Sync.MaxRetries = 0
		assert.ErrorIs(t, cfg.validate(), ErrInvalidSyncConfigs)
	})

	t.Run("empty DSN rejected", func(t *testing.T) {
		cfg := valid()
		cfg.Storage.DB.DSN = ""
		assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
	})

	t.Run("missing base URL rejected", func(t *testing.T) {
		cfg := valid()
		cfg.Remote.BaseURL = ""
		assert.ErrorIs(t, cfg.validate(), ErrInvalidRemoteConfigs)
	})
}
