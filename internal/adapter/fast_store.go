// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/minitranslate/vocabsync/internal/config"
	"github.com/minitranslate/vocabsync/models"
)

// HTTPClientConfig configures the remote store clients.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

// NewHTTPClientConfig maps the daemon's remote config section onto the
// client settings.
func NewHTTPClientConfig(cfg config.Remote) HTTPClientConfig {
	return HTTPClientConfig{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.RequestTimeout,
	}
}

func newRestyClient(cfg HTTPClientConfig) *resty.Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	return resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)
}

type httpFastStore struct {
	client *resty.Client
	tokens TokenProvider
}

// NewHTTPFastStore returns the resty-backed [FastRemoteStore] speaking to
// the remote snapshot endpoint.
func NewHTTPFastStore(cfg HTTPClientConfig, tokens TokenProvider) FastRemoteStore {
	return &httpFastStore{client: newRestyClient(cfg), tokens: tokens}
}

func (h *httpFastStore) Get(ctx context.Context) (models.RemotePayload, bool, error) {
	token, err := h.tokens.Token(ctx)
	if err != nil {
		return models.RemotePayload{}, false, err
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		Get("/api/snapshot")
	if err != nil {
		return models.RemotePayload{}, false, fmt.Errorf("%w: fetch snapshot: %v", ErrRemoteUnavailable, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return models.RemotePayload{}, false, nil
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RemotePayload{}, false, fmt.Errorf("fetch snapshot: %w", err)
	}

	var payload models.RemotePayload
	if err = json.Unmarshal(resp.Body(), &payload); err != nil {
		return models.RemotePayload{}, false, fmt.Errorf("%w: decode snapshot: %v", ErrRemoteUnavailable, err)
	}

	return payload, true, nil
}

func (h *httpFastStore) Put(ctx context.Context, payload models.RemotePayload) error {
	token, err := h.tokens.Token(ctx)
	if err != nil {
		return err
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Put("/api/snapshot")
	if err != nil {
		return fmt.Errorf("%w: store snapshot: %v", ErrRemoteUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("store snapshot: %w", err)
	}

	return nil
}
