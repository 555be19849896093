// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minitranslate/vocabsync/models"
)

func newFastStore(t *testing.T, handler http.Handler) FastRemoteStore {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPFastStore(
		HTTPClientConfig{BaseURL: srv.URL, Timeout: 2 * time.Second},
		NewStaticTokenProvider("test-token"),
	)
}

func TestHTTPFastStore_Get_ReturnsPayload(t *testing.T) {
	want := models.RemotePayload{
		Vocabulary: models.Vocabulary{Items: []models.VocabularyItem{
			{Term: "hello", Translation: "你好", LastModified: 1000},
		}},
		Metadata: models.SyncMetadata{LastModified: 1000, Source: models.SourceRemote, Version: "1.0"},
	}

	store := newFastStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/snapshot", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		require.NoError(t, json.NewEncoder(w).Encode(want))
	}))

	got, found, err := store.Get(context.Background())
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, want.Vocabulary, got.Vocabulary)
	assert.Equal(t, want.Metadata, got.Metadata)
}

func TestHTTPFastStore_Get_NotFound(t *testing.T) {
	store := newFastStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, found, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.False(t, found)
}

func TestHTTPFastStore_Get_Unauthorized(t *testing.T) {
	store := newFastStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, _, err := store.Get(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestHTTPFastStore_Get_ServerError(t *testing.T) {
	store := newFastStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, _, err := store.Get(context.Background())
	assert.ErrorIs(t, err, ErrRemoteUnavailable)
}

func TestHTTPFastStore_Put_SendsPayload(t *testing.T) {
	var received models.RemotePayload
	store := newFastStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))

	payload := models.RemotePayload{
		Settings: models.SettingsMap{"targetLanguage": "zh"},
		Metadata: models.SyncMetadata{LastModified: 2000, Source: models.SourceMerged, Version: "1.0"},
	}
	require.NoError(t, store.Put(context.Background(), payload))
	assert.Equal(t, "zh", received.Settings["targetLanguage"])
}

func TestHTTPFastStore_Put_TooLarge(t *testing.T) {
	store := newFastStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusRequestEntityTooLarge)
	}))

	err := store.Put(context.Background(), models.RemotePayload{})
	assert.ErrorIs(t, err, ErrSnapshotTooLarge)
}

func TestHTTPFastStore_NoToken_FailsBeforeRequest(t *testing.T) {
	requests := 0
	store := newFastStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	store.(*httpFastStore).tokens = NewStaticTokenProvider("")

	_, _, err := store.Get(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Zero(t, requests)
}
