// SPDX-License-Identifier: Apache-2.0

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minitranslate/vocabsync/internal/adapter"
	"github.com/minitranslate/vocabsync/internal/config"
	"github.com/minitranslate/vocabsync/internal/logger"
	"github.com/minitranslate/vocabsync/internal/utils"
	"github.com/minitranslate/vocabsync/models"
)

const testSignKey = "test-sign-key"

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	h := NewHandler(config.Server{
		HTTPAddress:      "localhost:0",
		TokenSignKey:     testSignKey,
		MaxSnapshotBytes: 1024,
	}, logger.Nop())

	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)
	return srv
}

func validToken(t *testing.T, userID string) string {
	t.Helper()
	token, err := utils.GenerateJWTToken(tokenIssuer, userID, time.Hour, testSignKey)
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, method, url, token string, body []byte) *http.Response {
	t.Helper()

	req, err := http.NewRequest(method, url, bytes.NewReader(body))
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

// ── authentication ───────────────────────────────────────────────────────────

func TestAuth(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name  string
		token string
	}{
		{name: "missing header", token: ""},
		{name: "garbage token", token: "not-a-jwt"},
		{
			name: "wrong sign key",
			token: func() string {
				tok, err := utils.GenerateJWTToken(tokenIssuer, "user-1", time.Hour, "other-key")
				require.NoError(t, err)
				return tok
			}(),
		},
		{
			name: "expired token",
			token: func() string {
				tok, err := utils.GenerateJWTToken(tokenIssuer, "user-1", -time.Minute, testSignKey)
				require.NoError(t, err)
				return tok
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doRequest(t, http.MethodGet, srv.URL+"/api/snapshot", tt.token, nil)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func TestTraceIDHeaderIsEchoed(t *testing.T) {
	srv := newTestServer(t)
	token := validToken(t, "user-1")

	resp := doRequest(t, http.MethodGet, srv.URL+"/api/snapshot", token, nil)
	assert.NotEmpty(t, resp.Header.Get("X-Trace-ID"))
}

// ── snapshot endpoints ───────────────────────────────────────────────────────

func TestSnapshot_RoundTrip(t *testing.T) {
	srv := newTestServer(t)
	token := validToken(t, "user-1")

	// empty store reports not found
	resp := doRequest(t, http.MethodGet, srv.URL+"/api/snapshot", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	payload := models.RemotePayload{
		Vocabulary: models.Vocabulary{Items: []models.VocabularyItem{
			{Term: "hello", Translation: "你好", LastModified: 1000},
		}},
		Metadata: models.SyncMetadata{LastModified: 1000, Source: models.SourceMerged, Version: "1.0"},
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	resp = doRequest(t, http.MethodPut, srv.URL+"/api/snapshot", token, body)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doRequest(t, http.MethodGet, srv.URL+"/api/snapshot", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got models.RemotePayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got.Vocabulary.Items, 1)
	assert.Equal(t, "hello", got.Vocabulary.Items[0].Term)
	assert.Equal(t, "1.0", got.Metadata.Version)
}

func TestSnapshot_IsolatedPerUser(t *testing.T) {
	srv := newTestServer(t)

	payload, err := json.Marshal(models.RemotePayload{Metadata: models.SyncMetadata{Version: "1.0"}})
	require.NoError(t, err)

	resp := doRequest(t, http.MethodPut, srv.URL+"/api/snapshot", validToken(t, "user-1"), payload)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doRequest(t, http.MethodGet, srv.URL+"/api/snapshot", validToken(t, "user-2"), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSnapshot_OversizeRejected(t *testing.T) {
	srv := newTestServer(t)
	token := validToken(t, "user-1")

	big := models.RemotePayload{Vocabulary: models.Vocabulary{Items: []models.VocabularyItem{}}}
	for i := 0; i < 100; i++ {
		big.Vocabulary.Items = append(big.Vocabulary.Items, models.VocabularyItem{
			Term:        "term-with-some-length-" + string(rune('a'+i%26)),
			Translation: "translation-with-some-length",
		})
	}
	body, err := json.Marshal(big)
	require.NoError(t, err)
	require.Greater(t, len(body), 1024)

	resp := doRequest(t, http.MethodPut, srv.URL+"/api/snapshot", token, body)
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
}

func TestSnapshot_MalformedBodyRejected(t *testing.T) {
	srv := newTestServer(t)
	token := validToken(t, "user-1")

	resp := doRequest(t, http.MethodPut, srv.URL+"/api/snapshot", token, []byte("{not json"))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ── blob endpoints ───────────────────────────────────────────────────────────

func TestBlobs_CreateListRead(t *testing.T) {
	srv := newTestServer(t)
	token := validToken(t, "user-1")

	resp := doRequest(t, http.MethodPost, srv.URL+"/api/blobs?name=backup.json", token, []byte("first"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var first adapter.BlobHandle
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&first))
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, "backup.json", first.Name)

	resp = doRequest(t, http.MethodPost, srv.URL+"/api/blobs?name=backup.json", token, []byte("second"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var second adapter.BlobHandle
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&second))

	// newest first
	resp = doRequest(t, http.MethodGet, srv.URL+"/api/blobs?name=backup.json", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list blobListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list.Files, 2)
	assert.Equal(t, second.ID, list.Files[0].ID)
	assert.Equal(t, first.ID, list.Files[1].ID)

	resp = doRequest(t, http.MethodGet, srv.URL+"/api/blobs/"+second.ID, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	buf := new(bytes.Buffer)
	_, err := buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "second", buf.String())
}

func TestBlobs_NameFilter(t *testing.T) {
	srv := newTestServer(t)
	token := validToken(t, "user-1")

	resp := doRequest(t, http.MethodPost, srv.URL+"/api/blobs?name=a.json", token, []byte("a"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp = doRequest(t, http.MethodPost, srv.URL+"/api/blobs?name=b.json", token, []byte("b"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doRequest(t, http.MethodGet, srv.URL+"/api/blobs?name=a.json", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list blobListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list.Files, 1)
	assert.Equal(t, "a.json", list.Files[0].Name)
}

func TestBlobs_MissingName(t *testing.T) {
	srv := newTestServer(t)
	token := validToken(t, "user-1")

	resp := doRequest(t, http.MethodPost, srv.URL+"/api/blobs", token, []byte("x"))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestBlobs_ReadUnknownID(t *testing.T) {
	srv := newTestServer(t)
	token := validToken(t, "user-1")

	resp := doRequest(t, http.MethodGet, srv.URL+"/api/blobs/no-such-id", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
