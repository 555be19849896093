// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/minitranslate/vocabsync/internal/adapter"
	"github.com/minitranslate/vocabsync/internal/logger"
	"github.com/minitranslate/vocabsync/internal/utils"
)

type blobListResponse struct {
	Files []adapter.BlobHandle `json:"files"`
}

// listBlobs returns the owner's blobs, newest first, optionally filtered by
// the name query parameter.
func (h *Handler) listBlobs(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	handles := h.store.listBlobs(userID, r.URL.Query().Get("name"))

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(blobListResponse{Files: handles}); err != nil {
		log.Err(err).Msg("write blob list response")
	}
}

// readBlob streams one blob's content by ID.
func (h *Handler) readBlob(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	data, found := h.store.readBlob(userID, chi.URLParam(r, "id"))
	if !found {
		http.Error(w, "blob not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	if _, err := w.Write(data); err != nil {
		log.Err(err).Msg("write blob response")
	}
}

// createBlob stores the request body as a new blob under the name query
// parameter and returns the created handle.
func (h *Handler) createBlob(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	name := r.URL.Query().Get("name")
	if name == "" {
		http.Error(w, "missing name parameter", http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		log.Err(err).Msg("read blob body")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	handle := h.store.createBlob(userID, name, data)
	log.Debug().Str("blob_id", handle.ID).Str("name", name).Int("bytes", len(data)).Msg("blob stored")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err = json.NewEncoder(w).Encode(handle); err != nil {
		log.Err(err).Msg("write blob create response")
	}
}
