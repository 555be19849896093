// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/minitranslate/vocabsync/internal/logger"
	"github.com/minitranslate/vocabsync/internal/utils"
	"github.com/minitranslate/vocabsync/models"
)

// getSnapshot serves the owner's fast-store snapshot. 404 when nothing has
// been stored yet, which the client treats as "remote not found" and falls
// back to the durable blobs.
func (h *Handler) getSnapshot(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	data, found := h.store.getSnapshot(userID)
	if !found {
		http.Error(w, "no snapshot stored", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(data); err != nil {
		log.Err(err).Msg("write snapshot response")
	}
}

// putSnapshot replaces the owner's fast-store snapshot. The body must be a
// valid payload envelope and fit the configured size cap; oversize writes
// are rejected with 413 so clients see the same quota behavior as the real
// size-constrained store.
func (h *Handler) putSnapshot(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	sizeCap := int64(h.cfg.MaxSnapshotBytes)
	body, err := io.ReadAll(io.LimitReader(r.Body, sizeCap+1))
	if err != nil {
		log.Err(err).Msg("read snapshot body")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	if int64(len(body)) > sizeCap {
		log.Warn().Int("bytes", len(body)).Msg("snapshot over size cap")
		http.Error(w, "snapshot exceeds size cap", http.StatusRequestEntityTooLarge)
		return
	}

	var payload models.RemotePayload
	if err = json.Unmarshal(body, &payload); err != nil {
		log.Err(err).Msg("decode snapshot body")
		http.Error(w, "malformed snapshot payload", http.StatusBadRequest)
		return
	}

	h.store.putSnapshot(userID, body)
	log.Debug().Int("bytes", len(body)).Msg("snapshot stored")
	w.WriteHeader(http.StatusNoContent)
}
