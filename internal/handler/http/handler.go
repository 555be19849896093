// SPDX-License-Identifier: Apache-2.0

// Package http implements the reference remote server's transport layer: a
// size-capped snapshot endpoint standing in for the fast remote store and
// blob endpoints standing in for the durable backup store. Authentication
// and request tracing are handled here before requests reach the in-memory
// storage.
package http

import (
	"github.com/minitranslate/vocabsync/internal/config"
	"github.com/minitranslate/vocabsync/internal/logger"
)

type Handler struct {
	cfg   config.Server
	store *memoryStore

	logger *logger.Logger
}

func NewHandler(cfg config.Server, log *logger.Logger) *Handler {
	log.Info().Msg("http handler created")
	return &Handler{
		cfg:    cfg,
		store:  newMemoryStore(),
		logger: log,
	}
}
