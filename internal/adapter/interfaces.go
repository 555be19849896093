// SPDX-License-Identifier: Apache-2.0

// Package adapter implements the remote side of the sync engine: HTTP
// clients for the fast size-capped snapshot store and the durable blob
// store, plus bearer-token handling shared by both.
package adapter

import (
	"context"

	"github.com/minitranslate/vocabsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// FastRemoteStore is the size-constrained, eventually-replicated remote
// key-value store. It is the primary remote replica; reads that miss fall
// back to the durable blob store.
type FastRemoteStore interface {
	// Get fetches the remote payload. The second return is false when the
	// store holds no snapshot.
	Get(ctx context.Context) (models.RemotePayload, bool, error)

	// Put replaces the remote payload. Writes over the store's size cap
	// fail with [ErrSnapshotTooLarge].
	Put(ctx context.Context, payload models.RemotePayload) error
}

// BlobHandle identifies one stored blob.
type BlobHandle struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ModifiedAt int64  `json:"modified_at"`
}

// DurableBlobStore is the unbounded backup store. It serves as a fallback
// read source when the fast store is empty and as a best-effort write target
// after every successful sync.
type DurableBlobStore interface {
	// Find returns the newest blob stored under name.
	Find(ctx context.Context, name string) (BlobHandle, bool, error)

	// Read downloads the blob's content.
	Read(ctx context.Context, handle BlobHandle) ([]byte, error)

	// Write stores data under name as a new blob.
	Write(ctx context.Context, name string, data []byte) error
}

// TokenProvider yields the bearer token for remote requests. The credential
// acquisition flow lives outside the engine; implementations typically wrap
// a token file or an OAuth refresher.
type TokenProvider interface {
	// Token returns a currently valid bearer token, or [ErrUnauthorized]
	// when no usable credential is available.
	Token(ctx context.Context) (string, error)
}
