// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"
)

type httpBlobStore struct {
	client *resty.Client
	tokens TokenProvider
}

// NewHTTPBlobStore returns the resty-backed [DurableBlobStore] speaking to
// the remote blob endpoints.
func NewHTTPBlobStore(cfg HTTPClientConfig, tokens TokenProvider) DurableBlobStore {
	return &httpBlobStore{client: newRestyClient(cfg), tokens: tokens}
}

type blobListResponse struct {
	Files []BlobHandle `json:"files"`
}

func (h *httpBlobStore) Find(ctx context.Context, name string) (BlobHandle, bool, error) {
	token, err := h.tokens.Token(ctx)
	if err != nil {
		return BlobHandle{}, false, err
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetQueryParam("name", name).
		Get("/api/blobs")
	if err != nil {
		return BlobHandle{}, false, fmt.Errorf("%w: find blob: %v", ErrRemoteUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return BlobHandle{}, false, fmt.Errorf("find blob: %w", err)
	}

	var list blobListResponse
	if err = json.Unmarshal(resp.Body(), &list); err != nil {
		return BlobHandle{}, false, fmt.Errorf("%w: decode blob list: %v", ErrRemoteUnavailable, err)
	}
	if len(list.Files) == 0 {
		return BlobHandle{}, false, nil
	}

	// The server lists blobs newest-first.
	return list.Files[0], true, nil
}

func (h *httpBlobStore) Read(ctx context.Context, handle BlobHandle) ([]byte, error) {
	token, err := h.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		Get("/api/blobs/" + handle.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: read blob: %v", ErrRemoteUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("read blob %s: %w", handle.ID, err)
	}

	return resp.Body(), nil
}

func (h *httpBlobStore) Write(ctx context.Context, name string, data []byte) error {
	token, err := h.tokens.Token(ctx)
	if err != nil {
		return err
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetQueryParam("name", name).
		SetHeader("Content-Type", "application/octet-stream").
		SetBody(data).
		Post("/api/blobs")
	if err != nil {
		return fmt.Errorf("%w: write blob: %v", ErrRemoteUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("write blob %s: %w", name, err)
	}

	return nil
}
