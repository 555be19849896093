// SPDX-License-Identifier: Apache-2.0

package http

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/minitranslate/vocabsync/internal/adapter"
)

// memoryStore is the server's backing storage. It holds one snapshot
// document per user (the fast store) and an append-only blob list per user
// (the durable store). State does not survive a restart; the reference
// server exists to give the sync clients a real counterparty, not to be a
// production datastore.
type memoryStore struct {
	mu        sync.RWMutex
	snapshots map[string][]byte
	blobs     map[string][]storedBlob
}

type storedBlob struct {
	handle adapter.BlobHandle
	data   []byte
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		snapshots: make(map[string][]byte),
		blobs:     make(map[string][]storedBlob),
	}
}

func (s *memoryStore) getSnapshot(user string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.snapshots[user]
	return data, ok
}

func (s *memoryStore) putSnapshot(user string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots[user] = data
}

// listBlobs returns the user's blobs with the given name, newest first.
func (s *memoryStore) listBlobs(user, name string) []adapter.BlobHandle {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var handles []adapter.BlobHandle
	blobs := s.blobs[user]
	for i := len(blobs) - 1; i >= 0; i-- {
		if name == "" || blobs[i].handle.Name == name {
			handles = append(handles, blobs[i].handle)
		}
	}
	return handles
}

func (s *memoryStore) readBlob(user, id string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, blob := range s.blobs[user] {
		if blob.handle.ID == id {
			return blob.data, true
		}
	}
	return nil, false
}

func (s *memoryStore) createBlob(user, name string, data []byte) adapter.BlobHandle {
	handle := adapter.BlobHandle{
		ID:         uuid.NewString(),
		Name:       name,
		ModifiedAt: time.Now().UnixMilli(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[user] = append(s.blobs[user], storedBlob{handle: handle, data: data})
	return handle
}
