// SPDX-License-Identifier: Apache-2.0

// Package syncer contains the top-level sync state machine: the engine that
// fetches both replicas, runs detection, resolution and merge, persists the
// result, and drives the fixed-delay retry loop, plus the ticker that
// triggers it periodically.
package syncer

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/minitranslate/vocabsync/internal/adapter"
	"github.com/minitranslate/vocabsync/internal/config"
	"github.com/minitranslate/vocabsync/internal/conflict"
	"github.com/minitranslate/vocabsync/internal/event"
	"github.com/minitranslate/vocabsync/internal/logger"
	"github.com/minitranslate/vocabsync/internal/store"
	"github.com/minitranslate/vocabsync/internal/utils"
	"github.com/minitranslate/vocabsync/models"
)

// Options bundles the engine's injected collaborators. Local, Fast, Blobs,
// Tokens and Resolver are required; History and Sink are optional (absent
// history is skipped, absent sink falls back to the structured log).
type Options struct {
	Local    store.LocalSnapshotStore
	History  store.ConflictHistoryRepository
	Fast     adapter.FastRemoteStore
	Blobs    adapter.DurableBlobStore
	Tokens   adapter.TokenProvider
	Resolver *conflict.Resolver
	Sink     event.Sink
	Config   config.Sync
	// SnapshotName is the fixed blob name used for durable backups.
	SnapshotName string
	Logger       *logger.Logger
}

// Engine is the sync orchestrator. One Engine owns one dataset's sync state;
// all mutable state lives behind mu and is touched by at most one Run at a
// time thanks to the single-flight guard.
type Engine struct {
	local    store.LocalSnapshotStore
	history  store.ConflictHistoryRepository
	fast     adapter.FastRemoteStore
	blobs    adapter.DurableBlobStore
	tokens   adapter.TokenProvider
	detector *conflict.Detector
	resolver *conflict.Resolver
	merger   *conflict.Merger
	sink     event.Sink
	cfg      config.Sync
	name     string
	logger   *logger.Logger

	now           func() time.Time
	newID         func() string
	scheduleRetry func(delay time.Duration, attempt func())

	mu           sync.Mutex
	syncing      bool
	retryCount   int
	lastSyncTime int64
}

// NewEngine wires an Engine from its collaborators and restores the
// persisted last-sync time. A missing or unreadable record starts the engine
// with no recorded sync, which is the correct cold-start state.
func NewEngine(ctx context.Context, opts Options) *Engine {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	sink := opts.Sink
	if sink == nil {
		sink = event.NewLogSink(log)
	}

	e := &Engine{
		local:    opts.Local,
		history:  opts.History,
		fast:     opts.Fast,
		blobs:    opts.Blobs,
		tokens:   opts.Tokens,
		detector: conflict.NewDetector(opts.Config.CriticalSettingsKeys),
		resolver: opts.Resolver,
		merger:   conflict.NewMerger(nil),
		sink:     sink,
		cfg:      opts.Config,
		name:     opts.SnapshotName,
		logger:   log,
		now:      time.Now,
		newID:    utils.NewUUIDGenerator().Generate,
	}
	e.scheduleRetry = func(delay time.Duration, attempt func()) {
		time.AfterFunc(delay, attempt)
	}

	if ts, err := e.local.GetLastSyncTime(ctx); err != nil {
		log.Warn().Err(err).Msg("restore last sync time")
	} else {
		e.lastSyncTime = ts
	}

	return e
}

// Run executes one sync cycle. Concurrent callers never queue: if a cycle is
// already in flight the call returns immediately with Skipped set.
//
// A retryable failure schedules another Run after the configured fixed delay
// until MaxRetries consecutive failures, at which point the cycle is
// abandoned and the retry counter resets so the next scheduler tick starts
// fresh. Terminal failures (missing credentials, a cancelled manual
// resolution, a malformed snapshot) are never retried.
func (e *Engine) Run(ctx context.Context) models.SyncResult {
	e.mu.Lock()
	if e.syncing {
		e.mu.Unlock()
		e.logger.Debug().Msg("sync already in flight, skipping")
		return models.SyncResult{Skipped: true, Timestamp: e.now().UnixMilli()}
	}
	e.syncing = true
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		e.syncing = false
		e.mu.Unlock()
	}()

	runID := e.newID()
	log := &logger.Logger{Logger: e.logger.With().Str("run_id", runID).Logger()}
	log.Debug().Msg("sync started")

	err := e.sync(ctx, runID, log)
	finished := e.now().UnixMilli()

	if err == nil {
		e.mu.Lock()
		e.retryCount = 0
		e.lastSyncTime = finished
		e.mu.Unlock()

		if putErr := e.local.PutLastSyncTime(ctx, finished); putErr != nil {
			log.Warn().Err(putErr).Msg("persist last sync time")
		}

		e.sink.Publish(models.SyncCompleted{
			RunID:        runID,
			Success:      true,
			Reason:       "sync completed",
			Timestamp:    finished,
			LastSyncTime: finished,
		})
		return models.SyncResult{Success: true, Timestamp: finished}
	}

	kind := classify(err)
	log.Error().Err(err).Str("error_kind", string(kind)).Msg("sync failed")

	willRetry := false
	if terminal(kind) {
		e.mu.Lock()
		e.retryCount = 0
		e.mu.Unlock()
	} else {
		e.mu.Lock()
		e.retryCount++
		if e.retryCount < e.cfg.MaxRetries {
			willRetry = true
		} else {
			// Cycle abandoned; the next scheduler tick starts fresh.
			e.retryCount = 0
		}
		e.mu.Unlock()

		if willRetry {
			e.scheduleRetry(e.cfg.RetryDelay, func() { e.Run(ctx) })
		}
	}

	e.sink.Publish(models.SyncCompleted{
		RunID:     runID,
		Success:   false,
		Error:     kind,
		Reason:    err.Error(),
		Timestamp: finished,
		WillRetry: willRetry,
	})
	return models.SyncResult{Success: false, Error: kind, Timestamp: finished}
}

// ForceSync resets the retry counter and runs a cycle immediately. It is the
// entry point for user-triggered syncs.
func (e *Engine) ForceSync(ctx context.Context) models.SyncResult {
	e.mu.Lock()
	e.retryCount = 0
	e.mu.Unlock()
	return e.Run(ctx)
}

// Status returns a point-in-time view of the engine's sync state.
func (e *Engine) Status() models.SyncStatus {
	e.mu.Lock()
	defer e.mu.Unlock()
	return models.SyncStatus{
		Syncing:      e.syncing,
		RetryCount:   e.retryCount,
		MaxRetries:   e.cfg.MaxRetries,
		LastSyncTime: e.lastSyncTime,
	}
}

// History returns the most recent conflict resolutions, newest first.
func (e *Engine) History(ctx context.Context, limit int) ([]models.ResolutionRecord, error) {
	if e.history == nil {
		return nil, nil
	}
	return e.history.History(ctx, limit)
}

// sync performs the steps of one cycle: credential pre-check, concurrent
// fetch of both replicas, detection, resolution, merge, then the local and
// remote writes. Detection, resolution, merge and the writes are strictly
// sequential.
func (e *Engine) sync(ctx context.Context, runID string, log *logger.Logger) error {
	if _, err := e.tokens.Token(ctx); err != nil {
		return fmt.Errorf("acquire remote credential: %w", err)
	}

	var (
		local       models.Snapshot
		remote      models.Snapshot
		remoteFound bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		local, err = e.local.GetSnapshot(gctx)
		if err != nil {
			return fmt.Errorf("read local snapshot: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		remote, remoteFound, err = e.fetchRemote(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if !remoteFound {
		// First sync for this dataset: the local replica seeds the remote.
		log.Info().Msg("no remote snapshot found, seeding remote from local")
		return e.upload(ctx, local, log)
	}

	conflicts, err := e.detector.Detect(local, remote)
	if err != nil {
		return fmt.Errorf("detect conflicts: %w", err)
	}

	var resolutions []models.Resolution
	if len(conflicts) > 0 {
		log.Info().Int("conflicts", len(conflicts)).Msg("conflicts detected")
		resolutions, err = e.resolver.ResolveAll(ctx, conflicts)
		if err != nil {
			return err
		}
	}

	merged := e.merger.Merge(local, remote, resolutions)
	e.recordHistory(ctx, runID, resolutions, log)

	if err = e.local.PutSnapshot(ctx, merged); err != nil {
		return fmt.Errorf("persist merged snapshot locally: %w", err)
	}

	return e.upload(ctx, merged, log)
}

// fetchRemote reads the remote replica through the fallback chain: the fast
// store first, then the newest durable backup blob when the fast store is
// empty. The second return is false when neither store holds a snapshot.
func (e *Engine) fetchRemote(ctx context.Context) (models.Snapshot, bool, error) {
	payload, found, err := e.fast.Get(ctx)
	if err != nil {
		return models.Snapshot{}, false, fmt.Errorf("read fast remote store: %w", err)
	}
	if found {
		return snapshotFromPayload(payload), true, nil
	}

	handle, found, err := e.blobs.Find(ctx, e.name)
	if err != nil {
		return models.Snapshot{}, false, fmt.Errorf("find durable backup: %w", err)
	}
	if !found {
		return models.Snapshot{}, false, nil
	}

	data, err := e.blobs.Read(ctx, handle)
	if err != nil {
		return models.Snapshot{}, false, fmt.Errorf("read durable backup %s: %w", handle.ID, err)
	}

	var snap models.Snapshot
	if err = json.Unmarshal(data, &snap); err != nil {
		return models.Snapshot{}, false, fmt.Errorf("decode durable backup %s: %v: %w", handle.ID, err, adapter.ErrRemoteUnavailable)
	}
	if snap.Vocabulary.Items == nil {
		snap.Vocabulary.Items = []models.VocabularyItem{}
	}
	snap.Source = models.SourceRemote
	return snap, true, nil
}

// upload writes the snapshot to both remote stores. The fast-store write is
// required and size-checked before transmission; the durable backup write is
// best-effort and its failure is logged, never propagated.
func (e *Engine) upload(ctx context.Context, snap models.Snapshot, log *logger.Logger) error {
	payload := buildPayload(snap)

	compressed, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode remote payload: %w", err)
	}
	if e.cfg.MaxRemoteSnapshotBytes > 0 && len(compressed) > e.cfg.MaxRemoteSnapshotBytes {
		return fmt.Errorf("%w: compressed payload is %d bytes, cap is %d",
			adapter.ErrSnapshotTooLarge, len(compressed), e.cfg.MaxRemoteSnapshotBytes)
	}

	if err = e.fast.Put(ctx, payload); err != nil {
		return fmt.Errorf("write fast remote store: %w", err)
	}

	// The durable copy keeps full item fidelity, not the compressed form.
	full, err := json.Marshal(snap)
	if err != nil {
		log.Warn().Err(err).Msg("encode durable backup")
		return nil
	}
	if err = e.blobs.Write(ctx, e.name, full); err != nil {
		log.Warn().Err(err).Msg("write durable backup")
	}

	return nil
}

// recordHistory appends the applied resolutions to the conflict log. The log
// is advisory, so failures are logged and swallowed.
func (e *Engine) recordHistory(ctx context.Context, runID string, resolutions []models.Resolution, log *logger.Logger) {
	if e.history == nil || len(resolutions) == 0 {
		return
	}

	resolvedAt := e.now().UnixMilli()
	records := make([]models.ResolutionRecord, len(resolutions))
	for i, r := range resolutions {
		records[i] = models.ResolutionRecord{
			ID:         e.newID(),
			RunID:      runID,
			Category:   r.Category,
			Key:        r.Key,
			Strategy:   string(r.Strategy),
			Choice:     string(r.Choice),
			Reason:     r.Reason,
			ResolvedAt: resolvedAt,
		}
	}

	if err := e.history.Record(ctx, records...); err != nil {
		log.Warn().Err(err).Msg("record conflict history")
	}
}
