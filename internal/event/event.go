// SPDX-License-Identifier: Apache-2.0

// Package event delivers sync lifecycle notifications to interested
// consumers. The engine publishes fire-and-forget: a slow or absent consumer
// never blocks or fails a sync cycle.
package event

import (
	"github.com/minitranslate/vocabsync/internal/logger"
	"github.com/minitranslate/vocabsync/models"
)

// Sink receives sync completion events. Publish must not block; sinks that
// cannot keep up drop events rather than stall the engine.
type Sink interface {
	Publish(e models.SyncCompleted)
}

// LogSink writes every event to the structured log. It is the default sink
// for the headless daemon.
type LogSink struct {
	logger *logger.Logger
}

func NewLogSink(log *logger.Logger) *LogSink {
	return &LogSink{logger: log}
}

func (s *LogSink) Publish(e models.SyncCompleted) {
	evt := s.logger.Info()
	if !e.Success {
		evt = s.logger.Warn()
	}

	evt.
		Str("run_id", e.RunID).
		Bool("success", e.Success).
		Str("error", string(e.Error)).
		Str("reason", e.Reason).
		Bool("will_retry", e.WillRetry).
		Int64("last_sync_time", e.LastSyncTime).
		Msg("sync completed")
}

// ChannelSink forwards events to a buffered channel for in-process
// consumers. When the buffer is full the event is dropped.
type ChannelSink struct {
	events chan models.SyncCompleted
}

func NewChannelSink(buffer int) *ChannelSink {
	if buffer <= 0 {
		buffer = 16
	}
	return &ChannelSink{events: make(chan models.SyncCompleted, buffer)}
}

func (s *ChannelSink) Publish(e models.SyncCompleted) {
	select {
	case s.events <- e:
	default:
	}
}

// Events exposes the receive side of the sink.
func (s *ChannelSink) Events() <-chan models.SyncCompleted {
	return s.events
}

// MultiSink fans one event out to several sinks in order.
type MultiSink []Sink

func (m MultiSink) Publish(e models.SyncCompleted) {
	for _, sink := range m {
		sink.Publish(e)
	}
}
