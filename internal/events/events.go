// Package events provides EventSink implementations. Publishing is
// best-effort by contract: a sink failure never rolls back the
// operation that produced the event.
package events

import (
	"context"
	"sync"

	"cosmossdk.io/log"

	"github.com/pi-chain/piswap/x/dex/types"
)

// LogSink writes every event to the structured logger.
type LogSink struct {
	logger log.Logger
}

// NewLogSink creates a sink that logs events at info level.
func NewLogSink(logger log.Logger) *LogSink {
	return &LogSink{logger: logger.With("component", "events")}
}

// Publish implements types.EventSink.
func (s *LogSink) Publish(_ context.Context, event types.Event) error {
	kv := make([]any, 0, len(event.Attributes)*2)
	for _, attr := range event.Attributes {
		kv = append(kv, attr.Key, attr.Value)
	}
	s.logger.Info("event "+event.Type, kv...)
	return nil
}

// MemorySink records events in memory. Used by tests and the recent-
// events query surface.
type MemorySink struct {
	mu     sync.RWMutex
	events []types.Event
	limit  int
}

// NewMemorySink creates a recorder keeping at most limit events
// (0 keeps everything).
func NewMemorySink(limit int) *MemorySink {
	return &MemorySink{limit: limit}
}

// Publish implements types.EventSink.
func (s *MemorySink) Publish(_ context.Context, event types.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	if s.limit > 0 && len(s.events) > s.limit {
		s.events = s.events[len(s.events)-s.limit:]
	}
	return nil
}

// Events returns a copy of the recorded events, oldest first.
func (s *MemorySink) Events() []types.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.Event, len(s.events))
	copy(out, s.events)
	return out
}

// Reset clears the recorded events.
func (s *MemorySink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = nil
}

// MultiSink fans events out to several sinks, returning the first
// error for logging purposes only.
type MultiSink []types.EventSink

// Publish implements types.EventSink.
func (m MultiSink) Publish(ctx context.Context, event types.Event) error {
	var firstErr error
	for _, sink := range m {
		if err := sink.Publish(ctx, event); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
