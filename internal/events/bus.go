package events

import (
	"slices"
	"sync"
	"time"

	"annotation-review/internal/domain"
)

// Type classifies settings lifecycle messages.
type Type string

const (
	TypeChanged  Type = "changed"
	TypeSaved    Type = "saved"
	TypeReset    Type = "reset"
	TypeRejected Type = "rejected"
)

// Event is a sequenced settings notification consumed by UI subscribers.
type Event struct {
	Seq       int64               `json:"seq"`
	Timestamp time.Time           `json:"timestamp"`
	Kind      domain.SettingsKind `json:"kind,omitempty"`
	Type      Type                `json:"type"`
	Action    string              `json:"action,omitempty"`
	Message   string              `json:"message,omitempty"`
	Value     any                 `json:"value,omitempty"`
}

// Bus stores recent events and provides incremental reads.
type Bus struct {
	mu        sync.RWMutex
	nextSeq   int64
	maxEvents int
	events    []Event
}

// NewBus creates a bounded in-memory event buffer.
func NewBus(maxEvents int) *Bus {
	if maxEvents <= 0 {
		maxEvents = 500
	}

	return &Bus{
		maxEvents: maxEvents,
		events:    make([]Event, 0, maxEvents),
	}
}

// Publish appends one event and assigns sequence and timestamp.
func (b *Bus) Publish(event Event) Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextSeq++
	event.Seq = b.nextSeq
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	b.events = append(b.events, event)
	if len(b.events) > b.maxEvents {
		trim := len(b.events) - b.maxEvents
		b.events = append([]Event(nil), b.events[trim:]...)
	}

	return event
}

// Since returns events with sequence strictly greater than seq, limited to
// the given kinds when any are passed.
func (b *Bus) Since(seq int64, kinds ...domain.SettingsKind) []Event {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if len(b.events) == 0 {
		return nil
	}

	out := make([]Event, 0, len(b.events))
	for _, event := range b.events {
		if event.Seq <= seq {
			continue
		}
		if len(kinds) > 0 && !slices.Contains(kinds, event.Kind) {
			continue
		}
		out = append(out, event)
	}
	return out
}

// Last returns the sequence of the most recent event, 0 when empty.
func (b *Bus) Last() int64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.nextSeq
}
