package settings

import (
	"sync"
	"time"

	"github.com/bep/debounce"
)

// Bridge collapses bursts of form edits into one whole-value commit.
//
// Every Push restarts the window; when it elapses the latest value is
// validated and, if valid, committed. Intermediate values are never delivered.
type Bridge[T any] struct {
	debounced func(func())
	validate  func(T) error
	commit    func(T) error
	onError   func(error)

	// delivering is held across validate and commit so Flush waits for a
	// timer-driven delivery already in flight.
	delivering sync.Mutex

	mu      sync.Mutex
	pending T
	dirty   bool
	closed  bool
}

// NewBridge builds a bridge with a trailing debounce window.
// validate and onError may be nil.
func NewBridge[T any](window time.Duration, validate func(T) error, commit func(T) error, onError func(error)) *Bridge[T] {
	return &Bridge[T]{
		debounced: debounce.New(window),
		validate:  validate,
		commit:    commit,
		onError:   onError,
	}
}

// Push records value as the latest edit and restarts the window.
func (b *Bridge[T]) Push(value T) {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.pending = value
	b.dirty = true
	b.mu.Unlock()

	b.debounced(b.deliver)
}

// Flush delivers a pending edit now instead of waiting for the window.
// It returns only after any delivery in progress has committed. The timer
// that is still armed finds nothing left to deliver.
func (b *Bridge[T]) Flush() {
	b.deliver()
}

// Pending reports whether an edit is waiting for its window to elapse.
func (b *Bridge[T]) Pending() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.dirty && !b.closed
}

// Close drops any pending edit and ignores later pushes.
func (b *Bridge[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	b.dirty = false
}

func (b *Bridge[T]) deliver() {
	b.delivering.Lock()
	defer b.delivering.Unlock()

	b.mu.Lock()
	if b.closed || !b.dirty {
		b.mu.Unlock()
		return
	}
	value := b.pending
	b.dirty = false
	b.mu.Unlock()

	if b.validate != nil {
		if err := b.validate(value); err != nil {
			b.report(err)
			return
		}
	}
	if err := b.commit(value); err != nil {
		b.report(err)
	}
}

func (b *Bridge[T]) report(err error) {
	if b.onError != nil {
		b.onError(err)
	}
}
