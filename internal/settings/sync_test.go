package settings

import (
	"errors"
	"sync"
	"testing"
	"time"

	"annotation-review/internal/domain"
)

// commitRecorder collects committed values with their arrival time.
type commitRecorder struct {
	mu     sync.Mutex
	values []domain.ViewSettings
	times  []time.Time
}

// commit records one delivered value.
func (r *commitRecorder) commit(v domain.ViewSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, v)
	r.times = append(r.times, time.Now())
	return nil
}

// snapshot returns the recorded values.
func (r *commitRecorder) snapshot() ([]domain.ViewSettings, []time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.ViewSettings(nil), r.values...), append([]time.Time(nil), r.times...)
}

// TestBridgeDebouncesBurst checks a burst yields one trailing commit of the last value.
func TestBridgeDebouncesBurst(t *testing.T) {
	const window = 150 * time.Millisecond
	rec := &commitRecorder{}
	b := NewBridge(window, nil, rec.commit, nil)

	start := time.Now()
	b.Push(domain.ViewSettings{Duration: 1})
	time.Sleep(25 * time.Millisecond)
	b.Push(domain.ViewSettings{Duration: 2})
	time.Sleep(25 * time.Millisecond)
	lastPush := time.Now()
	b.Push(domain.ViewSettings{Duration: 3})

	if !b.Pending() {
		t.Fatal("expected pending edit")
	}

	time.Sleep(window + 250*time.Millisecond)
	values, times := rec.snapshot()
	if len(values) != 1 {
		t.Fatalf("commits = %d, want 1", len(values))
	}
	if values[0].Duration != 3 {
		t.Fatalf("duration = %v, want 3", values[0].Duration)
	}
	if times[0].Sub(lastPush) < window {
		t.Fatalf("committed %v after last edit, want at least %v", times[0].Sub(lastPush), window)
	}
	if times[0].Sub(start) < window+50*time.Millisecond {
		t.Fatalf("committed %v after first edit, window was not restarted", times[0].Sub(start))
	}
	if b.Pending() {
		t.Fatal("expected no pending edit after delivery")
	}
}

// TestBridgeDropsInvalidValue checks validation failures are reported, not committed.
func TestBridgeDropsInvalidValue(t *testing.T) {
	rec := &commitRecorder{}
	errs := make(chan error, 1)
	validate := func(v domain.ViewSettings) error {
		if v.Duration < 0 {
			return errors.New("negative duration")
		}
		return nil
	}
	b := NewBridge(20*time.Millisecond, validate, rec.commit, func(err error) { errs <- err })

	b.Push(domain.ViewSettings{Duration: -1})

	select {
	case err := <-errs:
		if err == nil {
			t.Fatal("expected validation error")
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for validation error")
	}
	if values, _ := rec.snapshot(); len(values) != 0 {
		t.Fatalf("commits = %d, want 0", len(values))
	}
}

// TestBridgeFlush checks an explicit flush delivers once.
func TestBridgeFlush(t *testing.T) {
	rec := &commitRecorder{}
	b := NewBridge(100*time.Millisecond, nil, rec.commit, nil)

	b.Push(domain.ViewSettings{Duration: 4})
	b.Flush()
	time.Sleep(200 * time.Millisecond)

	values, _ := rec.snapshot()
	if len(values) != 1 || values[0].Duration != 4 {
		t.Fatalf("commits = %+v, want one with duration 4", values)
	}
}

// TestBridgeClose checks closing drops the pending edit.
func TestBridgeClose(t *testing.T) {
	rec := &commitRecorder{}
	b := NewBridge(30*time.Millisecond, nil, rec.commit, nil)

	b.Push(domain.ViewSettings{Duration: 4})
	b.Close()
	b.Push(domain.ViewSettings{Duration: 5})
	time.Sleep(120 * time.Millisecond)

	if values, _ := rec.snapshot(); len(values) != 0 {
		t.Fatalf("commits = %d, want 0", len(values))
	}
}

// TestBridgeCommitsIntoSession checks delivery maps to setAll on a session.
func TestBridgeCommitsIntoSession(t *testing.T) {
	session := NewViewSession(testView())
	done := make(chan struct{})
	commit := func(v domain.ViewSettings) error {
		defer close(done)
		_, err := session.Dispatch(SetAll(v))
		return err
	}
	b := NewBridge(20*time.Millisecond, nil, commit, nil)

	b.Push(domain.ViewSettings{Duration: 7, MinFreq: 10})
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for commit")
	}

	got := session.Current()
	if got.Duration != 7 || got.MinFreq != 10 || got.MaxFreq != nil {
		t.Fatalf("session = %+v", got)
	}
}

// TestBridgeFlushWaitsForInflightCommit checks Flush returns only after a
// timer-driven delivery has committed.
func TestBridgeFlushWaitsForInflightCommit(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	var mu sync.Mutex
	var committed []float64

	commit := func(v domain.ViewSettings) error {
		close(entered)
		<-release
		mu.Lock()
		committed = append(committed, v.Duration)
		mu.Unlock()
		return nil
	}
	b := NewBridge(10*time.Millisecond, nil, commit, nil)
	b.Push(domain.ViewSettings{Duration: 4})

	select {
	case <-entered:
	case <-time.After(2 * time.Second):
		t.Fatal("timer delivery did not start")
	}

	flushed := make(chan struct{})
	go func() {
		b.Flush()
		close(flushed)
	}()

	select {
	case <-flushed:
		t.Fatal("Flush returned while a commit was in flight")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	select {
	case <-flushed:
	case <-time.After(2 * time.Second):
		t.Fatal("Flush did not return after the commit finished")
	}

	mu.Lock()
	defer mu.Unlock()
	if len(committed) != 1 || committed[0] != 4 {
		t.Fatalf("committed = %v, want [4]", committed)
	}
}
