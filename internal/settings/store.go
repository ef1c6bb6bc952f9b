package settings

import (
	"fmt"
	"sync"

	"annotation-review/internal/domain"
)

// Store holds the most recently saved configuration of every kind.
type Store interface {
	Saved() domain.Settings
	Save(domain.Settings) error
}

// Persister receives each committed snapshot, e.g. a settings file.
type Persister interface {
	Save(domain.Settings) error
}

// MemoryStore is the process-wide saved-settings holder.
// Unsaved edits never reach it; only Save and the per-kind savers replace values.
type MemoryStore struct {
	mu        sync.RWMutex
	saved     domain.Settings
	persister Persister
}

// NewMemoryStore seeds the store with initial; persister may be nil.
func NewMemoryStore(initial domain.Settings, persister Persister) *MemoryStore {
	return &MemoryStore{
		saved:     initial.Clone(),
		persister: persister,
	}
}

// Saved returns a copy of the last saved configuration.
func (s *MemoryStore) Saved() domain.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saved.Clone()
}

// Save replaces every kind at once. The in-memory value only changes when
// the persister accepts the snapshot.
func (s *MemoryStore) Save(cfg domain.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit(cfg.Clone())
}

// SaveView replaces only the saved view settings.
func (s *MemoryStore) SaveView(v domain.ViewSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.saved.Clone()
	next.View = v.Clone()
	return s.commit(next)
}

// SaveAudio replaces only the saved audio settings.
func (s *MemoryStore) SaveAudio(a domain.AudioSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.saved.Clone()
	next.Audio = a.Clone()
	return s.commit(next)
}

// SaveSpectrogram replaces only the saved spectrogram settings.
func (s *MemoryStore) SaveSpectrogram(sp domain.SpectrogramSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.saved.Clone()
	next.Spectrogram = sp
	return s.commit(next)
}

// commit must be called with mu held.
func (s *MemoryStore) commit(next domain.Settings) error {
	if s.persister != nil {
		if err := s.persister.Save(next); err != nil {
			return fmt.Errorf("persist settings: %w", err)
		}
	}
	s.saved = next
	return nil
}
