package session

import (
	"sync"

	"adm_academy/pkg/models"
)

// MemoryStore implements Store with in-memory storage, for tests and
// ephemeral runs. Round-trips through the same Record encoding as the
// file store so the restoration policy applies identically.
type MemoryStore struct {
	mu    sync.RWMutex
	rec   *Record
	theme string
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Save(state models.ProgressState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := Encode(state)
	s.rec = &rec
	return nil
}

func (s *MemoryStore) Load() (models.ProgressState, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.rec == nil {
		return models.ProgressState{}, false
	}
	return Restore(*s.rec), true
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rec = nil
	return nil
}

func (s *MemoryStore) SaveTheme(theme string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = theme
	return nil
}

func (s *MemoryStore) LoadTheme() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.theme == "" {
		return "", false
	}
	return s.theme, true
}
