package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"adm_academy/pkg/models"

	"github.com/rs/zerolog"
)

const (
	progressFile = "progress.json"
	themeFile    = "theme"
)

// FileStore keeps the session record as a JSON file under a data directory,
// the Go rendition of a per-device browser profile. Writes are synchronous
// and unbatched; the record is small enough that this does not matter.
type FileStore struct {
	dir string
	log zerolog.Logger
}

// NewFileStore creates the data directory if needed and returns a store
// rooted there.
func NewFileStore(dir string, log zerolog.Logger) (*FileStore, error) {
	if dir == "" {
		dir = filepath.Join(".", "data")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create session dir: %w", err)
	}
	return &FileStore{dir: dir, log: log}, nil
}

// Save writes the progress record through to disk.
func (s *FileStore) Save(state models.ProgressState) error {
	rec := Encode(state)
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, progressFile), data, 0o644); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

// Load reads the persisted record, applying the restoration policy. Missing
// or malformed records report absent; a malformed record is logged and left
// in place for inspection.
func (s *FileStore) Load() (models.ProgressState, bool) {
	data, err := os.ReadFile(filepath.Join(s.dir, progressFile))
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn().Err(err).Msg("session file unreadable, starting fresh")
		}
		return models.ProgressState{}, false
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		s.log.Warn().Err(err).Msg("session file corrupted, starting fresh")
		return models.ProgressState{}, false
	}
	return Restore(rec), true
}

// Clear removes the persisted record. The theme preference survives a reset.
func (s *FileStore) Clear() error {
	err := os.Remove(filepath.Join(s.dir, progressFile))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// SaveTheme persists the "light"/"dark" preference, independent of the
// session record.
func (s *FileStore) SaveTheme(theme string) error {
	if theme != "light" && theme != "dark" {
		return fmt.Errorf("unknown theme %q", theme)
	}
	if err := os.WriteFile(filepath.Join(s.dir, themeFile), []byte(theme), 0o644); err != nil {
		return fmt.Errorf("failed to write theme: %w", err)
	}
	return nil
}

// LoadTheme reports the persisted theme, absent when unset or unreadable.
func (s *FileStore) LoadTheme() (string, bool) {
	data, err := os.ReadFile(filepath.Join(s.dir, themeFile))
	if err != nil {
		return "", false
	}
	theme := strings.TrimSpace(string(data))
	if theme != "light" && theme != "dark" {
		return "", false
	}
	return theme, true
}
