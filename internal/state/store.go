package state

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// CursorLayout is the on-disk cursor format: UTC with microsecond precision.
const CursorLayout = "2006-01-02T15:04:05.000000Z"

// Store persists the scan cursor between invocations.
//
// Implementations assume a single writer and a single reader: the host runs
// one invocation at a time, so no locking is performed.
type Store interface {
	// Load returns the cursor. The second result is false when no usable
	// cursor exists, which callers treat as a cold start.
	Load() (time.Time, bool)
	// Save overwrites the cursor with now.
	Save(now time.Time) error
}

// FileStore keeps the cursor as a single timestamp in a plain text file.
type FileStore struct {
	Path string

	// OnLoadError is called when the file exists but cannot be read or
	// parsed. Load still reports a cold start.
	OnLoadError func(error)
}

// NewFileStore returns a FileStore rooted at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load reads the cursor file. A missing or unparseable file is a cold start.
func (s *FileStore) Load() (time.Time, bool) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.loadError(fmt.Errorf("read cursor: %w", err))
		}
		return time.Time{}, false
	}
	ts, err := ParseCursor(string(data))
	if err != nil {
		s.loadError(err)
		return time.Time{}, false
	}
	return ts, true
}

// Save writes now to the cursor file, creating parent directories as needed.
func (s *FileStore) Save(now time.Time) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return fmt.Errorf("create cursor dir: %w", err)
	}
	if err := os.WriteFile(s.Path, []byte(FormatCursor(now)), 0o644); err != nil {
		return fmt.Errorf("write cursor: %w", err)
	}
	return nil
}

// Clear removes the cursor file so the next Load is a cold start.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove cursor: %w", err)
	}
	return nil
}

func (s *FileStore) loadError(err error) {
	if s.OnLoadError != nil {
		s.OnLoadError(err)
	}
}

// FormatCursor renders ts in CursorLayout.
func FormatCursor(ts time.Time) string {
	return ts.UTC().Format(CursorLayout)
}

// ParseCursor parses persisted cursor text. Surrounding whitespace is ignored.
func ParseCursor(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("parse cursor: empty")
	}
	ts, err := time.Parse(time.RFC3339Nano, trimmed)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse cursor: %w", err)
	}
	return ts.UTC(), nil
}

// MemoryStore is an in-process Store. It is safe for concurrent use.
type MemoryStore struct {
	mu     sync.Mutex
	cursor time.Time
	ok     bool
	saves  int
}

// Load returns the last saved cursor.
func (s *MemoryStore) Load() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor, s.ok
}

// Save records now, truncated to the on-disk precision.
func (s *MemoryStore) Save(now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor = now.UTC().Truncate(time.Microsecond)
	s.ok = true
	s.saves++
	return nil
}

// Saves reports how many times Save was called.
func (s *MemoryStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}
