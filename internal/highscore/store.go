// Package highscore persists the all-time best score as a single
// ASCII decimal integer in a text file.
package highscore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// ErrCorruptRecord is returned when the stored content is not a
// non-negative integer.
var ErrCorruptRecord = errors.New("highscore: corrupt record")

// Store loads and saves the high score.
type Store interface {
	// Load returns the stored value, creating a zero record if none exists.
	Load() (int, error)
	// Save overwrites the record.
	Save(value int) error
	// Raise stores value only if it beats the record and returns the
	// record afterwards, which may be higher than value.
	Raise(value int) (int, error)
}

// FileStore keeps the high score in a text file.
// It is safe for concurrent use by multiple game sessions.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a store backed by the file at path.
// The file and its parent directory are created lazily on first Load.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the stored high score.
// A missing file is created with 0.
func (s *FileStore) Load() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := s.write(0); err != nil {
			return 0, err
		}
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("highscore: cannot read %s: %w", s.path, err)
	}

	return parse(s.path, data)
}

// Save overwrites the record with value.
func (s *FileStore) Save(value int) error {
	if value < 0 {
		return fmt.Errorf("highscore: refusing to save negative value %d", value)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(value)
}

// Raise re-reads the file under the lock so a session holding a stale
// record can never lower it.
func (s *FileStore) Raise(value int) (int, error) {
	if value < 0 {
		return 0, fmt.Errorf("highscore: refusing to save negative value %d", value)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored := 0
	data, err := os.ReadFile(s.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return 0, fmt.Errorf("highscore: cannot read %s: %w", s.path, err)
	default:
		if stored, err = parse(s.path, data); err != nil {
			return 0, err
		}
	}

	if value <= stored {
		return stored, nil
	}
	if err := s.write(value); err != nil {
		return stored, err
	}
	return value, nil
}

// write stores value without a trailing newline. Caller holds mu.
func (s *FileStore) write(value int) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("highscore: cannot create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(s.path, []byte(strconv.Itoa(value)), 0o644); err != nil {
		return fmt.Errorf("highscore: cannot write %s: %w", s.path, err)
	}
	return nil
}

func parse(path string, data []byte) (int, error) {
	text := strings.TrimSpace(string(data))
	v, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w in %s: %q is not an integer", ErrCorruptRecord, path, text)
	}
	if v < 0 {
		return 0, fmt.Errorf("%w in %s: negative value %d", ErrCorruptRecord, path, v)
	}
	return v, nil
}

// MemoryStore is a Store that never touches the disk.
type MemoryStore struct {
	mu    sync.Mutex
	value int
	saves int
}

// NewMemoryStore creates a store holding value.
func NewMemoryStore(value int) *MemoryStore {
	return &MemoryStore{value: value}
}

// Load returns the held value.
func (s *MemoryStore) Load() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value, nil
}

// Save replaces the held value.
func (s *MemoryStore) Save(value int) error {
	if value < 0 {
		return fmt.Errorf("highscore: refusing to save negative value %d", value)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = value
	s.saves++
	return nil
}

// Raise replaces the held value when value is higher.
func (s *MemoryStore) Raise(value int) (int, error) {
	if value < 0 {
		return 0, fmt.Errorf("highscore: refusing to save negative value %d", value)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if value > s.value {
		s.value = value
		s.saves++
	}
	return s.value, nil
}

// Saves returns how many times the held value was written.
func (s *MemoryStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}
