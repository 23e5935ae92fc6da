package preferences

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/alexisbeaulieu97/themeswitch/internal/ports"
	apperrors "github.com/alexisbeaulieu97/themeswitch/pkg/errors"
)

const fileVersion = "1.0"

// File is the JSON file format for persisted preferences.
type File struct {
	Version string            `json:"version"`
	Values  map[string]string `json:"values"`
}

// FileStore persists preferences between sessions
type FileStore struct {
	path    string
	mu      sync.RWMutex
	version string
	values  map[string]string
}

// NewFileStore creates a FileStore and loads it from disk. A missing file
// yields an empty store; a corrupt file is an error wrapping
// *errors.DecodeError.
func NewFileStore(path string) (*FileStore, error) {
	s := newEmptyStore(path)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create preferences directory: %w", err)
	}

	if err := s.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	return s, nil
}

// Open is NewFileStore for callers that must keep running: any load failure
// is logged as a warning and an empty store bound to path is returned. The
// next Set overwrites the unreadable file.
func Open(path string, logger ports.Logger) *FileStore {
	s, err := NewFileStore(path)
	if err == nil {
		return s
	}
	if logger != nil {
		logger.Warn(context.Background(), "ignoring unreadable preferences file",
			"path", path,
			"error", err,
		)
	}
	return newEmptyStore(path)
}

func newEmptyStore(path string) *FileStore {
	return &FileStore{
		path:    path,
		version: fileVersion,
		values:  make(map[string]string),
	}
}

// Path returns the backing file location.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the preferences from disk
func (s *FileStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse preferences: %w", apperrors.NewDecodeError(s.path, 0, err))
	}

	if file.Version != "" {
		s.version = file.Version
	}
	s.values = file.Values
	if s.values == nil {
		s.values = make(map[string]string)
	}

	return nil
}

// Get returns the stored value for key.
func (s *FileStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	return value, ok
}

// Set stores value under key and writes the file before returning.
func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous, existed := s.values[key]
	s.values[key] = value
	if err := s.saveLocked(); err != nil {
		if existed {
			s.values[key] = previous
		} else {
			delete(s.values, key)
		}
		return err
	}
	return nil
}

// Save writes the preferences to disk atomically
func (s *FileStore) Save() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.saveLocked()
}

func (s *FileStore) saveLocked() error {
	file := File{
		Version: s.version,
		Values:  s.values,
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}

var _ ports.PreferenceStore = (*FileStore)(nil)
