package score

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

//go:generate go tool mockgen -destination=./mocks/store_mock.go -package=mocks . Store

// Store persists the high-score table.
type Store interface {
	// Load returns the stored table. A missing store yields an empty table.
	Load() (Table, error)
	// Add inserts an entry and persists the result.
	Add(e Entry) (Table, error)
}

// FileStore keeps the table as a JSON array of {"name","score"} objects.
// It is safe for concurrent use by several sessions in one process.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore returns a store backed by the file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file.
func (s *FileStore) Path() string { return s.path }

// Load implements Store.
func (s *FileStore) Load() (Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *FileStore) load() (Table, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Table{}, nil
	}
	if err != nil {
		return Table{}, fmt.Errorf("read high scores: %w", err)
	}
	var t Table
	if err := json.Unmarshal(data, &t); err != nil {
		return Table{}, fmt.Errorf("decode high scores %s: %w", s.path, err)
	}
	for i := range t {
		t[i].Name = CleanName(t[i].Name)
	}
	t.normalize()
	return t, nil
}

// Add implements Store. An unreadable file is replaced by a fresh table
// holding only e.
func (s *FileStore) Add(e Entry) (Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, loadErr := s.load()
	t = t.Insert(e)
	if err := s.save(t); err != nil {
		return t, errors.Join(loadErr, err)
	}
	return t, loadErr
}

// save writes through a temp file and rename so readers never see a
// partial table.
func (s *FileStore) save(t Table) error {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return fmt.Errorf("encode high scores: %w", err)
	}
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".high_scores-*.json")
	if err != nil {
		return fmt.Errorf("save high scores: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("save high scores: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save high scores: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("save high scores: %w", err)
	}
	return nil
}
