package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/Aastech07/Servicebookingapp/internal/model"
)

// BookingsFile is the single slot the whole collection is persisted under.
const BookingsFile = "bookings.json"

// CorruptError reports a bookings file that exists but does not parse.
// The file is left untouched so the bytes stay recoverable.
type CorruptError struct {
	Path string
	Err  error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("corrupt bookings file %s: %v", e.Path, e.Err)
}

func (e *CorruptError) Unwrap() error { return e.Err }

// FSStore implements Store over one JSON document in a data directory.
// A mutex serializes all operations, so two overlapping creates cannot
// read the same pre-update collection and drop each other's record.
type FSStore struct {
	mu   sync.Mutex
	root string
}

// NewFSStore creates a store rooted at dir, creating it if needed.
func NewFSStore(dir string) (*FSStore, error) {
	if dir == "" {
		return nil, errors.New("empty dir")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FSStore{root: dir}, nil
}

// NewDefaultFSStore resolves the default data dir and returns a store.
func NewDefaultFSStore() (*FSStore, error) {
	dir, err := ResolveDataDir()
	if err != nil {
		return nil, err
	}
	return NewFSStore(dir)
}

func (s *FSStore) path() string {
	return filepath.Join(s.root, BookingsFile)
}

// List reads the persisted collection. A missing file is the first-run
// case and yields an empty list; an unreadable one yields a CorruptError.
func (s *FSStore) List() ([]model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *FSStore) load() ([]model.Booking, error) {
	path := s.path()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []model.Booking{}, nil
		}
		return nil, err
	}
	var out []model.Booking
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, &CorruptError{Path: path, Err: err}
	}
	if out == nil {
		out = []model.Booking{}
	}
	return out, nil
}

// save atomically rewrites the whole collection.
func (s *FSStore) save(items []model.Booking) error {
	tmp, err := os.CreateTemp(s.root, "bookings-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(items); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return os.Rename(tmpPath, s.path())
}

// Create appends one booking to the collection and writes it back.
func (s *FSStore) Create(b model.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	items, err := s.load()
	if err != nil {
		return err
	}
	items = append(items, b)
	return s.save(items)
}

// Delete removes the booking with a matching ID; no-op if not found.
func (s *FSStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	items, err := s.load()
	if err != nil {
		return err
	}
	filtered := items[:0]
	for _, it := range items {
		if it.ID != id {
			filtered = append(filtered, it)
		}
	}
	return s.save(filtered)
}

var _ Store = (*FSStore)(nil)
