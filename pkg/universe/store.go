package universe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
)

// ErrNotFound is returned when the backing storage holds no universe.
var ErrNotFound = errors.New("universe not found")

// Store loads the content tree. Implementations memoize internally;
// Invalidate drops the memo so the next Load re-reads the source. The
// store is an explicit object with an injected lifecycle, never a
// package-level singleton, so tests can isolate instances.
type Store interface {
	Load(ctx context.Context) (*Universe, error)
	Invalidate()
}

// FileStore reads a universe JSON document from disk and memoizes it.
type FileStore struct {
	path string

	mu   sync.Mutex
	memo *Universe
}

// NewFileStore creates a store for the JSON document at path. The file is
// not touched until the first Load.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load returns the memoized universe, reading and normalizing the file on
// first use. Concurrent callers share one read.
func (s *FileStore) Load(ctx context.Context) (*Universe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.memo != nil {
		return s.memo, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	u, err := ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	s.memo = Normalize(u)
	return s.memo, nil
}

// Invalidate drops the memoized tree.
func (s *FileStore) Invalidate() {
	s.mu.Lock()
	s.memo = nil
	s.mu.Unlock()
}

var _ Store = (*FileStore)(nil)

// ReadFile parses a universe JSON document from path.
func ReadFile(path string) (*Universe, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	u, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return u, nil
}

// Read parses a universe JSON document. Unknown fields are rejected so
// typos in hand-edited content surface instead of silently vanishing.
func Read(r io.Reader) (*Universe, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var u Universe
	if err := dec.Decode(&u); err != nil {
		return nil, fmt.Errorf("decode universe: %w", err)
	}
	return &u, nil
}

// Marshal encodes the universe as canonical indented JSON. The same bytes
// feed content hashing, so the encoding must stay deterministic.
func Marshal(u *Universe) ([]byte, error) {
	return json.MarshalIndent(u, "", "  ")
}

// WriteFile writes the universe as JSON to path.
func WriteFile(u *Universe, path string) error {
	data, err := Marshal(u)
	if err != nil {
		return fmt.Errorf("encode universe: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
