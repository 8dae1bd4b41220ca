// Package file persists the key space as a single JSON document on disk, one
// entry per key. It is the default backend for a single-device install.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/fintrack/personal-finance/internal/core/ports"
)

type Store struct {
	path string

	mu   sync.Mutex
	data map[string]string
}

var _ ports.Store = (*Store)(nil)

// Open loads path, creating its directory when needed. A missing file is an
// empty store.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}

	s := &Store{path: path, data: make(map[string]string)}
	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("read store file: %w", err)
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &s.data); err != nil {
			return nil, fmt.Errorf("decode store file %s: %w", path, err)
		}
	}
	return s, nil
}

func (s *Store) Get(_ context.Context, key ports.Key) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key.String()]
	if !ok {
		return nil, false, nil
	}
	return []byte(v), true, nil
}

func (s *Store) Set(_ context.Context, key ports.Key, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key.String()
	prev, had := s.data[k]
	s.data[k] = string(value)
	if err := s.flushLocked(); err != nil {
		if had {
			s.data[k] = prev
		} else {
			delete(s.data, k)
		}
		return err
	}
	return nil
}

func (s *Store) Remove(_ context.Context, key ports.Key) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key.String()
	prev, had := s.data[k]
	if !had {
		return nil
	}
	delete(s.data, k)
	if err := s.flushLocked(); err != nil {
		s.data[k] = prev
		return err
	}
	return nil
}

// flushLocked rewrites the file through a temp file and rename so a crash
// leaves either the old or the new document.
func (s *Store) flushLocked() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("write store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close store: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace store file: %w", err)
	}
	return nil
}
