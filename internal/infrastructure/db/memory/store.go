// Package memory is a process-local ports.Store for tests and throwaway runs.
package memory

import (
	"context"
	"sync"

	"github.com/fintrack/personal-finance/internal/core/ports"
)

type Store struct {
	mu   sync.RWMutex
	data map[string][]byte
}

var _ ports.Store = (*Store)(nil)

func NewStore() *Store {
	return &Store{data: make(map[string][]byte)}
}

func (s *Store) Get(_ context.Context, key ports.Key) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key.String()]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (s *Store) Set(_ context.Context, key ports.Key, value []byte) error {
	s.mu.Lock()
	s.data[key.String()] = append([]byte(nil), value...)
	s.mu.Unlock()
	return nil
}

func (s *Store) Remove(_ context.Context, key ports.Key) error {
	s.mu.Lock()
	delete(s.data, key.String())
	s.mu.Unlock()
	return nil
}
