package service

import (
	"context"
	"sync"

	"github.com/fintrack/personal-finance/internal/core/domain"
	"github.com/fintrack/personal-finance/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub store
// ---------------------------------------------------------------------------

type stubStore struct {
	mu      sync.Mutex
	data    map[string][]byte
	sets    int   // number of successful Set calls
	failSet error // if set, Set returns this error
}

func newStubStore() *stubStore {
	return &stubStore{data: make(map[string][]byte)}
}

func (s *stubStore) Get(_ context.Context, key ports.Key) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key.String()]
	return v, ok, nil
}

func (s *stubStore) Set(_ context.Context, key ports.Key, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failSet != nil {
		return s.failSet
	}
	s.data[key.String()] = append([]byte(nil), value...)
	s.sets++
	return nil
}

func (s *stubStore) Remove(_ context.Context, key ports.Key) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key.String())
	return nil
}

func (s *stubStore) raw(key ports.Key) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return string(s.data[key.String()])
}

// stubSession is a fixed session source.
type stubSession struct {
	user *domain.User
}

func (s *stubSession) Current() (*domain.User, error) {
	if s.user == nil {
		return nil, domain.ErrNotLoggedIn
	}
	u := *s.user
	return &u, nil
}

// recordingObserver remembers every session change it sees.
type recordingObserver struct {
	seen []*domain.User
}

func (o *recordingObserver) SessionChanged(_ context.Context, user *domain.User) {
	o.seen = append(o.seen, user)
}
