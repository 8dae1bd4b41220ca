// Package storetest holds the behaviour every ports.Store backend must share.
package storetest

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/fintrack/personal-finance/internal/core/ports"
)

// Suite exercises a Store. NewStore must return an empty store; it is called
// once per test.
type Suite struct {
	suite.Suite
	NewStore func(t *testing.T) ports.Store

	store ports.Store
	ctx   context.Context
}

// Run executes the suite against the backend built by newStore.
func Run(t *testing.T, newStore func(t *testing.T) ports.Store) {
	suite.Run(t, &Suite{NewStore: newStore})
}

func (s *Suite) SetupTest() {
	s.ctx = context.Background()
	s.store = s.NewStore(s.T())
}

func (s *Suite) TestGetMissing() {
	v, found, err := s.store.Get(s.ctx, ports.UsersKey)
	s.Require().NoError(err)
	s.False(found)
	s.Nil(v)
}

func (s *Suite) TestSetThenGet() {
	value := []byte(`[{"id":"u1","fullName":"Nguyễn Văn A","username":"a","password":"p"}]`)
	s.Require().NoError(s.store.Set(s.ctx, ports.UsersKey, value))

	got, found, err := s.store.Get(s.ctx, ports.UsersKey)
	s.Require().NoError(err)
	s.True(found)
	s.Equal(string(value), string(got))
}

func (s *Suite) TestSetOverwrites() {
	key := ports.TransactionsKey("u1")
	s.Require().NoError(s.store.Set(s.ctx, key, []byte(`[]`)))
	s.Require().NoError(s.store.Set(s.ctx, key, []byte(`[{"id":1}]`)))

	got, found, err := s.store.Get(s.ctx, key)
	s.Require().NoError(err)
	s.True(found)
	s.Equal(`[{"id":1}]`, string(got))
}

func (s *Suite) TestKeysAreIndependent() {
	s.Require().NoError(s.store.Set(s.ctx, ports.TransactionsKey("u1"), []byte(`"one"`)))
	s.Require().NoError(s.store.Set(s.ctx, ports.TransactionsKey("u2"), []byte(`"two"`)))
	s.Require().NoError(s.store.Set(s.ctx, ports.SettingsKey("u1"), []byte(`{}`)))

	got, _, err := s.store.Get(s.ctx, ports.TransactionsKey("u1"))
	s.Require().NoError(err)
	s.Equal(`"one"`, string(got))

	got, _, err = s.store.Get(s.ctx, ports.TransactionsKey("u2"))
	s.Require().NoError(err)
	s.Equal(`"two"`, string(got))
}

func (s *Suite) TestRemove() {
	s.Require().NoError(s.store.Set(s.ctx, ports.SessionKey, []byte(`{"id":"u1"}`)))
	s.Require().NoError(s.store.Remove(s.ctx, ports.SessionKey))

	_, found, err := s.store.Get(s.ctx, ports.SessionKey)
	s.Require().NoError(err)
	s.False(found)

	// removing again is not an error
	s.NoError(s.store.Remove(s.ctx, ports.SessionKey))
}

func (s *Suite) TestValuesAreNotValidated() {
	s.Require().NoError(s.store.Set(s.ctx, ports.SessionKey, []byte("{not json")))

	got, found, err := s.store.Get(s.ctx, ports.SessionKey)
	s.Require().NoError(err)
	s.True(found)
	s.Equal("{not json", string(got))
}

func (s *Suite) TestConcurrentWriters() {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := ports.TransactionsKey(string(rune('a' + i)))
			require.NoError(s.T(), s.store.Set(s.ctx, key, []byte(`[]`)))
		}(i)
	}
	wg.Wait()

	for i := 0; i < 8; i++ {
		_, found, err := s.store.Get(s.ctx, ports.TransactionsKey(string(rune('a'+i))))
		s.Require().NoError(err)
		s.True(found)
	}
}
