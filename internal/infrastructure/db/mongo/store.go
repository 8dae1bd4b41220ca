package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fintrack/personal-finance/internal/core/ports"
)

const DefaultCollection = "kv_store"

// entry is one key. The value is kept as a string so it round-trips byte for
// byte, whatever it contains.
type entry struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

type Store struct {
	col *mongo.Collection
}

var (
	_ ports.Store  = (*Store)(nil)
	_ ports.Pinger = (*Store)(nil)
)

func NewStore(db *mongo.Database, collection string) *Store {
	if collection == "" {
		collection = DefaultCollection
	}
	return &Store{col: db.Collection(collection)}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.col.Database().Client().Ping(ctx, nil)
}

func (s *Store) Get(ctx context.Context, key ports.Key) ([]byte, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var e entry
	err := s.col.FindOne(ctx, bson.M{"_id": key.String()}).Decode(&e)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("mongo find %s: %w", key, err)
	}
	return []byte(e.Value), true, nil
}

func (s *Store) Set(ctx context.Context, key ports.Key, value []byte) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	e := entry{Key: key.String(), Value: string(value), UpdatedAt: time.Now().UTC()}
	_, err := s.col.ReplaceOne(ctx, bson.M{"_id": e.Key}, e, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("mongo upsert %s: %w", key, err)
	}
	return nil
}

func (s *Store) Remove(ctx context.Context, key ports.Key) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := s.col.DeleteOne(ctx, bson.M{"_id": key.String()}); err != nil {
		return fmt.Errorf("mongo delete %s: %w", key, err)
	}
	return nil
}
