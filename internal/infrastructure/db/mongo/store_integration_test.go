//go:build integration

package mongo

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fintrack/personal-finance/internal/core/ports"
	"github.com/fintrack/personal-finance/internal/infrastructure/db/storetest"
)

// Run with MONGO_TEST_URI=mongodb://localhost:27017 go test -tags integration ./...
func TestStore(t *testing.T) {
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}

	ctx := context.Background()
	client, db, err := Connect(ctx, Config{URI: uri, Database: "finance_test"})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Drop(ctx)
		_ = client.Disconnect(ctx)
	})

	storetest.Run(t, func(t *testing.T) ports.Store {
		return NewStore(db, fmt.Sprintf("kv_%d", time.Now().UnixNano()))
	})
}
