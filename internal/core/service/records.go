package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fintrack/personal-finance/internal/core/domain"
	"github.com/fintrack/personal-finance/internal/core/ports"
)

// loadJSON decodes the value stored at key into v. found is false when the key
// is absent, in which case v is left untouched.
func loadJSON(ctx context.Context, store ports.Store, key ports.Key, v any) (bool, error) {
	raw, found, err := store.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if !found {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return true, fmt.Errorf("%w: %s: %v", domain.ErrCorruptRecord, key, err)
	}
	return true, nil
}

func saveJSON(ctx context.Context, store ports.Store, key ports.Key, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := store.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
