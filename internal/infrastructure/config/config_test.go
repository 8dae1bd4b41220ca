package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, env map[string]string) *Config {
	t.Helper()
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(env))
	require.NoError(t, err)
	return cfg
}

func TestLoadWith_Defaults(t *testing.T) {
	cfg := load(t, map[string]string{})

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, BackendFile, cfg.Store.Backend)
	assert.Equal(t, "./data/finance.json", cfg.Store.FilePath)
	assert.Equal(t, "finance:", cfg.Store.Redis.Prefix)
	assert.Equal(t, "kv_store", cfg.Store.Mongo.Collection)
	assert.Equal(t, int64(10000000), cfg.Budget.MonthlyLimit)
	assert.Equal(t, "food", cfg.Budget.ChallengeCategory)
	assert.Equal(t, int64(2000000), cfg.Budget.ChallengeLimit)
}

func TestLoadWith_Overrides(t *testing.T) {
	cfg := load(t, map[string]string{
		"PORT":                 "9090",
		"ENV":                  "production",
		"TOKEN_TTL":            "2h",
		"STORE_BACKEND":        "redis",
		"REDIS_ADDR":           "cache:6380",
		"REDIS_DB":             "3",
		"BUDGET_MONTHLY_LIMIT": "5000000",
	})

	assert.Equal(t, "9090", cfg.Port)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
	assert.Equal(t, BackendRedis, cfg.Store.Backend)
	assert.Equal(t, "cache:6380", cfg.Store.Redis.Addr)
	assert.Equal(t, 3, cfg.Store.Redis.DB)
	assert.Equal(t, int64(5000000), cfg.Budget.MonthlyLimit)
}

func TestLoadWith_BadValue(t *testing.T) {
	_, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{"REDIS_DB": "three"}))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return load(t, map[string]string{"JWT_SECRET": "s3cret"})
	}

	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(c *Config)
		want   string
	}{
		{"missing secret", func(c *Config) { c.JWTSecret = "" }, "JWT_SECRET"},
		{"bad port", func(c *Config) { c.Port = "http" }, "invalid port"},
		{"port out of range", func(c *Config) { c.Port = "70000" }, "between 1 and 65535"},
		{"unknown backend", func(c *Config) { c.Store.Backend = "dynamo" }, "invalid store backend"},
		{"postgres without dsn", func(c *Config) { c.Store.Backend = BackendPostgres }, "POSTGRES_DSN"},
		{"empty sqlite path", func(c *Config) { c.Store.Backend = BackendSQLite; c.Store.SQLitePath = "" }, "SQLITE_DB_PATH"},
		{"negative limit", func(c *Config) { c.Budget.MonthlyLimit = -1 }, "negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
