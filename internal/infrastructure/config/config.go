package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Storage backends accepted by STORE_BACKEND.
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendMongo    = "mongo"
)

var validBackends = []string{BackendMemory, BackendFile, BackendSQLite, BackendPostgres, BackendRedis, BackendMongo}

type Config struct {
	Port            string        `env:"PORT,             default=8080"`
	Env             string        `env:"ENV,              default=development"`
	JWTSecret       string        `env:"JWT_SECRET"`
	TokenTTL        time.Duration `env:"TOKEN_TTL,        default=24h"`
	LogLevel        string        `env:"LOG_LEVEL,        default=info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT, default=10s"`

	Store  StoreConfig
	Budget BudgetConfig
}

type StoreConfig struct {
	Backend    string `env:"STORE_BACKEND,   default=file"`
	FilePath   string `env:"STORE_FILE_PATH, default=./data/finance.json"`
	SQLitePath string `env:"SQLITE_DB_PATH,  default=./data/finance.db"`

	Postgres PostgresConfig
	Mongo    MongoConfig
	Redis    RedisConfig
}

type PostgresConfig struct {
	DSN string `env:"POSTGRES_DSN"`
}

type MongoConfig struct {
	URI        string `env:"MONGO_URI,        default=mongodb://localhost:27017"`
	Database   string `env:"MONGO_DB,         default=personal_finance"`
	Collection string `env:"MONGO_COLLECTION, default=kv_store"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
	Prefix   string `env:"REDIS_PREFIX,   default=finance:"`
}

// BudgetConfig holds the limits behind the monthly limit card and the savings
// challenge, in whole đồng.
type BudgetConfig struct {
	MonthlyLimit      int64  `env:"BUDGET_MONTHLY_LIMIT, default=10000000"`
	ChallengeCategory string `env:"CHALLENGE_CATEGORY,   default=food"`
	ChallengeLimit    int64  `env:"CHALLENGE_LIMIT,      default=2000000"`
}

// Load reads an optional .env file, then the environment.
func Load(ctx context.Context) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: read .env: %w", err)
	}
	return LoadWith(ctx, envconfig.OsLookuper())
}

// LoadWith processes configuration from l without touching .env.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	return &cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.JWTSecret == "" {
		problems = append(problems, "JWT_SECRET is required")
	}
	if c.TokenTTL <= 0 {
		problems = append(problems, "TOKEN_TTL must be positive")
	}

	switch c.Store.Backend {
	case BackendMemory:
	case BackendFile:
		if c.Store.FilePath == "" {
			problems = append(problems, "STORE_FILE_PATH cannot be empty when using file backend")
		}
	case BackendSQLite:
		if c.Store.SQLitePath == "" {
			problems = append(problems, "SQLITE_DB_PATH cannot be empty when using sqlite backend")
		}
	case BackendPostgres:
		if c.Store.Postgres.DSN == "" {
			problems = append(problems, "POSTGRES_DSN is required when using postgres backend")
		}
	case BackendRedis:
		if c.Store.Redis.Addr == "" {
			problems = append(problems, "REDIS_ADDR is required when using redis backend")
		}
	case BackendMongo:
		if c.Store.Mongo.URI == "" || c.Store.Mongo.Database == "" {
			problems = append(problems, "MONGO_URI and MONGO_DB are required when using mongo backend")
		}
	default:
		problems = append(problems, fmt.Sprintf("invalid store backend '%s': must be one of %v", c.Store.Backend, validBackends))
	}

	if c.Budget.MonthlyLimit < 0 || c.Budget.ChallengeLimit < 0 {
		problems = append(problems, "budget limits cannot be negative")
	}
	if c.Budget.ChallengeCategory == "" {
		problems = append(problems, "CHALLENGE_CATEGORY cannot be empty")
	}

	if len(problems) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(problems, "\n  - "))
	}
	return nil
}
