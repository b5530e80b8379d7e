package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=3001"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret signs every issued token. Loaded once here and injected into
	// the token codec; rotating it invalidates all outstanding tokens.
	JWTSecret  string        `env:"JWT_SECRET, required"`
	TokenTTL   time.Duration `env:"TOKEN_TTL,  default=1h"`
	BcryptCost int           `env:"BCRYPT_COST, default=10"`

	Postgres PostgresConfig
	Redis    RedisConfig
}

// PostgresConfig keeps the PG* variable names the deployment already uses.
type PostgresConfig struct {
	User     string `env:"PGUSER,     default=postgres"`
	Password string `env:"PGPASSWORD"`
	Host     string `env:"PGHOST,     default=localhost"`
	Port     string `env:"PGPORT,     default=5432"`
	Database string `env:"PGDATABASE, default=bookreview"`
	SSLMode  string `env:"PGSSLMODE,  default=disable"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// DSN renders the connection string for the pgx stdlib driver.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		p.User, p.Password, p.Host, p.Port, p.Database, p.SSLMode)
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
