package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config is the immutable process-wide configuration, constructed once at
// startup and passed by reference into the components that need it. The
// token secret is never read from ambient state inside operation logic.
type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret signs every issued token. Absence is startup-fatal;
	// rotation invalidates all outstanding tokens.
	JWTSecret string        `env:"JWT_SECRET, required"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,  default=12h"`

	// AllowedOrigins is the CORS allow-list for browser clients.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS, default=http://localhost:3000,http://localhost:5173"`

	// AdminEmail and AdminPassword provision the seeded admin account.
	AdminEmail    string `env:"ADMIN_EMAIL,    default=admin@apnakhakra.com"`
	AdminPassword string `env:"ADMIN_PASSWORD, default=admin123"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=storefront"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
