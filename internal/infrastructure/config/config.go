package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// DevJWTSecret signs tokens when JWT_SECRET is unset outside production.
const DevJWTSecret = "coffeeshop-dev-secret"

const envProduction = "production"

type Config struct {
	Port      string `env:"PORT,       default=3000"`
	Env       string `env:"ENV,        default=development"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=false"`

	HTTP     HTTPConfig
	Auth     AuthConfig
	Mongo    MongoConfig
	Redis    RedisConfig
	RabbitMQ RabbitMQConfig
	Dispatch DispatchConfig
}

type HTTPConfig struct {
	CORSOrigins []string `env:"CORS_ORIGINS, default=http://localhost:5173"`
	BodyLimit   string   `env:"BODY_LIMIT,   default=50M"`
}

type AuthConfig struct {
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"JWT_TTL,       default=24h"`
	Required  bool          `env:"AUTH_REQUIRED, default=false"`

	// UsingDevSecret is set when JWTSecret fell back to DevJWTSecret.
	UsingDevSecret bool
}

type MongoConfig struct {
	URI                 string `env:"MONGO_URI,             default=mongodb://localhost:27017"`
	Database            string `env:"MONGO_DB,              default=coffeeshop"`
	ChangeStreamEnabled bool   `env:"CHANGE_STREAM_ENABLED, default=true"`
}

type RedisConfig struct {
	Addr             string        `env:"REDIS_ADDR,          default=localhost:6379"`
	Password         string        `env:"REDIS_PASSWORD"`
	DB               int           `env:"REDIS_DB,            default=0"`
	NewOrderDedupTTL time.Duration `env:"NEW_ORDER_DEDUP_TTL, default=2m"`
}

// RabbitMQConfig is optional: an empty URL disables the publisher.
type RabbitMQConfig struct {
	URL      string `env:"RABBITMQ_URL"`
	Exchange string `env:"RABBITMQ_EXCHANGE, default=coffeeshop.events"`
}

type DispatchConfig struct {
	Workers int `env:"DISPATCH_WORKERS, default=4"`
}

func (c *Config) IsProduction() bool { return c.Env == envProduction }

// Load reads a .env file when present, then the process environment.
func Load(ctx context.Context) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: read .env: %w", err)
	}
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}

	if cfg.Auth.JWTSecret == "" {
		if cfg.IsProduction() {
			return nil, errors.New("config: JWT_SECRET is required in production")
		}
		cfg.Auth.JWTSecret = DevJWTSecret
		cfg.Auth.UsingDevSecret = true
	}
	if cfg.Dispatch.Workers <= 0 {
		return nil, fmt.Errorf("config: DISPATCH_WORKERS must be positive, got %d", cfg.Dispatch.Workers)
	}
	return &cfg, nil
}
