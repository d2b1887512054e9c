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

type Config struct {
	Port     string `env:"PORT,      default=5000"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWTSecret string        `env:"JWT_SECRET, required"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,  default=1h"`

	// TokenRateLimit caps POST /jwt per client IP per minute. Zero disables it.
	TokenRateLimit int      `env:"TOKEN_RATE_LIMIT, default=30"`
	CORSOrigins    []string `env:"CORS_ORIGINS,     default=*"`

	Mongo      MongoConfig
	Redis      RedisConfig
	Card       CardConfig
	Gateway    GatewayConfig
	Reconciler ReconcilerConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=bistroDb"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

type CardConfig struct {
	SecretKey    string `env:"STRIPE_SECRET_KEY"`
	Currency     string `env:"CARD_CURRENCY,      default=usd"`
	VerifyIntent bool   `env:"CARD_VERIFY_INTENT, default=false"`
}

type GatewayConfig struct {
	StoreID       string `env:"SSLCOMMERZ_STORE_ID"`
	StorePassword string `env:"SSLCOMMERZ_STORE_PASSWORD"`
	Sandbox       bool   `env:"SSLCOMMERZ_SANDBOX,  default=true"`
	Currency      string `env:"SSLCOMMERZ_CURRENCY, default=BDT"`

	// PublicBaseURL is where the gateway reaches this API for callbacks.
	PublicBaseURL string `env:"PUBLIC_BASE_URL,    default=http://localhost:5000"`
	SuccessURL    string `env:"CLIENT_SUCCESS_URL, default=http://localhost:5173/payment/success"`
	FailURL       string `env:"CLIENT_FAIL_URL,    default=http://localhost:5173/payment/fail"`

	HTTPTimeout time.Duration `env:"PAYMENT_HTTP_TIMEOUT, default=30s"`
}

type ReconcilerConfig struct {
	Interval time.Duration `env:"RECONCILE_INTERVAL, default=1m"`
	Workers  int           `env:"RECONCILE_WORKERS,  default=4"`
}

// IsDevelopment reports whether the service runs outside production.
func (c *Config) IsDevelopment() bool {
	return c.Env != "production"
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func Load(ctx context.Context, files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: load %s: %w", f, err)
		}
	}
	return process(ctx, envconfig.OsLookuper())
}

func process(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.Reconciler.Workers <= 0 {
		cfg.Reconciler.Workers = 1
	}
	return &cfg, nil
}
