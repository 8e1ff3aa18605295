package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Database is the part of the configuration cmd/migrate needs.
type Database struct {
	DBHost     string `env:"DB_HOST,required,notEmpty"`
	DBUser     string `env:"DB_USER"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBSSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
}

type Config struct {
	AppEnv  string `env:"APP_ENV" envDefault:"development"`
	AppPort string `env:"APP_PORT" envDefault:"8080"`

	// LogLevel overrides the APP_ENV default when set
	LogLevel string `env:"LOG_LEVEL"`

	// StaticDir holds the product images referenced by image_path.
	StaticDir string `env:"STATIC_DIR" envDefault:"static"`

	Database

	SessionSecret string        `env:"SESSION_SECRET,required,notEmpty"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	SessionCookie string        `env:"SESSION_COOKIE" envDefault:"session"`
	SessionStore  string        `env:"SESSION_STORE" envDefault:"memory"`
	CookieSecure  bool          `env:"COOKIE_SECURE" envDefault:"false"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	InternalSecretKey string `env:"INTERNAL_SECRET_KEY"`
}

// Load reads an optional .env file and then parses the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	switch cfg.SessionStore {
	case "memory", "redis":
	default:
		return nil, fmt.Errorf("unknown SESSION_STORE %q (use memory or redis)", cfg.SessionStore)
	}

	return &cfg, nil
}

// LoadDatabase parses only the database settings.
func LoadDatabase() (*Database, error) {
	_ = godotenv.Load()

	var cfg Database
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
