package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// DevJWTSecret is used when JWT_SECRET is unset. Fine for local runs only.
const DevJWTSecret = "your-secret-key-change-in-production"

type AppConfig struct {
	Port     string        `toml:"port"`
	LogLevel string        `toml:"log_level"`
	Store    StoreConfig   `toml:"store"`
	Session  SessionConfig `toml:"session"`
}

// StoreConfig selects the key-value backend. Backend decides which of the
// other fields matter.
type StoreConfig struct {
	Backend     string `toml:"backend"`                // "memory", "file", "sqlite" or "postgres"
	DataDir     string `toml:"data_dir,omitempty"`     // file and sqlite
	DatabaseURL string `toml:"database_url,omitempty"` // postgres
	Key         string `toml:"key"`
}

type SessionConfig struct {
	JWTSecret string        `toml:"jwt_secret"`
	TTL       time.Duration `toml:"ttl"`
}

func Default() AppConfig {
	return AppConfig{
		Port:     "8080",
		LogLevel: "info",
		Store: StoreConfig{
			Backend: BackendFile,
			DataDir: "./data",
			Key:     "employees",
		},
		Session: SessionConfig{
			JWTSecret: DevJWTSecret,
			TTL:       24 * time.Hour,
		},
	}
}

// Load builds the config from defaults, an optional TOML file named by
// EMPADMIN_CONFIG, and then the environment (.env included).
func Load() (AppConfig, error) {
	_ = godotenv.Load() // load .env if present

	cfg := Default()
	if path := os.Getenv("EMPADMIN_CONFIG"); path != "" {
		if err := ReadFile(path, &cfg); err != nil {
			return AppConfig{}, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return AppConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// ReadFile decodes the TOML file at path over cfg.
func ReadFile(path string, cfg *AppConfig) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("reading config from %s: %w", path, err)
	}
	return nil
}

func (c *AppConfig) applyEnv() error {
	setString(&c.Port, "PORT")
	setString(&c.LogLevel, "LOG_LEVEL")
	setString(&c.Store.Backend, "STORE_BACKEND")
	setString(&c.Store.DataDir, "DATA_DIR")
	setString(&c.Store.DatabaseURL, "DATABASE_URL")
	setString(&c.Store.Key, "STORAGE_KEY")
	setString(&c.Session.JWTSecret, "JWT_SECRET")

	if v := os.Getenv("SESSION_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("SESSION_TTL: %w", err)
		}
		c.Session.TTL = d
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func (c AppConfig) Validate() error {
	switch c.Store.Backend {
	case BackendMemory:
	case BackendFile, BackendSQLite:
		if c.Store.DataDir == "" {
			return fmt.Errorf("missing data_dir for %s store", c.Store.Backend)
		}
	case BackendPostgres:
		if c.Store.DatabaseURL == "" {
			return fmt.Errorf("missing required env: DATABASE_URL")
		}
	default:
		return fmt.Errorf("unknown store backend: %q", c.Store.Backend)
	}
	if c.Store.Key == "" {
		return fmt.Errorf("missing storage key")
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("session ttl must be positive")
	}
	return nil
}
