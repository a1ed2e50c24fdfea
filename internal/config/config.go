package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Supported session store drivers.
const (
	DriverMemory   = "memory"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds process-level settings read from the environment.
type Config struct {
	Port        string
	StoreDriver string
	DatabaseURL string
	SQLitePath  string
	RedisURL    string
	SessionTTL  time.Duration
	SeedPath    string
	SeedSession string
}

// Load reads a .env file when present, then resolves every setting from the
// environment with defaults suitable for a local run.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	ttl, err := GetDuration("SESSION_TTL", 24*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("load config: SESSION_TTL must be positive, got %s", ttl)
	}

	port, err := GetInt("PORT", 8080)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if port < 1 || port > 65535 {
		return nil, fmt.Errorf("load config: PORT must be in [1, 65535], got %d", port)
	}

	cfg := &Config{
		Port:        strconv.Itoa(port),
		StoreDriver: strings.ToLower(Get("STORE_DRIVER", DriverMemory)),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		SQLitePath:  Get("SQLITE_PATH", "data/app.db"),
		RedisURL:    Get("REDIS_URL", "redis://localhost:6379/0"),
		SessionTTL:  ttl,
		SeedPath:    Get("SEED_PATH", "data/seeds/warehouses.json"),
		SeedSession: os.Getenv("SEED_SESSION"),
	}

	switch cfg.StoreDriver {
	case DriverMemory, DriverRedis, DriverSQLite:
	case DriverPostgres:
		if strings.TrimSpace(cfg.DatabaseURL) == "" {
			return nil, fmt.Errorf("load config: DATABASE_URL is required for store driver %q", cfg.StoreDriver)
		}
	default:
		return nil, fmt.Errorf("load config: unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	return cfg, nil
}

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func GetInt(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s=%q as int: %w", key, v, err)
	}
	return n, nil
}

func GetDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s=%q as duration: %w", key, v, err)
	}
	return d, nil
}
