package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds the runtime settings shared by the server, CLI and dbtool.
type Config struct {
	MapPath     string
	DBDriver    string
	DBPath      string
	DatabaseURL string
	Hub         string
	ParcelCount int
	Trials      int
	Seed        uint64
	MaxTurns    int
	Workers     int
	Port        string
}

// Get returns the environment variable key, or fallback when it is unset or empty.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// GetInt is Get for integer settings.
func GetInt(key string, fallback int) (int, error) {
	v := Get(key, "")
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s=%q is not an integer: %w", key, v, err)
	}
	return n, nil
}

// GetUint64 is Get for unsigned settings such as seeds.
func GetUint64(key string, fallback uint64) (uint64, error) {
	v := Get(key, "")
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("config: %s=%q is not an unsigned integer: %w", key, v, err)
	}
	return n, nil
}

// Load reads Config from the environment. Call godotenv.Load first to pick up a .env file.
func Load() (Config, error) {
	cfg := Config{
		MapPath:     Get("MAP_PATH", ""),
		DBDriver:    Get("DB_DRIVER", ""),
		DBPath:      Get("DB_PATH", "data/app.db"),
		DatabaseURL: Get("DATABASE_URL", ""),
		Hub:         Get("HUB", ""),
		Port:        Get("PORT", "8080"),
	}

	var err error
	if cfg.ParcelCount, err = GetInt("PARCEL_COUNT", 5); err != nil {
		return Config{}, err
	}
	if cfg.Trials, err = GetInt("TRIALS", 100); err != nil {
		return Config{}, err
	}
	if cfg.Seed, err = GetUint64("SIM_SEED", 1); err != nil {
		return Config{}, err
	}
	if cfg.MaxTurns, err = GetInt("MAX_TURNS", 0); err != nil {
		return Config{}, err
	}
	if cfg.Workers, err = GetInt("WORKERS", 4); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges and driver-specific requirements.
func (c Config) Validate() error {
	switch c.DBDriver {
	case "", "sqlite":
	case "pgx":
		if c.DatabaseURL == "" {
			return fmt.Errorf("config: DATABASE_URL is required when DB_DRIVER=pgx")
		}
	default:
		return fmt.Errorf("config: unsupported DB_DRIVER %q (want sqlite or pgx)", c.DBDriver)
	}

	if c.ParcelCount < 0 {
		return fmt.Errorf("config: PARCEL_COUNT must not be negative (got %d)", c.ParcelCount)
	}
	if c.Trials < 1 {
		return fmt.Errorf("config: TRIALS must be at least 1 (got %d)", c.Trials)
	}
	if c.MaxTurns < 0 {
		return fmt.Errorf("config: MAX_TURNS must not be negative (got %d)", c.MaxTurns)
	}
	if c.Workers < 0 {
		return fmt.Errorf("config: WORKERS must not be negative (got %d)", c.Workers)
	}
	return nil
}
