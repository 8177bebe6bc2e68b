package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultListenAddr    = ":8080"
	defaultDataPath      = "taskforce.db"
	defaultStoreBackend  = "bolt"
	defaultJWTSecret     = "change-me-jwt-secret"
	defaultSessionTTL    = "24h"
	defaultAdminPassword = "1111"
	defaultFeaturedLimit = "6"
)

type Config struct {
	AppEnv        string
	ListenAddr    string
	DataPath      string
	StoreBackend  string
	JWTSecret     string
	SessionTTL    time.Duration
	AdminPassword string
	// AdminPasswordHash, when set, takes precedence over AdminPassword and is
	// compared with bcrypt.
	AdminPasswordHash string
	FeaturedLimit     int
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.ListenAddr = strings.TrimSpace(getEnv("LISTEN_ADDR", defaultListenAddr))
	cfg.DataPath = strings.TrimSpace(getEnv("DATA_PATH", defaultDataPath))
	cfg.StoreBackend = strings.ToLower(strings.TrimSpace(getEnv("STORE_BACKEND", defaultStoreBackend)))
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))
	cfg.AdminPassword = getEnv("ADMIN_PASSWORD", defaultAdminPassword)
	cfg.AdminPasswordHash = strings.TrimSpace(os.Getenv("ADMIN_PASSWORD_HASH"))

	var err error
	cfg.SessionTTL, err = parseDurationEnv("SESSION_TTL", defaultSessionTTL)
	if err != nil {
		return nil, err
	}

	cfg.FeaturedLimit, err = parseIntEnv("FEATURED_LIMIT", defaultFeaturedLimit)
	if err != nil {
		return nil, err
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be > 0")
	}
	if cfg.FeaturedLimit <= 0 {
		return fmt.Errorf("FEATURED_LIMIT must be > 0")
	}
	if cfg.StoreBackend != "bolt" && cfg.StoreBackend != "memory" {
		return fmt.Errorf("STORE_BACKEND must be one of: bolt, memory")
	}
	if cfg.StoreBackend == "bolt" && cfg.DataPath == "" {
		return fmt.Errorf("DATA_PATH must not be empty with the bolt backend")
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
		if cfg.AdminPasswordHash == "" {
			return fmt.Errorf("in prod/release ADMIN_PASSWORD_HASH must be set")
		}
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseIntEnv(name, fallback string) (int, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return n, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
