package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultPort       = "5000"
	defaultDBHost     = "localhost"
	defaultDBPort     = "5432"
	defaultDBName     = "files_manager"
	defaultRedisAddr  = "localhost:6379"
	defaultFolderPath = "/tmp/files_manager"
	defaultSessionTTL = "24h"
)

// Config carries the externally supplied runtime settings. Defaults match the
// documented ones so the server starts with an empty environment.
type Config struct {
	Port        string
	DatabaseDSN string
	RedisAddr   string
	FolderPath  string
	SessionTTL  time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", defaultPort),
		RedisAddr:   getEnv("REDIS_ADDR", defaultRedisAddr),
		FolderPath:  getEnv("FOLDER_PATH", defaultFolderPath),
		DatabaseDSN: strings.TrimSpace(os.Getenv("DB_DSN")),
	}

	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = composeDSN()
	}

	var err error
	cfg.SessionTTL, err = parseDurationEnv("SESSION_TTL", defaultSessionTTL)
	if err != nil {
		return nil, err
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// composeDSN builds a postgres URL from the individual DB_* variables when no
// full DB_DSN override is given.
func composeDSN() string {
	host := getEnv("DB_HOST", defaultDBHost)
	port := getEnv("DB_PORT", defaultDBPort)
	name := getEnv("DB_DATABASE", defaultDBName)
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASSWORD")

	cred := ""
	if user != "" {
		cred = user
		if pass != "" {
			cred += ":" + pass
		}
		cred += "@"
	}
	return fmt.Sprintf("postgres://%s%s:%s/%s?sslmode=disable", cred, host, port, name)
}

func validate(cfg *Config) error {
	if cfg.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if cfg.FolderPath == "" {
		return fmt.Errorf("FOLDER_PATH must not be empty")
	}
	if cfg.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be > 0")
	}
	return nil
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
