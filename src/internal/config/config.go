package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultConnectionString = "Host=localhost;Port=5432;Database=swift_portal_db;Username=postgres;Password=postgres;Timeout=30;CommandTimeout=30"
const defaultAddr = ":8080"

const (
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

type Config struct {
	Addr             string
	StorageBackend   string
	DatabaseDSN      string
	MigrationsDir    string
	JWTSecret        string
	CustomerTokenTTL time.Duration
	EmployeeTokenTTL time.Duration
	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	RedisPrefix      string
	ShutdownTimeout  time.Duration
}

// Load reads the process environment, after merging an optional .env file
// found in the working directory. Variables already set win over .env values.
func Load() (Config, error) {
	cfg, err := LoadStorage()
	if err != nil {
		return Config{}, err
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}
	return cfg, nil
}

// LoadStorage is Load without the token signing requirements, for tooling that
// only talks to the database.
func LoadStorage() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	conn := envOr("DATABASE_DSN", defaultConnectionString)

	backend := strings.ToLower(envOr("STORAGE_BACKEND", BackendPostgres))
	if backend != BackendPostgres && backend != BackendMemory {
		return Config{}, fmt.Errorf("STORAGE_BACKEND must be %q or %q", BackendPostgres, BackendMemory)
	}

	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))

	customerTTL, err := durationEnv("CUSTOMER_TOKEN_TTL", time.Hour)
	if err != nil {
		return Config{}, err
	}
	employeeTTL, err := durationEnv("EMPLOYEE_TOKEN_TTL", 8*time.Hour)
	if err != nil {
		return Config{}, err
	}
	shutdown, err := durationEnv("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return Config{}, err
	}

	redisDB := 0
	if raw := strings.TrimSpace(os.Getenv("REDIS_DB")); raw != "" {
		redisDB, err = strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("REDIS_DB: %w", err)
		}
	}

	return Config{
		Addr:             envOr("APP_ADDR", defaultAddr),
		StorageBackend:   backend,
		DatabaseDSN:      normalizeConnectionString(conn),
		MigrationsDir:    envOr("MIGRATIONS_DIR", filepath.Join("src", "migrations")),
		JWTSecret:        secret,
		CustomerTokenTTL: customerTTL,
		EmployeeTokenTTL: employeeTTL,
		RedisAddr:        strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		RedisDB:          redisDB,
		RedisPrefix:      envOr("REDIS_PREFIX", "portal"),
		ShutdownTimeout:  shutdown,
	}, nil
}

func envOr(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if value <= 0 {
		return 0, fmt.Errorf("%s must be positive", key)
	}
	return value, nil
}

// normalizeConnectionString turns ADO.NET style "Key=Value;" strings into
// lib/pq keyword/value DSNs. URLs and native DSNs pass through unchanged.
func normalizeConnectionString(raw string) string {
	if strings.Contains(raw, "://") || !strings.Contains(raw, ";") {
		return raw
	}

	parts := strings.Split(raw, ";")
	out := make([]string, 0, len(parts))
	hasSSLMode := false

	for _, part := range parts {
		p := strings.TrimSpace(part)
		if p == "" {
			continue
		}

		kv := strings.SplitN(p, "=", 2)
		if len(kv) != 2 {
			continue
		}

		key := strings.ToLower(strings.TrimSpace(kv[0]))
		val := strings.TrimSpace(kv[1])

		switch key {
		case "host", "server":
			out = append(out, "host="+val)
		case "port":
			out = append(out, "port="+val)
		case "database":
			out = append(out, "dbname="+val)
		case "username", "user id":
			out = append(out, "user="+val)
		case "password":
			out = append(out, "password="+val)
		case "timeout", "connect timeout":
			out = append(out, "connect_timeout="+val)
		case "commandtimeout", "command timeout":
			out = append(out, "statement_timeout="+val+"s")
		case "sslmode", "ssl mode":
			hasSSLMode = true
			out = append(out, "sslmode="+strings.ToLower(val))
		default:
			out = append(out, key+"="+val)
		}
	}

	if len(out) == 0 {
		return raw
	}

	if !hasSSLMode {
		out = append(out, "sslmode=disable")
	}

	return strings.Join(out, " ")
}
