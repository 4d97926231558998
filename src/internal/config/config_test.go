package config

import (
	"testing"
	"time"
)

func TestNormalizeConnectionString(t *testing.T) {
	got := normalizeConnectionString("Host=db;Port=5432;Database=portal;Username=app;Password=pw;CommandTimeout=30")
	want := "host=db port=5432 dbname=portal user=app password=pw statement_timeout=30s sslmode=disable"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestNormalizeConnectionStringKeepsURL(t *testing.T) {
	url := "postgres://app:pw@db:5432/portal?sslmode=require"
	if got := normalizeConnectionString(url); got != url {
		t.Fatalf("expected url to pass through, got %q", got)
	}
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error when JWT_SECRET is missing")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("STORAGE_BACKEND", "memory")
	t.Setenv("CUSTOMER_TOKEN_TTL", "")
	t.Setenv("EMPLOYEE_TOKEN_TTL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if cfg.CustomerTokenTTL != time.Hour {
		t.Fatalf("expected 1h customer ttl, got %s", cfg.CustomerTokenTTL)
	}
	if cfg.EmployeeTokenTTL != 8*time.Hour {
		t.Fatalf("expected 8h employee ttl, got %s", cfg.EmployeeTokenTTL)
	}
	if cfg.StorageBackend != BackendMemory {
		t.Fatalf("expected memory backend, got %s", cfg.StorageBackend)
	}
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("STORAGE_BACKEND", "mongo")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}

func TestLoadStorageWithoutJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("STORAGE_BACKEND", "postgres")
	t.Setenv("DATABASE_DSN", "postgres://app:pw@db:5432/portal")

	cfg, err := LoadStorage()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if cfg.DatabaseDSN != "postgres://app:pw@db:5432/portal" {
		t.Fatalf("unexpected dsn %q", cfg.DatabaseDSN)
	}
}
