package config

import (
	"errors"
	"testing"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_NAME", "skillsync")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8080")
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("APP_NAME", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("HTTP_PORT", "")

	_, err := Load()
	if !errors.Is(err, errMissingRequiredEnv) {
		t.Fatalf("expected errMissingRequiredEnv, got %v", err)
	}
}

func TestLoad_PoolMaxConns(t *testing.T) {
	setRequiredEnv(t)

	t.Setenv("DB_POOL_MAX_CONNS", "12")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Database.PoolMaxConns != 12 {
		t.Fatalf("expected pool size 12, got %d", cfg.Database.PoolMaxConns)
	}

	for _, raw := range []string{"", "abc", "-3", "0"} {
		t.Setenv("DB_POOL_MAX_CONNS", raw)
		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if cfg.Database.PoolMaxConns != 0 {
			t.Fatalf("raw %q: expected driver default 0, got %d", raw, cfg.Database.PoolMaxConns)
		}
	}
}

func TestHasDatabase(t *testing.T) {
	setRequiredEnv(t)

	t.Setenv("DB_HOST", "")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.HasDatabase() {
		t.Fatalf("expected no database without DB_HOST")
	}

	t.Setenv("DB_HOST", "localhost")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !cfg.HasDatabase() {
		t.Fatalf("expected database with DB_HOST set")
	}
}
