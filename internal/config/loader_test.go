package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

func TestLoader_ParseEnvironment(t *testing.T) {

	t.Run("applies defaults when variables are missing", func(t *testing.T) {
		unset := []string{
			"MEETLINE_HTTP_PORT",
			"MEETLINE_SQLITE_DSN",
			"MEETLINE_SESSION_TTL",
			"MEETLINE_ALLOWED_ORIGIN",
		}
		for _, key := range unset {
			if err := os.Unsetenv(key); err != nil {
				t.Fatalf("failed to unset %s: %v", key, err)
			}
		}

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load returned error: %v", err)
		}

		if cfg.HTTPPort != 8080 {
			t.Fatalf("expected default HTTP port 8080, got %d", cfg.HTTPPort)
		}
		if cfg.SQLiteDSN != DefaultSQLiteDSN {
			t.Fatalf("unexpected default DSN: %q", cfg.SQLiteDSN)
		}
		if cfg.SessionTTL != 24*time.Hour {
			t.Fatalf("expected default session TTL 24h, got %s", cfg.SessionTTL)
		}
		if cfg.AllowedOrigin != "http://localhost:3000" {
			t.Fatalf("unexpected default origin: %q", cfg.AllowedOrigin)
		}
	})

	t.Run("parses duration and numeric fields", func(t *testing.T) {
		t.Setenv("MEETLINE_HTTP_PORT", "9090")
		t.Setenv("MEETLINE_SQLITE_DSN", "file:/tmp/meetline.db?_pragma=foreign_keys(1)")
		t.Setenv("MEETLINE_SESSION_TTL", "12h")
		t.Setenv("MEETLINE_ALLOWED_ORIGIN", "https://app.example.com")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load returned error: %v", err)
		}

		if cfg.HTTPPort != 9090 {
			t.Fatalf("expected HTTP port 9090, got %d", cfg.HTTPPort)
		}
		if cfg.SQLiteDSN != "file:/tmp/meetline.db?_pragma=foreign_keys(1)" {
			t.Fatalf("unexpected DSN: %q", cfg.SQLiteDSN)
		}
		if cfg.SessionTTL != 12*time.Hour {
			t.Fatalf("expected session TTL 12h, got %s", cfg.SessionTTL)
		}
		if cfg.AllowedOrigin != "https://app.example.com" {
			t.Fatalf("unexpected origin: %q", cfg.AllowedOrigin)
		}
	})

	t.Run("collects invalid values into a single error", func(t *testing.T) {
		t.Setenv("MEETLINE_HTTP_PORT", "not-a-number")
		t.Setenv("MEETLINE_SESSION_TTL", "-5m")

		_, err := Load()
		if err == nil {
			t.Fatal("expected error for invalid values")
		}
		if !strings.Contains(err.Error(), "MEETLINE_HTTP_PORT") {
			t.Fatalf("expected error to mention MEETLINE_HTTP_PORT: %v", err)
		}
		if !strings.Contains(err.Error(), "MEETLINE_SESSION_TTL") {
			t.Fatalf("expected error to mention MEETLINE_SESSION_TTL: %v", err)
		}
	})

	t.Run("rejects non-positive ports", func(t *testing.T) {
		t.Setenv("MEETLINE_HTTP_PORT", "0")

		_, err := Load()
		if err == nil {
			t.Fatal("expected error for zero port")
		}
	})
}
