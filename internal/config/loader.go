package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config captures environment driven configuration values for the meetline service.
type Config struct {
	HTTPPort      int
	SQLiteDSN     string
	SessionTTL    time.Duration
	AllowedOrigin string
}

// DefaultSQLiteDSN keeps state in a shared in-memory database so nothing
// survives a restart unless an explicit file DSN is configured.
const DefaultSQLiteDSN = "file:meetline?mode=memory&cache=shared&_pragma=foreign_keys(1)"

// Load parses configuration values from the current process environment.
//
// Optional fields fall back to sensible defaults; invalid values are
// collected and reported together.
func Load() (Config, error) {
	cfg := Config{
		HTTPPort:      8080,
		SQLiteDSN:     DefaultSQLiteDSN,
		SessionTTL:    24 * time.Hour,
		AllowedOrigin: "http://localhost:3000",
	}

	invalid := make([]string, 0, 2)

	if portValue := strings.TrimSpace(os.Getenv("MEETLINE_HTTP_PORT")); portValue != "" {
		port, err := strconv.Atoi(portValue)
		if err != nil || port <= 0 {
			invalid = append(invalid, "MEETLINE_HTTP_PORT")
		} else {
			cfg.HTTPPort = port
		}
	}

	if dsn := strings.TrimSpace(os.Getenv("MEETLINE_SQLITE_DSN")); dsn != "" {
		cfg.SQLiteDSN = dsn
	}

	if ttlValue := strings.TrimSpace(os.Getenv("MEETLINE_SESSION_TTL")); ttlValue != "" {
		ttl, err := time.ParseDuration(ttlValue)
		if err != nil || ttl <= 0 {
			invalid = append(invalid, "MEETLINE_SESSION_TTL")
		} else {
			cfg.SessionTTL = ttl
		}
	}

	if origin := strings.TrimSpace(os.Getenv("MEETLINE_ALLOWED_ORIGIN")); origin != "" {
		cfg.AllowedOrigin = origin
	}

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variable values: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}
