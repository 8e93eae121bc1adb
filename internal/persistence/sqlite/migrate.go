package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// migration is a single ordered schema step applied exactly once.
type migration struct {
	version int
	name    string
	script  string
}

// migrations lists every schema step in application order. New steps are
// appended with the next version number; applied versions are recorded in
// schema_migrations and never re-run.
var migrations = []migration{
	{
		version: 1,
		name:    "create_users",
		script: `
			CREATE TABLE IF NOT EXISTS users (
				id TEXT PRIMARY KEY,
				email TEXT NOT NULL UNIQUE,
				name TEXT NOT NULL,
				initials TEXT NOT NULL,
				password_hash TEXT NOT NULL,
				created_at TEXT NOT NULL,
				updated_at TEXT NOT NULL
			)`,
	},
	{
		version: 2,
		name:    "create_sessions",
		script: `
			CREATE TABLE IF NOT EXISTS sessions (
				id TEXT PRIMARY KEY,
				user_id TEXT NOT NULL REFERENCES users(id),
				token TEXT NOT NULL UNIQUE,
				expires_at TEXT NOT NULL,
				revoked_at TEXT,
				created_at TEXT NOT NULL,
				updated_at TEXT NOT NULL
			)`,
	},
	{
		version: 3,
		name:    "create_event_types",
		script: `
			CREATE TABLE IF NOT EXISTS event_types (
				id TEXT PRIMARY KEY,
				title TEXT NOT NULL,
				duration_minutes INTEGER NOT NULL CHECK (duration_minutes > 0),
				category TEXT NOT NULL,
				platform TEXT NOT NULL,
				availability TEXT NOT NULL,
				color TEXT NOT NULL,
				created_at TEXT NOT NULL,
				updated_at TEXT NOT NULL
			)`,
	},
}

// Migrate applies all pending schema migrations in order.
func (cp *ConnectionPool) Migrate(ctx context.Context) error {
	if _, err := cp.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ', 'now'))
		)`); err != nil {
		return fmt.Errorf("failed to create schema_migrations table: %w", err)
	}

	for _, m := range migrations {
		applied, err := cp.migrationApplied(ctx, m.version)
		if err != nil {
			return err
		}
		if applied {
			continue
		}

		err = cp.WithTransaction(ctx, func(tx *sql.Tx) error {
			if _, err := tx.Exec(m.script); err != nil {
				return fmt.Errorf("migration %d (%s) failed: %w", m.version, m.name, err)
			}
			if _, err := tx.Exec(`INSERT INTO schema_migrations (version, name) VALUES (?, ?)`, m.version, m.name); err != nil {
				return fmt.Errorf("failed to record migration %d: %w", m.version, err)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func (cp *ConnectionPool) migrationApplied(ctx context.Context, version int) (bool, error) {
	var count int
	err := cp.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM schema_migrations WHERE version = ?`, version).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check migration %d: %w", version, err)
	}
	return count > 0, nil
}
