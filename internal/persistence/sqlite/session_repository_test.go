package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/example/meetline/internal/persistence"
)

func seedSessionUser(t *testing.T, pool *ConnectionPool, id string) {
	t.Helper()

	users := NewUserRepository(pool)
	err := users.CreateUser(context.Background(), persistence.User{
		ID:           id,
		Email:        id + "@example.com",
		Name:         "Session User",
		Initials:     "SU",
		PasswordHash: "hash",
	})
	if err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
}

func TestSessionRepository_CreateAndGetSession(t *testing.T) {
	pool := setupTestPool(t)
	repo := NewSessionRepository(pool)
	ctx := context.Background()

	seedSessionUser(t, pool, "user1")

	now := time.Now().UTC().Truncate(time.Second)
	session := persistence.Session{
		ID:        "session1",
		UserID:    "user1",
		Token:     "token-abc",
		ExpiresAt: now.Add(24 * time.Hour),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := repo.CreateSession(ctx, session); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	retrieved, err := repo.GetSession(ctx, "token-abc")
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if retrieved.ID != "session1" || retrieved.UserID != "user1" {
		t.Errorf("unexpected session: %#v", retrieved)
	}
	if !retrieved.ExpiresAt.Equal(session.ExpiresAt) {
		t.Errorf("expected expiry %v, got %v", session.ExpiresAt, retrieved.ExpiresAt)
	}
	if retrieved.RevokedAt != nil {
		t.Errorf("expected active session, got revoked at %v", retrieved.RevokedAt)
	}
}

func TestSessionRepository_DuplicateToken(t *testing.T) {
	pool := setupTestPool(t)
	repo := NewSessionRepository(pool)
	ctx := context.Background()

	seedSessionUser(t, pool, "user1")

	now := time.Now().UTC()
	first := persistence.Session{ID: "session1", UserID: "user1", Token: "token", ExpiresAt: now.Add(time.Hour)}
	second := persistence.Session{ID: "session2", UserID: "user1", Token: "token", ExpiresAt: now.Add(time.Hour)}

	if _, err := repo.CreateSession(ctx, first); err != nil {
		t.Fatalf("first CreateSession failed: %v", err)
	}
	if _, err := repo.CreateSession(ctx, second); !errors.Is(err, persistence.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestSessionRepository_RevokeSession(t *testing.T) {
	pool := setupTestPool(t)
	repo := NewSessionRepository(pool)
	ctx := context.Background()

	seedSessionUser(t, pool, "user1")

	now := time.Now().UTC().Truncate(time.Second)
	session := persistence.Session{ID: "session1", UserID: "user1", Token: "token", ExpiresAt: now.Add(time.Hour)}
	if _, err := repo.CreateSession(ctx, session); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	if err := repo.RevokeSession(ctx, "token", now); err != nil {
		t.Fatalf("RevokeSession failed: %v", err)
	}

	retrieved, err := repo.GetSession(ctx, "token")
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if retrieved.RevokedAt == nil || !retrieved.RevokedAt.Equal(now) {
		t.Errorf("expected revoked at %v, got %#v", now, retrieved.RevokedAt)
	}

	// Revoking again reports not found: the session is no longer active.
	if err := repo.RevokeSession(ctx, "token", now); !errors.Is(err, persistence.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for already revoked token, got %v", err)
	}
}

func TestSessionRepository_RevokeSession_Unknown(t *testing.T) {
	pool := setupTestPool(t)
	repo := NewSessionRepository(pool)

	err := repo.RevokeSession(context.Background(), "missing", time.Now().UTC())
	if !errors.Is(err, persistence.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSessionRepository_DeleteExpiredSessions(t *testing.T) {
	pool := setupTestPool(t)
	repo := NewSessionRepository(pool)
	ctx := context.Background()

	seedSessionUser(t, pool, "user1")

	now := time.Now().UTC().Truncate(time.Second)
	expired := persistence.Session{ID: "session1", UserID: "user1", Token: "expired", ExpiresAt: now.Add(-time.Hour)}
	active := persistence.Session{ID: "session2", UserID: "user1", Token: "active", ExpiresAt: now.Add(time.Hour)}

	if _, err := repo.CreateSession(ctx, expired); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	if _, err := repo.CreateSession(ctx, active); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	removed, err := repo.DeleteExpiredSessions(ctx, now)
	if err != nil {
		t.Fatalf("DeleteExpiredSessions failed: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 removed session, got %d", removed)
	}

	if _, err := repo.GetSession(ctx, "expired"); !errors.Is(err, persistence.ErrNotFound) {
		t.Fatalf("expected expired session to be gone, got %v", err)
	}
	if _, err := repo.GetSession(ctx, "active"); err != nil {
		t.Fatalf("expected active session to survive, got %v", err)
	}
}
