package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/example/meetline/internal/persistence"
)

func TestUserRepository_CreateUser(t *testing.T) {
	pool := setupTestPool(t)
	repo := NewUserRepository(pool)
	ctx := context.Background()

	user := persistence.User{
		ID:           "user1",
		Email:        "lukas@example.com",
		Name:         "Lukas Koenig",
		Initials:     "LK",
		PasswordHash: "hashed_password",
	}

	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	retrieved, err := repo.GetUser(ctx, "user1")
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if retrieved.Email != "lukas@example.com" {
		t.Errorf("expected email 'lukas@example.com', got %q", retrieved.Email)
	}
	if retrieved.Name != "Lukas Koenig" || retrieved.Initials != "LK" {
		t.Errorf("expected display fields, got %#v", retrieved)
	}
	if retrieved.CreatedAt.IsZero() || retrieved.UpdatedAt.IsZero() {
		t.Errorf("expected timestamps to be populated, got %#v", retrieved)
	}
}

func TestUserRepository_CreateUser_Duplicate(t *testing.T) {
	pool := setupTestPool(t)
	repo := NewUserRepository(pool)
	ctx := context.Background()

	user := persistence.User{
		ID:           "user1",
		Email:        "lukas@example.com",
		Name:         "Lukas Koenig",
		Initials:     "LK",
		PasswordHash: "hashed_password",
	}

	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("first CreateUser failed: %v", err)
	}

	if err := repo.CreateUser(ctx, user); !errors.Is(err, persistence.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestUserRepository_GetUserByEmail(t *testing.T) {
	pool := setupTestPool(t)
	repo := NewUserRepository(pool)
	ctx := context.Background()

	now := time.Now().UTC()
	user := persistence.User{
		ID:           "user1",
		Email:        "demo@calendly.com",
		Name:         "Demo User",
		Initials:     "DU",
		PasswordHash: "hashed_password",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	// Lookup is case-insensitive.
	retrieved, err := repo.GetUserByEmail(ctx, "DEMO@CALENDLY.COM")
	if err != nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}
	if retrieved.ID != "user1" {
		t.Errorf("expected ID 'user1', got %q", retrieved.ID)
	}
	if retrieved.PasswordHash != "hashed_password" {
		t.Errorf("expected stored password hash, got %q", retrieved.PasswordHash)
	}
}

func TestUserRepository_GetUserByEmail_NotFound(t *testing.T) {
	pool := setupTestPool(t)
	repo := NewUserRepository(pool)
	ctx := context.Background()

	if _, err := repo.GetUserByEmail(ctx, "missing@example.com"); !errors.Is(err, persistence.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := repo.GetUserByEmail(ctx, ""); !errors.Is(err, persistence.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for empty email, got %v", err)
	}
}

func TestUserRepository_GetUser_NotFound(t *testing.T) {
	pool := setupTestPool(t)
	repo := NewUserRepository(pool)

	if _, err := repo.GetUser(context.Background(), "missing"); !errors.Is(err, persistence.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
