package persistence

import "time"

// User represents a provisioned account in storage. The seed set is fixed;
// users are never mutated or deleted.
type User struct {
	ID           string
	Email        string
	Name         string
	Initials     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Session represents an authentication session persisted for a user.
type Session struct {
	ID        string
	UserID    string
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
	RevokedAt *time.Time
}

// EventType represents a reusable meeting template stored in the registry.
type EventType struct {
	ID              string
	Title           string
	DurationMinutes int
	Category        string
	Platform        string
	Availability    string
	Color           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
