package persistence

import (
	"context"
	"time"
)

// UserRepository exposes lookup and seeding operations for users.
type UserRepository interface {
	CreateUser(ctx context.Context, user User) error
	GetUser(ctx context.Context, id string) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
}

// SessionRepository stores authentication session state.
type SessionRepository interface {
	CreateSession(ctx context.Context, session Session) (Session, error)
	GetSession(ctx context.Context, token string) (Session, error)
	RevokeSession(ctx context.Context, token string, revokedAt time.Time) error
	DeleteExpiredSessions(ctx context.Context, reference time.Time) (int, error)
}

// EventTypeRepository stores event type templates, insertion-ordered for listing.
type EventTypeRepository interface {
	CreateEventType(ctx context.Context, eventType EventType) (EventType, error)
	GetEventType(ctx context.Context, id string) (EventType, error)
	ListEventTypes(ctx context.Context) ([]EventType, error)
}
