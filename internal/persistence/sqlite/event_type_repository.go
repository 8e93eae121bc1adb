package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/example/meetline/internal/persistence"
)

// EventTypeRepository implements persistence.EventTypeRepository using SQLite.
type EventTypeRepository struct {
	helper *QueryHelper
	mapper *ErrorMapper
}

// NewEventTypeRepository creates a new SQLite event type repository.
func NewEventTypeRepository(pool *ConnectionPool) *EventTypeRepository {
	return &EventTypeRepository{
		helper: NewQueryHelper(pool),
		mapper: NewErrorMapper(),
	}
}

// CreateEventType stores a new event type record and returns the stored copy.
func (r *EventTypeRepository) CreateEventType(ctx context.Context, eventType persistence.EventType) (persistence.EventType, error) {
	if eventType.ID == "" || strings.TrimSpace(eventType.Title) == "" {
		return persistence.EventType{}, persistence.ErrConstraintViolation
	}

	now := time.Now().UTC()
	if eventType.CreatedAt.IsZero() {
		eventType.CreatedAt = now
	}
	if eventType.UpdatedAt.IsZero() {
		eventType.UpdatedAt = eventType.CreatedAt
	}

	_, err := r.helper.Exec(ctx, `
		INSERT INTO event_types (id, title, duration_minutes, category, platform, availability, color, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		eventType.ID,
		eventType.Title,
		eventType.DurationMinutes,
		eventType.Category,
		eventType.Platform,
		eventType.Availability,
		eventType.Color,
		eventType.CreatedAt.Format(time.RFC3339),
		eventType.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return persistence.EventType{}, r.mapper.MapError(err)
	}
	return eventType, nil
}

// GetEventType retrieves an event type by ID.
func (r *EventTypeRepository) GetEventType(ctx context.Context, id string) (persistence.EventType, error) {
	row := r.helper.QueryRow(ctx, `
		SELECT id, title, duration_minutes, category, platform, availability, color, created_at, updated_at
		FROM event_types
		WHERE id = ?`, id)

	return r.scanEventType(row)
}

// ListEventTypes returns all event types in insertion order.
func (r *EventTypeRepository) ListEventTypes(ctx context.Context) ([]persistence.EventType, error) {
	rows, err := r.helper.Query(ctx, `
		SELECT id, title, duration_minutes, category, platform, availability, color, created_at, updated_at
		FROM event_types
		ORDER BY rowid`)
	if err != nil {
		return nil, r.mapper.MapError(err)
	}
	defer rows.Close()

	eventTypes := make([]persistence.EventType, 0)
	for rows.Next() {
		eventType, err := r.scanEventType(rows)
		if err != nil {
			return nil, err
		}
		eventTypes = append(eventTypes, eventType)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return eventTypes, nil
}

func (r *EventTypeRepository) scanEventType(row rowScanner) (persistence.EventType, error) {
	var eventType persistence.EventType
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&eventType.ID,
		&eventType.Title,
		&eventType.DurationMinutes,
		&eventType.Category,
		&eventType.Platform,
		&eventType.Availability,
		&eventType.Color,
		&createdAtStr,
		&updatedAtStr,
	)
	if err != nil {
		return persistence.EventType{}, r.mapper.MapError(err)
	}

	if eventType.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return persistence.EventType{}, err
	}
	if eventType.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return persistence.EventType{}, err
	}

	return eventType, nil
}
