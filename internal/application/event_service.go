package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// EventTypeRepository captures the persistence operations needed by the event
// type service.
type EventTypeRepository interface {
	CreateEventType(ctx context.Context, eventType EventType) (EventType, error)
	ListEventTypes(ctx context.Context) ([]EventType, error)
}

// EventTypeService orchestrates validation and persistence for event types.
// The registry is process-global: event types are not partitioned per user.
type EventTypeService struct {
	eventTypes  EventTypeRepository
	idGenerator func() string
	now         func() time.Time
	logger      *slog.Logger
}

// NewEventTypeService wires dependencies for the event type service.
func NewEventTypeService(eventTypes EventTypeRepository, idGenerator func() string, now func() time.Time) *EventTypeService {
	return NewEventTypeServiceWithLogger(eventTypes, idGenerator, now, nil)
}

// NewEventTypeServiceWithLogger constructs an EventTypeService with a specified logger.
func NewEventTypeServiceWithLogger(eventTypes EventTypeRepository, idGenerator func() string, now func() time.Time, logger *slog.Logger) *EventTypeService {
	if idGenerator == nil {
		idGenerator = func() string { return "" }
	}
	if now == nil {
		now = time.Now
	}
	return &EventTypeService{
		eventTypes:  eventTypes,
		idGenerator: idGenerator,
		now:         now,
		logger:      defaultLogger(logger),
	}
}

func (s *EventTypeService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "EventTypeService", operation, attrs...)
}

// ListEventTypes returns all event types in insertion order. Listing requires
// no session; creation does.
func (s *EventTypeService) ListEventTypes(ctx context.Context) ([]EventType, error) {
	if s == nil {
		return nil, fmt.Errorf("EventTypeService is nil")
	}
	if s.eventTypes == nil {
		return nil, fmt.Errorf("event type repository not configured")
	}

	logger := s.loggerWith(ctx, "ListEventTypes")
	eventTypes, err := s.eventTypes.ListEventTypes(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "event type listing failed", "error", err, "error_kind", ErrorKind(err))
		return nil, err
	}

	logger.With("result_count", len(eventTypes)).InfoContext(ctx, "event types listed")
	return eventTypes, nil
}

// CreateEventType validates input, applies defaults, and persists a new event
// type. Validation stops at the first offending field.
func (s *EventTypeService) CreateEventType(ctx context.Context, params CreateEventTypeParams) (EventType, error) {
	if s == nil {
		return EventType{}, fmt.Errorf("EventTypeService is nil")
	}
	if s.eventTypes == nil {
		return EventType{}, fmt.Errorf("event type repository not configured")
	}

	normalized := normalizeEventTypeInput(params.Input)
	logger := s.loggerWith(ctx, "CreateEventType",
		"principal_id", params.Principal.UserID,
		"title", normalized.Title,
	)

	if err := validateEventTypeInput(normalized); err != nil {
		logger.ErrorContext(ctx, "event type validation failed", "error", err, "error_kind", ErrorKind(err))
		return EventType{}, err
	}

	now := s.now()
	eventType := EventType{
		ID:              s.idGenerator(),
		Title:           normalized.Title,
		DurationMinutes: normalized.DurationMinutes,
		Category:        normalized.Category,
		Platform:        normalized.Platform,
		Availability:    normalized.Availability,
		Color:           normalized.Color,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	persisted, err := s.eventTypes.CreateEventType(ctx, eventType)
	if err != nil {
		logger.ErrorContext(ctx, "event type creation failed", "error", err, "error_kind", ErrorKind(err))
		return EventType{}, err
	}

	logger.With("event_type_id", persisted.ID).InfoContext(ctx, "event type created")
	return persisted, nil
}

func normalizeEventTypeInput(input EventTypeInput) EventTypeInput {
	normalized := EventTypeInput{
		Title:           strings.TrimSpace(input.Title),
		DurationMinutes: input.DurationMinutes,
		Category:        strings.TrimSpace(input.Category),
		Platform:        strings.TrimSpace(input.Platform),
		Availability:    strings.TrimSpace(input.Availability),
		Color:           strings.TrimSpace(input.Color),
	}

	if normalized.Platform == "" {
		normalized.Platform = DefaultPlatform
	}
	if normalized.Availability == "" {
		normalized.Availability = DefaultAvailability
	}
	if normalized.Color == "" {
		normalized.Color = DefaultColor
	}

	return normalized
}

func validateEventTypeInput(input EventTypeInput) error {
	if input.Title == "" {
		return newValidationError("title", "title is required")
	}
	if input.DurationMinutes <= 0 {
		return newValidationError("duration", "duration must be a positive number")
	}
	if input.Category == "" {
		return newValidationError("type", "type is required")
	}
	return nil
}
