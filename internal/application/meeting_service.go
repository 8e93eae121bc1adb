package application

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/example/meetline/internal/derive"
)

// MeetingService recomputes the meeting listing from the current event type
// registry on every call. Meetings are never stored; the previous listing is
// simply discarded.
type MeetingService struct {
	eventTypes EventTypeRepository
	engine     *derive.Engine
	now        func() time.Time
	logger     *slog.Logger
}

// NewMeetingService wires dependencies for the meeting service.
func NewMeetingService(eventTypes EventTypeRepository, engine *derive.Engine, now func() time.Time) *MeetingService {
	return NewMeetingServiceWithLogger(eventTypes, engine, now, nil)
}

// NewMeetingServiceWithLogger constructs a MeetingService with a specified logger.
func NewMeetingServiceWithLogger(eventTypes EventTypeRepository, engine *derive.Engine, now func() time.Time, logger *slog.Logger) *MeetingService {
	if now == nil {
		now = time.Now
	}
	return &MeetingService{
		eventTypes: eventTypes,
		engine:     engine,
		now:        now,
		logger:     defaultLogger(logger),
	}
}

func (s *MeetingService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "MeetingService", operation, attrs...)
}

// ListMeetings snapshots the event type registry and derives the meeting
// listing from it, sorted ascending by date and start time.
func (s *MeetingService) ListMeetings(ctx context.Context, params ListMeetingsParams) ([]Meeting, error) {
	if s == nil {
		return nil, fmt.Errorf("MeetingService is nil")
	}
	if s.eventTypes == nil {
		return nil, fmt.Errorf("event type repository not configured")
	}
	if s.engine == nil {
		return nil, fmt.Errorf("derivation engine not configured")
	}

	logger := s.loggerWith(ctx, "ListMeetings", "principal_id", params.Principal.UserID)

	eventTypes, err := s.eventTypes.ListEventTypes(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "event type snapshot failed", "error", err, "error_kind", ErrorKind(err))
		return nil, err
	}

	templates := make([]derive.Template, 0, len(eventTypes))
	for _, eventType := range eventTypes {
		templates = append(templates, derive.Template{
			ID:              eventType.ID,
			Title:           eventType.Title,
			DurationMinutes: eventType.DurationMinutes,
			Platform:        eventType.Platform,
			Availability:    eventType.Availability,
		})
	}

	derived := s.engine.Derive(templates, s.now())

	meetings := make([]Meeting, 0, len(derived))
	for _, m := range derived {
		meetings = append(meetings, Meeting{
			ID:             m.ID,
			EventTypeID:    m.TemplateID,
			EventTypeTitle: m.Title,
			AttendeeName:   m.Attendee.Name,
			AttendeeEmail:  m.Attendee.Email,
			Date:           m.Date,
			StartsAt:       m.Start,
			EndsAt:         m.End,
			Timezone:       m.Timezone,
			Status:         m.Status,
			JoinLink:       m.JoinLink,
			CreatedAt:      m.CreatedAt,
		})
	}

	logger.With("result_count", len(meetings)).InfoContext(ctx, "meetings derived")
	return meetings, nil
}
