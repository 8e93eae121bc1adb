package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/example/meetline/internal/application"
)

type eventTypeService interface {
	ListEventTypes(ctx context.Context) ([]application.EventType, error)
	CreateEventType(ctx context.Context, params application.CreateEventTypeParams) (application.EventType, error)
}

type EventTypeHandler struct {
	service   eventTypeService
	responder responder
	logger    *slog.Logger
}

func NewEventTypeHandler(service eventTypeService, logger *slog.Logger) *EventTypeHandler {
	base := defaultLogger(logger)
	return &EventTypeHandler{service: service, responder: newResponder(base), logger: base}
}

func (h *EventTypeHandler) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	if h == nil {
		return slog.Default()
	}
	return handlerLogger(ctx, h.logger, "EventTypeHandler", operation, attrs...)
}

func (h *EventTypeHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	eventTypes, err := h.service.ListEventTypes(r.Context())
	if err != nil {
		h.log(r.Context(), "List").ErrorContext(r.Context(), "failed to list event types", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	payload := make([]eventTypeDTO, 0, len(eventTypes))
	for _, eventType := range eventTypes {
		payload = append(payload, newEventTypeDTO(eventType))
	}
	h.responder.writeJSON(r.Context(), w, http.StatusOK, payload)
}

func (h *EventTypeHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		h.responder.writeJSON(r.Context(), w, http.StatusUnauthorized, errorResponse{Error: staleSessionMessage})
		return
	}

	var req eventTypeCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log(r.Context(), "Create", "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode event type request", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	logger := h.log(r.Context(), "Create", "title", strings.TrimSpace(req.Title))

	eventType, err := h.service.CreateEventType(r.Context(), application.CreateEventTypeParams{
		Principal: principal,
		Input: application.EventTypeInput{
			Title:           req.Title,
			DurationMinutes: req.durationMinutes(),
			Category:        req.Type,
			Platform:        req.Platform,
			Availability:    req.Availability,
			Color:           req.Color,
		},
	})
	if err != nil {
		logger.ErrorContext(r.Context(), "failed to create event type", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.With("event_type_id", eventType.ID).InfoContext(r.Context(), "event type created")
	h.responder.writeJSON(r.Context(), w, http.StatusCreated, newEventTypeDTO(eventType))
}

type eventTypeCreateRequest struct {
	Title        string          `json:"title"`
	Duration     json.RawMessage `json:"duration"`
	Type         string          `json:"type"`
	Platform     string          `json:"platform"`
	Availability string          `json:"availability"`
	Color        string          `json:"color"`
}

// durationMinutes accepts the duration as either a JSON number or a numeric
// string. Anything unparseable comes back as zero and fails validation.
func (req eventTypeCreateRequest) durationMinutes() int {
	raw := strings.TrimSpace(string(req.Duration))
	raw = strings.Trim(raw, `"`)
	if raw == "" || raw == "null" {
		return 0
	}
	minutes, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return minutes
}

type eventTypeDTO struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Duration     int    `json:"duration"`
	Type         string `json:"type"`
	Platform     string `json:"platform"`
	Availability string `json:"availability"`
	Color        string `json:"color"`
}

func newEventTypeDTO(eventType application.EventType) eventTypeDTO {
	return eventTypeDTO{
		ID:           eventType.ID,
		Title:        eventType.Title,
		Duration:     eventType.DurationMinutes,
		Type:         eventType.Category,
		Platform:     eventType.Platform,
		Availability: eventType.Availability,
		Color:        eventType.Color,
	}
}
