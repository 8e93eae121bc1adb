package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/example/meetline/internal/application"
)

type meetingService interface {
	ListMeetings(ctx context.Context, params application.ListMeetingsParams) ([]application.Meeting, error)
}

type MeetingHandler struct {
	service   meetingService
	responder responder
	logger    *slog.Logger
}

func NewMeetingHandler(service meetingService, logger *slog.Logger) *MeetingHandler {
	base := defaultLogger(logger)
	return &MeetingHandler{service: service, responder: newResponder(base), logger: base}
}

func (h *MeetingHandler) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	if h == nil {
		return slog.Default()
	}
	return handlerLogger(ctx, h.logger, "MeetingHandler", operation, attrs...)
}

func (h *MeetingHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		h.responder.writeJSON(r.Context(), w, http.StatusUnauthorized, errorResponse{Error: staleSessionMessage})
		return
	}

	meetings, err := h.service.ListMeetings(r.Context(), application.ListMeetingsParams{Principal: principal})
	if err != nil {
		h.log(r.Context(), "List").ErrorContext(r.Context(), "failed to list meetings", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	payload := make([]meetingDTO, 0, len(meetings))
	for _, meeting := range meetings {
		payload = append(payload, newMeetingDTO(meeting))
	}
	h.responder.writeJSON(r.Context(), w, http.StatusOK, payload)
}

type meetingDTO struct {
	ID             string `json:"id"`
	EventTypeID    string `json:"eventTypeId"`
	EventTypeTitle string `json:"eventTypeTitle"`
	AttendeeName   string `json:"attendeeName"`
	AttendeeEmail  string `json:"attendeeEmail"`
	Date           string `json:"date"`
	StartTime      string `json:"startTime"`
	EndTime        string `json:"endTime"`
	Timezone       string `json:"timezone"`
	Status         string `json:"status"`
	JoinLink       string `json:"joinLink"`
	CreatedAt      string `json:"createdAt"`
}

func newMeetingDTO(meeting application.Meeting) meetingDTO {
	return meetingDTO{
		ID:             meeting.ID,
		EventTypeID:    meeting.EventTypeID,
		EventTypeTitle: meeting.EventTypeTitle,
		AttendeeName:   meeting.AttendeeName,
		AttendeeEmail:  meeting.AttendeeEmail,
		Date:           meeting.Date.Format("2006-01-02"),
		StartTime:      meeting.StartsAt.Format("15:04"),
		EndTime:        meeting.EndsAt.Format("15:04"),
		Timezone:       meeting.Timezone,
		Status:         meeting.Status,
		JoinLink:       meeting.JoinLink,
		CreatedAt:      meeting.CreatedAt.UTC().Format(time.RFC3339),
	}
}
