package testfixtures

import (
	"context"
	"testing"

	"github.com/example/meetline/internal/application"
)

type capturingEventTypeRepo struct {
	created application.EventType
}

func (c *capturingEventTypeRepo) CreateEventType(ctx context.Context, eventType application.EventType) (application.EventType, error) {
	c.created = eventType
	return eventType, nil
}

func (c *capturingEventTypeRepo) ListEventTypes(ctx context.Context) ([]application.EventType, error) {
	return nil, nil
}

func TestServiceFactoryNewEventTypeService(t *testing.T) {
	factory := NewServiceFactory()
	repo := &capturingEventTypeRepo{}

	svc := factory.NewEventTypeService(EventTypeServiceDeps{EventTypes: repo})
	owner := NewUserFixture()
	input := NewEventTypeFixture(WithEventTypeTitle("Intro Call")).Input()

	eventType, err := svc.CreateEventType(context.Background(), application.CreateEventTypeParams{
		Principal: owner.Principal(),
		Input:     input,
	})
	if err != nil {
		t.Fatalf("CreateEventType returned error: %v", err)
	}

	if eventType.ID != "id-1" {
		t.Fatalf("expected generated ID id-1, got %q", eventType.ID)
	}
	if repo.created.ID != eventType.ID {
		t.Fatalf("repository received unexpected ID: %q", repo.created.ID)
	}
	if !eventType.CreatedAt.Equal(factory.Clock.Now()) {
		t.Fatalf("expected timestamp %v, got %v", factory.Clock.Now(), eventType.CreatedAt)
	}
}

func TestServiceFactoryNewMeetingService(t *testing.T) {
	factory := NewServiceFactory()
	repo := &capturingEventTypeRepo{}

	svc := factory.NewMeetingService(MeetingServiceDeps{EventTypes: repo})

	meetings, err := svc.ListMeetings(context.Background(), application.ListMeetingsParams{
		Principal: application.Principal{UserID: "1"},
	})
	if err != nil {
		t.Fatalf("ListMeetings returned error: %v", err)
	}
	if len(meetings) != 0 {
		t.Fatalf("expected no meetings for empty registry, got %d", len(meetings))
	}
}
