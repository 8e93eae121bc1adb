package application

import "time"

// Principal represents the authenticated user invoking a service method.
type Principal struct {
	UserID string
}

// User represents a provisioned account exposed by the application services.
type User struct {
	ID        string
	Email     string
	Name      string
	Initials  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserCredentials models the authentication attributes persisted for a user.
type UserCredentials struct {
	User         User
	PasswordHash string
}

// Session represents an authenticated session issued to a user.
type Session struct {
	ID        string
	UserID    string
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
	RevokedAt *time.Time
}

// AuthenticateParams captures the data required to authenticate a user.
type AuthenticateParams struct {
	Email    string
	Password string
}

// AuthenticateResult captures the outcome of a successful authentication attempt.
type AuthenticateResult struct {
	User    User
	Session Session
}

// Known event type categories surfaced by the scheduling UI.
const (
	CategoryOneOnOne   = "One-on-One"
	CategoryGroup      = "Group"
	CategoryRoundRobin = "Round Robin"
)

// Known meeting platforms.
const (
	PlatformGoogleMeet     = "Google Meet"
	PlatformZoom           = "Zoom"
	PlatformMicrosoftTeams = "Microsoft Teams"
	PlatformPhoneCall      = "Phone Call"
	PlatformInPerson       = "In Person"
)

// Defaults applied when event type creation omits optional fields.
const (
	DefaultPlatform     = PlatformGoogleMeet
	DefaultAvailability = "Weekdays, 9:00 am - 5:00 pm"
	DefaultColor        = "purple"
)

// EventTypeInput captures caller provided event type fields.
type EventTypeInput struct {
	Title           string
	DurationMinutes int
	Category        string
	Platform        string
	Availability    string
	Color           string
}

// EventType represents a reusable meeting template.
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

// CreateEventTypeParams wraps the data required to create an event type.
type CreateEventTypeParams struct {
	Principal Principal
	Input     EventTypeInput
}

// MeetingStatus is the lifecycle state of a derived meeting. Only "scheduled"
// exists in this scope.
const MeetingStatusScheduled = "scheduled"

// Meeting represents a synthetic booking instance derived from an event type.
// Meetings are recomputed on every listing and never persisted.
type Meeting struct {
	ID             string
	EventTypeID    string
	EventTypeTitle string
	AttendeeName   string
	AttendeeEmail  string
	Date           time.Time
	StartsAt       time.Time
	EndsAt         time.Time
	Timezone       string
	Status         string
	JoinLink       string
	CreatedAt      time.Time
}

// ListMeetingsParams wraps the data required to list derived meetings.
type ListMeetingsParams struct {
	Principal Principal
}
