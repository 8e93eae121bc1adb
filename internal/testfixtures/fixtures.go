package testfixtures

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/example/meetline/internal/application"
	"github.com/example/meetline/internal/persistence"
)

var (
	userCounter      uint64
	sessionCounter   uint64
	eventTypeCounter uint64
)

var referenceTime = time.Date(2024, time.January, 2, 15, 4, 5, 0, time.UTC)

// ReferenceTime returns the canonical baseline timestamp used by fixtures.
func ReferenceTime() time.Time {
	return referenceTime
}

// ----------------------------- User fixtures -----------------------------

// UserFixture represents a deterministic user record that can be materialised
// for application or persistence tests.
type UserFixture struct {
	ID           string
	Email        string
	Name         string
	Initials     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserOption configures the generated user fixture.
type UserOption func(*UserFixture)

// NewUserFixture returns a deterministic user fixture with optional overrides.
func NewUserFixture(opts ...UserOption) UserFixture {
	idx := atomic.AddUint64(&userCounter, 1)
	id := fmt.Sprintf("user-%03d", idx)
	created := referenceTime.Add(time.Duration(idx) * time.Minute)
	fixture := UserFixture{
		ID:           id,
		Email:        fmt.Sprintf("%s@example.com", id),
		Name:         fmt.Sprintf("User %03d", idx),
		Initials:     "UU",
		PasswordHash: fmt.Sprintf("hash-%03d", idx),
		CreatedAt:    created,
		UpdatedAt:    created,
	}
	for _, opt := range opts {
		opt(&fixture)
	}
	return fixture
}

// WithUserID overrides the generated user ID.
func WithUserID(id string) UserOption {
	return func(f *UserFixture) {
		f.ID = id
	}
}

// WithUserEmail overrides the generated email address.
func WithUserEmail(email string) UserOption {
	return func(f *UserFixture) {
		f.Email = email
	}
}

// WithUserName overrides the generated display name.
func WithUserName(name string) UserOption {
	return func(f *UserFixture) {
		f.Name = name
	}
}

// WithUserInitials overrides the generated initials.
func WithUserInitials(initials string) UserOption {
	return func(f *UserFixture) {
		f.Initials = initials
	}
}

// WithUserPasswordHash overrides the generated password hash.
func WithUserPasswordHash(hash string) UserOption {
	return func(f *UserFixture) {
		f.PasswordHash = hash
	}
}

// WithUserTimestamps sets both created and updated timestamps on the fixture.
func WithUserTimestamps(created, updated time.Time) UserOption {
	return func(f *UserFixture) {
		f.CreatedAt = created
		f.UpdatedAt = updated
	}
}

// Application returns the fixture as an application.User value.
func (f UserFixture) Application() application.User {
	return application.User{
		ID:        f.ID,
		Email:     f.Email,
		Name:      f.Name,
		Initials:  f.Initials,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

// Credentials returns the fixture as application.UserCredentials.
func (f UserFixture) Credentials() application.UserCredentials {
	return application.UserCredentials{
		User:         f.Application(),
		PasswordHash: f.PasswordHash,
	}
}

// Principal returns an application.Principal derived from the fixture.
func (f UserFixture) Principal() application.Principal {
	return application.Principal{UserID: f.ID}
}

// Persistence returns the fixture as a persistence.User value.
func (f UserFixture) Persistence() persistence.User {
	return persistence.User{
		ID:           f.ID,
		Email:        f.Email,
		Name:         f.Name,
		Initials:     f.Initials,
		PasswordHash: f.PasswordHash,
		CreatedAt:    f.CreatedAt,
		UpdatedAt:    f.UpdatedAt,
	}
}

// ----------------------------- Session fixtures -------------------------

// SessionFixture represents a deterministic session record.
type SessionFixture struct {
	ID        string
	UserID    string
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
	RevokedAt *time.Time
}

// SessionOption configures the generated session fixture.
type SessionOption func(*SessionFixture)

// NewSessionFixture returns a deterministic session fixture with optional overrides.
func NewSessionFixture(opts ...SessionOption) SessionFixture {
	idx := atomic.AddUint64(&sessionCounter, 1)
	created := referenceTime
	fixture := SessionFixture{
		ID:        fmt.Sprintf("session-%03d", idx),
		UserID:    fmt.Sprintf("user-%03d", idx),
		Token:     fmt.Sprintf("token-%03d", idx),
		ExpiresAt: created.Add(24 * time.Hour),
		CreatedAt: created,
		UpdatedAt: created,
	}
	for _, opt := range opts {
		opt(&fixture)
	}
	return fixture
}

// WithSessionID overrides the session ID.
func WithSessionID(id string) SessionOption {
	return func(f *SessionFixture) {
		f.ID = id
	}
}

// WithSessionUserID sets the user ID.
func WithSessionUserID(id string) SessionOption {
	return func(f *SessionFixture) {
		f.UserID = id
	}
}

// WithSessionToken overrides the token value.
func WithSessionToken(token string) SessionOption {
	return func(f *SessionFixture) {
		f.Token = token
	}
}

// WithSessionExpiresAt sets the expiration timestamp.
func WithSessionExpiresAt(t time.Time) SessionOption {
	return func(f *SessionFixture) {
		f.ExpiresAt = t
	}
}

// WithSessionRevokedAt sets the optional revoked timestamp.
func WithSessionRevokedAt(t time.Time) SessionOption {
	return func(f *SessionFixture) {
		revoked := t
		f.RevokedAt = &revoked
	}
}

// Application returns the fixture as an application.Session value.
func (f SessionFixture) Application() application.Session {
	var revoked *time.Time
	if f.RevokedAt != nil {
		t := *f.RevokedAt
		revoked = &t
	}
	return application.Session{
		ID:        f.ID,
		UserID:    f.UserID,
		Token:     f.Token,
		ExpiresAt: f.ExpiresAt,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
		RevokedAt: revoked,
	}
}

// Persistence returns the fixture as a persistence.Session value.
func (f SessionFixture) Persistence() persistence.Session {
	var revoked *time.Time
	if f.RevokedAt != nil {
		t := *f.RevokedAt
		revoked = &t
	}
	return persistence.Session{
		ID:        f.ID,
		UserID:    f.UserID,
		Token:     f.Token,
		ExpiresAt: f.ExpiresAt,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
		RevokedAt: revoked,
	}
}

// --------------------------- Event type fixtures -------------------------

// EventTypeFixture represents a deterministic event type template.
type EventTypeFixture struct {
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

// EventTypeOption configures the generated event type fixture.
type EventTypeOption func(*EventTypeFixture)

// NewEventTypeFixture returns a deterministic event type fixture with optional overrides.
func NewEventTypeFixture(opts ...EventTypeOption) EventTypeFixture {
	idx := atomic.AddUint64(&eventTypeCounter, 1)
	created := referenceTime.Add(time.Duration(idx) * time.Hour)
	fixture := EventTypeFixture{
		ID:              fmt.Sprintf("event-type-%03d", idx),
		Title:           fmt.Sprintf("Event Type %03d", idx),
		DurationMinutes: 30,
		Category:        application.CategoryOneOnOne,
		Platform:        application.DefaultPlatform,
		Availability:    application.DefaultAvailability,
		Color:           application.DefaultColor,
		CreatedAt:       created,
		UpdatedAt:       created,
	}
	for _, opt := range opts {
		opt(&fixture)
	}
	return fixture
}

// WithEventTypeID overrides the event type ID.
func WithEventTypeID(id string) EventTypeOption {
	return func(f *EventTypeFixture) {
		f.ID = id
	}
}

// WithEventTypeTitle overrides the title.
func WithEventTypeTitle(title string) EventTypeOption {
	return func(f *EventTypeFixture) {
		f.Title = title
	}
}

// WithEventTypeDuration sets the duration in minutes.
func WithEventTypeDuration(minutes int) EventTypeOption {
	return func(f *EventTypeFixture) {
		f.DurationMinutes = minutes
	}
}

// WithEventTypeCategory sets the category.
func WithEventTypeCategory(category string) EventTypeOption {
	return func(f *EventTypeFixture) {
		f.Category = category
	}
}

// WithEventTypePlatform sets the meeting platform.
func WithEventTypePlatform(platform string) EventTypeOption {
	return func(f *EventTypeFixture) {
		f.Platform = platform
	}
}

// WithEventTypeAvailability sets the free-text availability description.
func WithEventTypeAvailability(availability string) EventTypeOption {
	return func(f *EventTypeFixture) {
		f.Availability = availability
	}
}

// WithEventTypeColor sets the display color tag.
func WithEventTypeColor(color string) EventTypeOption {
	return func(f *EventTypeFixture) {
		f.Color = color
	}
}

// WithEventTypeTimestamps sets both created and updated timestamps.
func WithEventTypeTimestamps(created, updated time.Time) EventTypeOption {
	return func(f *EventTypeFixture) {
		f.CreatedAt = created
		f.UpdatedAt = updated
	}
}

// Application returns the fixture as an application.EventType value.
func (f EventTypeFixture) Application() application.EventType {
	return application.EventType{
		ID:              f.ID,
		Title:           f.Title,
		DurationMinutes: f.DurationMinutes,
		Category:        f.Category,
		Platform:        f.Platform,
		Availability:    f.Availability,
		Color:           f.Color,
		CreatedAt:       f.CreatedAt,
		UpdatedAt:       f.UpdatedAt,
	}
}

// Persistence returns the fixture as a persistence.EventType value.
func (f EventTypeFixture) Persistence() persistence.EventType {
	return persistence.EventType{
		ID:              f.ID,
		Title:           f.Title,
		DurationMinutes: f.DurationMinutes,
		Category:        f.Category,
		Platform:        f.Platform,
		Availability:    f.Availability,
		Color:           f.Color,
		CreatedAt:       f.CreatedAt,
		UpdatedAt:       f.UpdatedAt,
	}
}

// Input returns the fixture as an application.EventTypeInput.
func (f EventTypeFixture) Input() application.EventTypeInput {
	return application.EventTypeInput{
		Title:           f.Title,
		DurationMinutes: f.DurationMinutes,
		Category:        f.Category,
		Platform:        f.Platform,
		Availability:    f.Availability,
		Color:           f.Color,
	}
}
