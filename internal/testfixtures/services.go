package testfixtures

import (
	"log/slog"
	"time"

	"github.com/example/meetline/internal/application"
	"github.com/example/meetline/internal/derive"
)

// ServiceFactory assists tests with constructing application services using
// deterministic identifiers and clocks.
type ServiceFactory struct {
	Clock       *Clock
	IDGenerator *IDGenerator
}

// ServiceFactoryOption configures a ServiceFactory instance.
type ServiceFactoryOption func(*ServiceFactory)

// NewServiceFactory constructs a ServiceFactory with defaults.
func NewServiceFactory(opts ...ServiceFactoryOption) *ServiceFactory {
	factory := &ServiceFactory{
		Clock:       NewClock(time.Time{}),
		IDGenerator: NewIDGenerator("id"),
	}
	for _, opt := range opts {
		opt(factory)
	}
	if factory.Clock == nil {
		factory.Clock = NewClock(time.Time{})
	}
	if factory.IDGenerator == nil {
		factory.IDGenerator = NewIDGenerator("id")
	}
	return factory
}

// WithClock overrides the clock used by the factory.
func WithClock(clock *Clock) ServiceFactoryOption {
	return func(factory *ServiceFactory) {
		factory.Clock = clock
	}
}

// WithIDGenerator overrides the identifier generator used by the factory.
func WithIDGenerator(generator *IDGenerator) ServiceFactoryOption {
	return func(factory *ServiceFactory) {
		factory.IDGenerator = generator
	}
}

// AuthServiceDeps captures dependencies for constructing an auth service.
type AuthServiceDeps struct {
	Credentials    application.CredentialStore
	Sessions       application.SessionRepository
	PasswordVerify application.PasswordVerifier
	TokenGenerator func() string
	IDGenerator    func() string
	Now            func() time.Time
	SessionTTL     time.Duration
	Logger         *slog.Logger
}

// NewAuthService builds an auth service using the supplied dependencies
// combined with the factory defaults.
func (f *ServiceFactory) NewAuthService(deps AuthServiceDeps) *application.AuthService {
	token := deps.TokenGenerator
	if token == nil {
		token = f.IDGenerator.NextFunc()
	}
	idGen := deps.IDGenerator
	if idGen == nil {
		idGen = f.IDGenerator.NextFunc()
	}
	now := deps.Now
	if now == nil {
		now = f.Clock.NowFunc()
	}
	return application.NewAuthServiceWithLogger(
		deps.Credentials,
		deps.Sessions,
		deps.PasswordVerify,
		token,
		idGen,
		now,
		deps.SessionTTL,
		deps.Logger,
	)
}

// EventTypeServiceDeps captures dependencies for constructing an event type service.
type EventTypeServiceDeps struct {
	EventTypes  application.EventTypeRepository
	IDGenerator func() string
	Now         func() time.Time
	Logger      *slog.Logger
}

// NewEventTypeService builds an event type service using the supplied dependencies.
func (f *ServiceFactory) NewEventTypeService(deps EventTypeServiceDeps) *application.EventTypeService {
	idGen := deps.IDGenerator
	if idGen == nil {
		idGen = f.IDGenerator.NextFunc()
	}
	now := deps.Now
	if now == nil {
		now = f.Clock.NowFunc()
	}
	return application.NewEventTypeServiceWithLogger(
		deps.EventTypes,
		idGen,
		now,
		deps.Logger,
	)
}

// MeetingServiceDeps captures dependencies for constructing a meeting service.
type MeetingServiceDeps struct {
	EventTypes application.EventTypeRepository
	Engine     *derive.Engine
	Now        func() time.Time
	Logger     *slog.Logger
}

// NewMeetingService builds a meeting service using the supplied dependencies.
func (f *ServiceFactory) NewMeetingService(deps MeetingServiceDeps) *application.MeetingService {
	engine := deps.Engine
	if engine == nil {
		engine = derive.NewEngine(f.IDGenerator.NextFunc())
	}
	now := deps.Now
	if now == nil {
		now = f.Clock.NowFunc()
	}
	return application.NewMeetingServiceWithLogger(
		deps.EventTypes,
		engine,
		now,
		deps.Logger,
	)
}
