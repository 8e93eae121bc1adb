package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/example/meetline/internal/application"
	"github.com/example/meetline/internal/config"
	"github.com/example/meetline/internal/derive"
	httptransport "github.com/example/meetline/internal/http"
	"github.com/example/meetline/internal/obs"
	"github.com/example/meetline/internal/persistence"
	"github.com/example/meetline/internal/persistence/sqlite"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	pool, err := sqlite.NewConnectionPool(cfg.SQLiteDSN)
	if err != nil {
		logger.Error("failed to open storage", "error", err)
		os.Exit(1)
	}
	defer func() {
		if cerr := pool.Close(); cerr != nil {
			logger.Error("failed to close storage", "error", cerr)
		}
	}()

	if err := pool.Migrate(context.Background()); err != nil {
		logger.Error("failed to apply migrations", "error", err)
		os.Exit(1)
	}

	idGenerator := uuid.NewString
	tokenGenerator := func() string { return randomHex(32) }
	now := time.Now

	userRepo := sqlite.NewUserRepository(pool)
	sessionRepo := sqlite.NewSessionRepository(pool)
	eventTypeRepo := sqlite.NewEventTypeRepository(pool)

	if err := seedUsers(ctx, userRepo, now); err != nil {
		logger.Error("failed to seed users", "error", err)
		os.Exit(1)
	}
	if err := seedEventTypes(ctx, eventTypeRepo, idGenerator, now); err != nil {
		logger.Error("failed to seed event types", "error", err)
		os.Exit(1)
	}

	credentialStore := newCredentialStoreAdapter(userRepo)
	sessions := newSessionRepositoryAdapter(sessionRepo)
	eventTypes := newEventTypeRepositoryAdapter(eventTypeRepo)

	authService := application.NewAuthServiceWithLogger(credentialStore, sessions, nil, tokenGenerator, idGenerator, now, cfg.SessionTTL, logger)
	eventTypeService := application.NewEventTypeServiceWithLogger(eventTypes, idGenerator, now, logger)
	engine := derive.NewEngine(idGenerator)
	meetingService := application.NewMeetingServiceWithLogger(eventTypes, engine, now, logger)

	obs.Init()

	router := httptransport.NewRouter(httptransport.RouterConfig{
		Auth:       httptransport.NewAuthHandler(authService, logger),
		EventTypes: httptransport.NewEventTypeHandler(eventTypeService, logger),
		Meetings:   httptransport.NewMeetingHandler(meetingService, logger),
		Sessions:   authService,
		Metrics:    obs.Handler(),
		Middleware: []func(http.Handler) http.Handler{
			httptransport.RequestLogger(logger),
			httptransport.CORS(cfg.AllowedOrigin),
			obs.Instrument,
		},
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to shutdown server", "error", err)
		}
	}()

	logger.Info("meetline API listening", "addr", server.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server encountered error", "error", err)
		os.Exit(1)
	}
}

func randomHex(bytes int) string {
	if bytes <= 0 {
		bytes = 16
	}
	buf := make([]byte, bytes)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return fmt.Sprintf("fallback-%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(buf)
}

type seedUser struct {
	ID       string
	Email    string
	Password string
	Name     string
	Initials string
}

var seedUserSet = []seedUser{
	{ID: "1", Email: "lukas@example.com", Password: "password123", Name: "Lukas Koenig", Initials: "LK"},
	{ID: "2", Email: "demo@calendly.com", Password: "demo123", Name: "Demo User", Initials: "DU"},
}

// seedUsers provisions the demo accounts when they are not already present.
func seedUsers(ctx context.Context, repo persistence.UserRepository, now func() time.Time) error {
	for _, seed := range seedUserSet {
		if _, err := repo.GetUserByEmail(ctx, seed.Email); err == nil {
			continue
		} else if !errors.Is(err, persistence.ErrNotFound) {
			return err
		}

		hash, err := application.HashPassword(seed.Password)
		if err != nil {
			return err
		}
		created := now().UTC()
		if err := repo.CreateUser(ctx, persistence.User{
			ID:           seed.ID,
			Email:        seed.Email,
			Name:         seed.Name,
			Initials:     seed.Initials,
			PasswordHash: hash,
			CreatedAt:    created,
			UpdatedAt:    created,
		}); err != nil {
			return err
		}
	}
	return nil
}

// seedEventTypes installs the starter template into an empty registry.
func seedEventTypes(ctx context.Context, repo persistence.EventTypeRepository, idGenerator func() string, now func() time.Time) error {
	existing, err := repo.ListEventTypes(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	created := now().UTC()
	_, err = repo.CreateEventType(ctx, persistence.EventType{
		ID:              idGenerator(),
		Title:           "30 Minute Meeting",
		DurationMinutes: 30,
		Category:        application.CategoryOneOnOne,
		Platform:        application.DefaultPlatform,
		Availability:    "Weekdays, 10:30 am - 12:30 pm",
		Color:           application.DefaultColor,
		CreatedAt:       created,
		UpdatedAt:       created,
	})
	return err
}

type credentialStoreAdapter struct {
	repo persistence.UserRepository
}

func newCredentialStoreAdapter(repo persistence.UserRepository) *credentialStoreAdapter {
	return &credentialStoreAdapter{repo: repo}
}

func (a *credentialStoreAdapter) GetUserCredentialsByEmail(ctx context.Context, email string) (application.UserCredentials, error) {
	stored, err := a.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return application.UserCredentials{}, mapPersistenceError(err)
	}
	return application.UserCredentials{
		User:         toApplicationUser(stored),
		PasswordHash: stored.PasswordHash,
	}, nil
}

func (a *credentialStoreAdapter) GetUser(ctx context.Context, id string) (application.User, error) {
	stored, err := a.repo.GetUser(ctx, id)
	if err != nil {
		return application.User{}, mapPersistenceError(err)
	}
	return toApplicationUser(stored), nil
}

type sessionRepositoryAdapter struct {
	repo persistence.SessionRepository
}

func newSessionRepositoryAdapter(repo persistence.SessionRepository) *sessionRepositoryAdapter {
	return &sessionRepositoryAdapter{repo: repo}
}

func (a *sessionRepositoryAdapter) CreateSession(ctx context.Context, session application.Session) (application.Session, error) {
	stored, err := a.repo.CreateSession(ctx, toPersistenceSession(session))
	if err != nil {
		return application.Session{}, mapPersistenceError(err)
	}
	return toApplicationSession(stored), nil
}

func (a *sessionRepositoryAdapter) GetSession(ctx context.Context, token string) (application.Session, error) {
	stored, err := a.repo.GetSession(ctx, token)
	if err != nil {
		return application.Session{}, mapPersistenceError(err)
	}
	return toApplicationSession(stored), nil
}

func (a *sessionRepositoryAdapter) RevokeSession(ctx context.Context, token string, revokedAt time.Time) (application.Session, error) {
	if err := a.repo.RevokeSession(ctx, token, revokedAt); err != nil {
		return application.Session{}, mapPersistenceError(err)
	}
	stored, err := a.repo.GetSession(ctx, token)
	if err != nil {
		return application.Session{}, mapPersistenceError(err)
	}
	return toApplicationSession(stored), nil
}

func (a *sessionRepositoryAdapter) DeleteExpiredSessions(ctx context.Context, reference time.Time) error {
	_, err := a.repo.DeleteExpiredSessions(ctx, reference)
	return err
}

type eventTypeRepositoryAdapter struct {
	repo persistence.EventTypeRepository
}

func newEventTypeRepositoryAdapter(repo persistence.EventTypeRepository) *eventTypeRepositoryAdapter {
	return &eventTypeRepositoryAdapter{repo: repo}
}

func (a *eventTypeRepositoryAdapter) CreateEventType(ctx context.Context, eventType application.EventType) (application.EventType, error) {
	stored, err := a.repo.CreateEventType(ctx, toPersistenceEventType(eventType))
	if err != nil {
		return application.EventType{}, mapPersistenceError(err)
	}
	return toApplicationEventType(stored), nil
}

func (a *eventTypeRepositoryAdapter) ListEventTypes(ctx context.Context) ([]application.EventType, error) {
	models, err := a.repo.ListEventTypes(ctx)
	if err != nil {
		return nil, mapPersistenceError(err)
	}
	eventTypes := make([]application.EventType, 0, len(models))
	for _, model := range models {
		eventTypes = append(eventTypes, toApplicationEventType(model))
	}
	return eventTypes, nil
}

func mapPersistenceError(err error) error {
	if errors.Is(err, persistence.ErrNotFound) {
		return application.ErrNotFound
	}
	return err
}

func toApplicationUser(model persistence.User) application.User {
	return application.User{
		ID:        model.ID,
		Email:     model.Email,
		Name:      model.Name,
		Initials:  model.Initials,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func toApplicationSession(model persistence.Session) application.Session {
	return application.Session{
		ID:        model.ID,
		UserID:    model.UserID,
		Token:     model.Token,
		ExpiresAt: model.ExpiresAt,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
		RevokedAt: cloneTime(model.RevokedAt),
	}
}

func toPersistenceSession(session application.Session) persistence.Session {
	return persistence.Session{
		ID:        session.ID,
		UserID:    session.UserID,
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.UpdatedAt,
		RevokedAt: cloneTime(session.RevokedAt),
	}
}

func toApplicationEventType(model persistence.EventType) application.EventType {
	return application.EventType{
		ID:              model.ID,
		Title:           model.Title,
		DurationMinutes: model.DurationMinutes,
		Category:        model.Category,
		Platform:        model.Platform,
		Availability:    model.Availability,
		Color:           model.Color,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}

func toPersistenceEventType(eventType application.EventType) persistence.EventType {
	return persistence.EventType{
		ID:              eventType.ID,
		Title:           eventType.Title,
		DurationMinutes: eventType.DurationMinutes,
		Category:        eventType.Category,
		Platform:        eventType.Platform,
		Availability:    eventType.Availability,
		Color:           eventType.Color,
		CreatedAt:       eventType.CreatedAt,
		UpdatedAt:       eventType.UpdatedAt,
	}
}

func cloneTime(value *time.Time) *time.Time {
	if value == nil {
		return nil
	}
	clone := *value
	return &clone
}
