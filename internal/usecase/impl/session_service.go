package impl

import (
	"context"
	"log/slog"

	deliverycontext "console/internal/delivery/context"
	"console/internal/domain/repository"
	"console/internal/domain/service"
	"console/internal/errors"
	"console/internal/usecase"
)

type sessionService struct {
	auth   repository.AuthRepository
	store  service.SessionStore
	logger *slog.Logger
}

// NewSessionService creates a new console session service instance
func NewSessionService(auth repository.AuthRepository, store service.SessionStore, logger *slog.Logger) usecase.SessionUsecase {
	return &sessionService{auth: auth, store: store, logger: logger}
}

// Login exchanges credentials for a session held by the store
func (s *sessionService) Login(ctx context.Context, email, password string) (service.Session, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	token, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return service.Session{}, err
	}

	session := s.store.Update(token)
	if session.State != service.SessionAuthenticated {
		// The backend accepted the credentials but issued a token whose
		// claims do not decode.
		return service.Session{}, errors.New("login token is unusable")
	}

	logger.Info("session established",
		slog.String("email", session.Claims.Email),
		slog.String("role", string(session.Claims.Role)))

	return session, nil
}

// Logout drops the held session
func (s *sessionService) Logout(ctx context.Context) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	s.store.Clear()
	logger.Info("session cleared")
}

// Current returns the session as currently held
func (s *sessionService) Current(_ context.Context) service.Session {
	return s.store.Read()
}
