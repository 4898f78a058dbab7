package usecase

import (
	"context"

	"console/internal/domain/service"
)

// SessionUsecase defines the interface for the console login session
type SessionUsecase interface {
	// Login exchanges credentials for a session held by the store
	Login(ctx context.Context, email, password string) (service.Session, error)

	// Logout drops the held session
	Logout(ctx context.Context)

	// Current returns the session as currently held
	Current(ctx context.Context) service.Session
}
