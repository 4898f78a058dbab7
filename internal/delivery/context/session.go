package context

import (
	"context"

	"console/internal/domain/service"
)

// WithSession returns a new context carrying the request's session.
func WithSession(ctx context.Context, session service.Session) context.Context {
	return context.WithValue(ctx, KeySession, session)
}

// GetSession extracts the session from context.Context. A missing session
// reads as Unknown, the pre-inspection state.
func GetSession(ctx context.Context) service.Session {
	if session, ok := ctx.Value(KeySession).(service.Session); ok {
		return session
	}

	return service.Session{State: service.SessionUnknown}
}
