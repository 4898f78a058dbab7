package middleware

import (
	"net/http"
	"time"

	"console/config"
	deliverycontext "console/internal/delivery/context"
	domainerrors "console/internal/domain/errors"
	"console/internal/domain/service"
	"console/internal/errors"

	"github.com/labstack/echo/v4"
)

// SessionMiddleware resolves the operator's session from the console
// cookie. The token is decoded without signature verification; the backend
// remains the trust boundary on every forwarded call.
type SessionMiddleware struct {
	reader service.TokenReader
	cfg    *config.Config
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(reader service.TokenReader, cfg *config.Config) *SessionMiddleware {
	return &SessionMiddleware{reader: reader, cfg: cfg}
}

// Resolve decodes the session cookie into the request context. An expired
// or malformed cookie reads as anonymous and is cleared from the client.
func (m *SessionMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session := service.Session{State: service.SessionAnonymous}

		if cookie, err := c.Cookie(m.cfg.Session.CookieName); err == nil && cookie.Value != "" {
			claims, err := m.reader.Read(cookie.Value)
			if err != nil {
				m.clearCookie(c)
			} else {
				session = service.Session{
					State:  service.SessionAuthenticated,
					Token:  cookie.Value,
					Claims: claims,
				}
			}
		}

		ctx := deliverycontext.WithSession(c.Request().Context(), session)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireAuth rejects anonymous requests. It must run after Resolve.
func (m *SessionMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session := deliverycontext.GetSession(c.Request().Context())
		if session.State != service.SessionAuthenticated || session.Claims == nil {
			return errors.WithStack(domainerrors.ErrUnauthenticated)
		}
		if !session.Claims.Role.IsStaff() {
			return errors.WithStack(domainerrors.ErrForbidden)
		}

		return next(c)
	}
}

// RequireSuperAdmin limits a route to the superadmin role. It must run
// after RequireAuth.
func (m *SessionMiddleware) RequireSuperAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session := deliverycontext.GetSession(c.Request().Context())
		if session.Claims == nil || !session.Claims.Role.IsSuperAdmin() {
			return errors.WithStack(domainerrors.ErrForbidden)
		}

		return next(c)
	}
}

// SetSessionCookie writes the login token as an HTTP-only cookie.
func (m *SessionMiddleware) SetSessionCookie(c echo.Context, token string, expires time.Time) {
	c.SetCookie(&http.Cookie{
		Name:     m.cfg.Session.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   m.cfg.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie drops the console cookie from the client.
func (m *SessionMiddleware) ClearSessionCookie(c echo.Context) {
	m.clearCookie(c)
}

func (m *SessionMiddleware) clearCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     m.cfg.Session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.cfg.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
