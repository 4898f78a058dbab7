package marketplace

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"console/config"
	deliverycontext "console/internal/delivery/context"
	domainerrors "console/internal/domain/errors"
	"console/internal/domain/service"
	"console/internal/errors"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubSessionStore struct {
	token string
}

func (s *stubSessionStore) Read() service.Session {
	if s.token == "" {
		return service.Session{State: service.SessionAnonymous}
	}

	return service.Session{State: service.SessionAuthenticated, Token: s.token}
}

func (s *stubSessionStore) Update(token string) service.Session {
	s.token = token

	return s.Read()
}

func (s *stubSessionStore) Clear() { s.token = "" }

func (s *stubSessionStore) Subscribe() (<-chan service.Session, func()) {
	ch := make(chan service.Session)

	return ch, func() {}
}

func (s *stubSessionStore) Token() string { return s.token }

func newTestClient(t *testing.T, baseURL, token string) *Client {
	t.Helper()

	cfg := &config.Config{}
	cfg.Upstream.BaseURL = baseURL

	return NewClient(cfg, &stubSessionStore{token: token}, discardLogger())
}

func TestClient_AttachesBearerTokenAndRequestID(t *testing.T) {
	t.Parallel()

	var gotAuth, gotRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get(deliverycontext.HeaderXRequestID)
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, "held-token")

	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")
	_, err := client.get(ctx, "/admin/users", nil)
	require.NoError(t, err)

	assert.Equal(t, "Bearer held-token", gotAuth)
	assert.Equal(t, "req-42", gotRequestID)
}

func TestClient_PrefersRequestSessionToken(t *testing.T) {
	t.Parallel()

	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, "held-token")

	ctx := deliverycontext.WithSession(context.Background(), service.Session{
		State: service.SessionAuthenticated,
		Token: "request-token",
	})
	_, err := client.get(ctx, "/admin/users", nil)
	require.NoError(t, err)

	assert.Equal(t, "Bearer request-token", gotAuth)
}

func TestClient_SurfacesUpstreamMessageVerbatim(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"vendor already verified"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, "")

	_, err := client.get(context.Background(), "/admin/vendors/v1", nil)
	require.Error(t, err)

	var upstream *domainerrors.UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, http.StatusConflict, upstream.HTTPCode())
	assert.Equal(t, "vendor already verified", upstream.Message())
}

func TestClient_UpstreamErrorWithoutEnvelope(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, "")

	_, err := client.get(context.Background(), "/admin/orders", nil)
	require.Error(t, err)

	var upstream *domainerrors.UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, http.StatusInternalServerError, upstream.HTTPCode())
	assert.NotEmpty(t, upstream.Message())
}

func TestClient_EncodesJSONBody(t *testing.T) {
	t.Parallel()

	var gotBody map[string]any
	var gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"data":{}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, "")

	_, err := client.do(context.Background(), http.MethodPost, "/auth/login", nil,
		map[string]any{"email": "ops@example.com", "password": "secret"})
	require.NoError(t, err)

	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "ops@example.com", gotBody["email"])
}
