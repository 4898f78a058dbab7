// Package marketplace is the typed client for the upstream marketplace
// REST API. Every repository in this package is a stateless view over one
// resource's routes; normalization of the backend's mixed response shapes
// happens here and nowhere above.
package marketplace

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"console/config"
	deliverycontext "console/internal/delivery/context"
	domainerrors "console/internal/domain/errors"
	"console/internal/domain/service"
	"console/internal/errors"
)

// maxResponseBytes bounds how much of an upstream body is read.
const maxResponseBytes = 4 << 20

// Client issues authenticated JSON requests against the backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    service.SessionStore
	logger     *slog.Logger
}

// NewClient creates the upstream client. The session store supplies the
// bearer token attached to every request.
func NewClient(cfg *config.Config, sessionStore service.SessionStore, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.Upstream.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Upstream.Timeout,
		},
		session: sessionStore,
		logger:  logger,
	}
}

// get issues a GET and returns the raw body.
func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

// do issues one request. Non-2xx answers become UpstreamError carrying the
// backend's {message} verbatim when it sent one.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	if token := c.token(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s failed", method, path)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errors.Wrapf(err, "read %s %s response", method, path)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, errors.WithStack(upstreamError(resp.StatusCode, raw))
	}

	return raw, nil
}

// token prefers the request's own session over the store so that a
// forwarded cookie wins while background work still has the held token.
func (c *Client) token(ctx context.Context) string {
	if session := deliverycontext.GetSession(ctx); session.State == service.SessionAuthenticated {
		return session.Token
	}

	return c.session.Token()
}

// upstreamError decodes the backend's error envelope.
func upstreamError(statusCode int, raw []byte) *domainerrors.UpstreamError {
	var envelope struct {
		Message string `json:"message"`
	}
	// A body without the envelope falls back to the generic message.
	_ = json.Unmarshal(raw, &envelope)

	return domainerrors.NewUpstreamError(statusCode, envelope.Message)
}

// decodeData unwraps the {data: T} detail envelope.
func decodeData[T any](raw []byte) (*T, error) {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, errors.Wrap(err, "malformed response envelope")
	}
	if len(envelope.Data) == 0 {
		return nil, errors.New("response envelope has no data")
	}

	out := new(T)
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return nil, errors.Wrap(err, "malformed response data")
	}

	return out, nil
}
