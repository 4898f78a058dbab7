package marketplace

import (
	"context"
	"log/slog"
	"net/http"

	"console/internal/domain/repository"
	"console/internal/errors"
)

type authRepository struct {
	client *Client
	logger *slog.Logger
}

// NewAuthRepository creates the backend-backed auth repository.
func NewAuthRepository(client *Client, logger *slog.Logger) repository.AuthRepository {
	return &authRepository{client: client, logger: logger}
}

func (r *authRepository) Login(ctx context.Context, email, password string) (string, error) {
	raw, err := r.client.do(ctx, http.MethodPost, "/auth/login", nil, map[string]any{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return "", err
	}

	data, err := decodeData[struct {
		Token string `json:"token"`
	}](raw)
	if err != nil {
		return "", err
	}
	if data.Token == "" {
		return "", errors.New("login response carried no token")
	}

	return data.Token, nil
}

func (r *authRepository) Register(ctx context.Context, signup repository.AdminSignup) error {
	_, err := r.client.do(ctx, http.MethodPost, "/auth/register", nil, signup)

	return err
}
