package marketplace

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"console/internal/domain/entity"
	"console/internal/domain/repository"
)

type userRepository struct {
	client *Client
	logger *slog.Logger
}

// NewUserRepository creates the backend-backed user repository.
func NewUserRepository(client *Client, logger *slog.Logger) repository.UserRepository {
	return &userRepository{client: client, logger: logger}
}

func (r *userRepository) List(ctx context.Context, query repository.ListQuery) (*repository.Page[entity.User], error) {
	raw, err := r.client.get(ctx, "/admin/users", listValues(query))
	if err != nil {
		return nil, err
	}

	page := decodePage[entity.User](raw, query.Normalize(), r.logger)

	return &page, nil
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	raw, err := r.client.get(ctx, "/admin/users/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}

	return decodeData[entity.User](raw)
}

func (r *userRepository) UpdateStatus(ctx context.Context, id string, status entity.UserStatus) (*entity.User, error) {
	raw, err := r.client.do(ctx, http.MethodPatch, "/admin/users/"+url.PathEscape(id)+"/status", nil,
		map[string]any{"status": status})
	if err != nil {
		return nil, err
	}

	return decodeData[entity.User](raw)
}
