package marketplace

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"

	"console/internal/domain/entity"
	"console/internal/domain/repository"
	"console/internal/errors"
)

type categoryRepository struct {
	client *Client
	logger *slog.Logger
}

// NewCategoryRepository creates the backend-backed category repository.
func NewCategoryRepository(client *Client, logger *slog.Logger) repository.CategoryRepository {
	return &categoryRepository{client: client, logger: logger}
}

func (r *categoryRepository) List(ctx context.Context) ([]entity.Category, error) {
	raw, err := r.client.get(ctx, "/admin/categories", nil)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Data []entity.Category `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, errors.Wrap(err, "malformed category listing")
	}
	if envelope.Data == nil {
		envelope.Data = []entity.Category{}
	}

	return envelope.Data, nil
}

func (r *categoryRepository) Create(ctx context.Context, input repository.CategoryInput) (*entity.Category, error) {
	raw, err := r.client.do(ctx, http.MethodPost, "/admin/categories", nil, input)
	if err != nil {
		return nil, err
	}

	return decodeData[entity.Category](raw)
}

func (r *categoryRepository) Update(ctx context.Context, id string, input repository.CategoryInput) (*entity.Category, error) {
	raw, err := r.client.do(ctx, http.MethodPatch, "/admin/categories/"+url.PathEscape(id), nil, input)
	if err != nil {
		return nil, err
	}

	return decodeData[entity.Category](raw)
}

func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.do(ctx, http.MethodDelete, "/admin/categories/"+url.PathEscape(id), nil, nil)

	return err
}
