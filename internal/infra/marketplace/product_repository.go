package marketplace

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"console/internal/domain/entity"
	"console/internal/domain/repository"
)

type productRepository struct {
	client *Client
	logger *slog.Logger
}

// NewProductRepository creates the backend-backed product repository.
func NewProductRepository(client *Client, logger *slog.Logger) repository.ProductRepository {
	return &productRepository{client: client, logger: logger}
}

func (r *productRepository) List(ctx context.Context, query repository.ListQuery) (*repository.Page[entity.Product], error) {
	raw, err := r.client.get(ctx, "/admin/products", listValues(query))
	if err != nil {
		return nil, err
	}

	page := decodePage[entity.Product](raw, query.Normalize(), r.logger)

	return &page, nil
}

func (r *productRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	raw, err := r.client.get(ctx, "/admin/products/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}

	return decodeData[entity.Product](raw)
}

func (r *productRepository) Approve(ctx context.Context, id string, status entity.ApprovalStatus) (*entity.Product, error) {
	raw, err := r.client.do(ctx, http.MethodPatch, "/admin/products/"+url.PathEscape(id)+"/approve", nil,
		map[string]any{"approvalStatus": status})
	if err != nil {
		return nil, err
	}

	return decodeData[entity.Product](raw)
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.do(ctx, http.MethodDelete, "/admin/products/"+url.PathEscape(id), nil, nil)

	return err
}
