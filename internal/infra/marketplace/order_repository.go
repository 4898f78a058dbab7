package marketplace

import (
	"context"
	"log/slog"
	"net/url"

	"console/internal/domain/entity"
	"console/internal/domain/repository"
)

type orderRepository struct {
	client *Client
	logger *slog.Logger
}

// NewOrderRepository creates the backend-backed order repository. Orders
// are read only from the console.
func NewOrderRepository(client *Client, logger *slog.Logger) repository.OrderRepository {
	return &orderRepository{client: client, logger: logger}
}

func (r *orderRepository) List(ctx context.Context, query repository.ListQuery) (*repository.Page[entity.Order], error) {
	raw, err := r.client.get(ctx, "/admin/orders", listValues(query))
	if err != nil {
		return nil, err
	}

	page := decodePage[entity.Order](raw, query.Normalize(), r.logger)

	return &page, nil
}

func (r *orderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	raw, err := r.client.get(ctx, "/admin/orders/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}

	return decodeData[entity.Order](raw)
}
