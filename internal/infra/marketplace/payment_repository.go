package marketplace

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"console/internal/domain/entity"
	"console/internal/domain/repository"
)

type paymentRepository struct {
	client *Client
	logger *slog.Logger
}

// NewPaymentRepository creates the backend-backed payment repository.
func NewPaymentRepository(client *Client, logger *slog.Logger) repository.PaymentRepository {
	return &paymentRepository{client: client, logger: logger}
}

func (r *paymentRepository) List(ctx context.Context, query repository.ListQuery) (*repository.Page[entity.Payment], error) {
	raw, err := r.client.get(ctx, "/admin/payments", listValues(query))
	if err != nil {
		return nil, err
	}

	page := decodePage[entity.Payment](raw, query.Normalize(), r.logger)

	return &page, nil
}

func (r *paymentRepository) FindByID(ctx context.Context, id string) (*entity.Payment, error) {
	raw, err := r.client.get(ctx, "/admin/payments/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}

	return decodeData[entity.Payment](raw)
}

func (r *paymentRepository) UpdateStatus(ctx context.Context, id string, status entity.PaymentStatus) (*entity.Payment, error) {
	raw, err := r.client.do(ctx, http.MethodPatch, "/admin/payments/"+url.PathEscape(id)+"/status", nil,
		map[string]any{"status": status})
	if err != nil {
		return nil, err
	}

	return decodeData[entity.Payment](raw)
}
