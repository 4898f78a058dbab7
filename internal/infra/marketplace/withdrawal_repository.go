package marketplace

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"console/internal/domain/entity"
	"console/internal/domain/repository"
)

type withdrawalRepository struct {
	client *Client
	logger *slog.Logger
}

// NewWithdrawalRepository creates the backend-backed withdrawal repository.
func NewWithdrawalRepository(client *Client, logger *slog.Logger) repository.WithdrawalRepository {
	return &withdrawalRepository{client: client, logger: logger}
}

func (r *withdrawalRepository) List(ctx context.Context, query repository.ListQuery) (*repository.Page[entity.Withdrawal], error) {
	raw, err := r.client.get(ctx, "/admin/withdrawals", listValues(query))
	if err != nil {
		return nil, err
	}

	page := decodePage[entity.Withdrawal](raw, query.Normalize(), r.logger)

	return &page, nil
}

func (r *withdrawalRepository) UpdateStatus(ctx context.Context, id string, status entity.ApprovalStatus) (*entity.Withdrawal, error) {
	raw, err := r.client.do(ctx, http.MethodPatch, "/admin/withdrawals/"+url.PathEscape(id)+"/status", nil,
		map[string]any{"status": status})
	if err != nil {
		return nil, err
	}

	return decodeData[entity.Withdrawal](raw)
}
