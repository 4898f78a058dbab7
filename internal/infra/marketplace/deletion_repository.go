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

type deletionRepository struct {
	client *Client
	logger *slog.Logger
}

// NewDeletionRepository creates the backend-backed account-deletion
// repository.
func NewDeletionRepository(client *Client, logger *slog.Logger) repository.DeletionRepository {
	return &deletionRepository{client: client, logger: logger}
}

func (r *deletionRepository) List(ctx context.Context) ([]entity.DeletionRequest, error) {
	raw, err := r.client.get(ctx, "/deletion", nil)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Data []entity.DeletionRequest `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, errors.Wrap(err, "malformed deletion listing")
	}
	if envelope.Data == nil {
		envelope.Data = []entity.DeletionRequest{}
	}

	return envelope.Data, nil
}

func (r *deletionRepository) Submit(ctx context.Context, accountID string, accountType entity.AccountType, reason string) (*entity.DeletionRequest, error) {
	raw, err := r.client.do(ctx, http.MethodPost, "/deletion/admin-submit", nil, map[string]any{
		"accountId":   accountID,
		"accountType": accountType,
		"reason":      reason,
	})
	if err != nil {
		return nil, err
	}

	return decodeData[entity.DeletionRequest](raw)
}

func (r *deletionRepository) Decide(ctx context.Context, id string, action entity.DeletionAction, decisionReason string) (*entity.DeletionRequest, error) {
	body := map[string]any{"action": action}
	if decisionReason != "" {
		body["decisionReason"] = decisionReason
	}

	raw, err := r.client.do(ctx, http.MethodPost, "/deletion/"+url.PathEscape(id)+"/handle", nil, body)
	if err != nil {
		return nil, err
	}

	return decodeData[entity.DeletionRequest](raw)
}
