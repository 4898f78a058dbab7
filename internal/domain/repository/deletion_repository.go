package repository

import (
	"context"

	"console/internal/domain/entity"
)

// DeletionRepository manages account deletion requests.
type DeletionRepository interface {
	List(ctx context.Context) ([]entity.DeletionRequest, error)
	// Submit files a new deletion request on behalf of an admin.
	Submit(ctx context.Context, accountID string, accountType entity.AccountType, reason string) (*entity.DeletionRequest, error)
	// Decide resolves a pending request; decisionReason accompanies REJECT.
	Decide(ctx context.Context, id string, action entity.DeletionAction, decisionReason string) (*entity.DeletionRequest, error)
}
