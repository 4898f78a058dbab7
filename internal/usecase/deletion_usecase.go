package usecase

import (
	"context"

	"console/internal/domain/entity"
	"console/internal/listing"
)

// DeletionUsecase defines the interface for account deletion requests
type DeletionUsecase interface {
	// List loads the deletion request queue into the shared view
	List(ctx context.Context) (listing.Snapshot[entity.DeletionRequest], error)

	// Decide approves or rejects a pending deletion request. A decision
	// reason is required when rejecting.
	Decide(ctx context.Context, id string, action entity.DeletionAction, decisionReason string) (*entity.DeletionRequest, error)
}
