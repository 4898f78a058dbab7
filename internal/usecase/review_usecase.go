package usecase

import (
	"context"

	"console/internal/domain/entity"
	"console/internal/listing"
)

// ReviewUsecase defines the interface for review moderation
type ReviewUsecase interface {
	// ListModeration loads the moderation queue into the shared view
	ListModeration(ctx context.Context) (listing.Snapshot[entity.Review], error)

	// Moderate approves or rejects a pending review
	Moderate(ctx context.Context, id string, status entity.ApprovalStatus) (*entity.Review, error)
}
