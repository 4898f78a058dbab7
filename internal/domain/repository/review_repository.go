package repository

import (
	"context"

	"console/internal/domain/entity"
)

// ReviewRepository reads the moderation queue and submits decisions.
type ReviewRepository interface {
	ListModeration(ctx context.Context) (*Page[entity.Review], error)
	Moderate(ctx context.Context, id string, status entity.ApprovalStatus) (*entity.Review, error)
}
