package usecase

import (
	"context"

	"console/internal/domain/entity"
	"console/internal/domain/repository"
	"console/internal/listing"
)

// PaymentUsecase defines the interface for payment settlement
type PaymentUsecase interface {
	// List loads one page of payments into the shared view
	List(ctx context.Context, query repository.ListQuery) (listing.Snapshot[entity.Payment], error)

	// Get retrieves a single payment by ID
	Get(ctx context.Context, id string) (*entity.Payment, error)

	// SetStatus settles a pending payment as SUCCESS or FAILED
	SetStatus(ctx context.Context, id string, status entity.PaymentStatus) (*entity.Payment, error)
}
