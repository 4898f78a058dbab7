package usecase

import (
	"context"

	"console/internal/domain/entity"
	"console/internal/domain/repository"
	"console/internal/listing"
)

// WithdrawalUsecase defines the interface for vendor payout decisions
type WithdrawalUsecase interface {
	// List loads one page of withdrawal requests into the shared view
	List(ctx context.Context, query repository.ListQuery) (listing.Snapshot[entity.Withdrawal], error)

	// Decide approves or rejects a pending withdrawal request
	Decide(ctx context.Context, id string, status entity.ApprovalStatus) (*entity.Withdrawal, error)
}
