package usecase

import (
	"context"

	"console/internal/domain/entity"
	"console/internal/domain/repository"
	"console/internal/listing"
)

// VendorUsecase defines the interface for vendor verification workflows
type VendorUsecase interface {
	// List loads one page of vendors into the shared view
	List(ctx context.Context, query repository.ListQuery) (listing.Snapshot[entity.Vendor], error)

	// Get retrieves a single vendor by ID
	Get(ctx context.Context, id string) (*entity.Vendor, error)

	// Approve verifies a vendor awaiting a decision
	Approve(ctx context.Context, id string) (*entity.Vendor, error)

	// Reject declines a vendor awaiting a decision. The rejection
	// reason must be non-empty.
	Reject(ctx context.Context, id, reason string) (*entity.Vendor, error)

	// RequestDeletion files an account deletion request for the vendor.
	// The reason must be non-empty.
	RequestDeletion(ctx context.Context, id, reason string) (*entity.DeletionRequest, error)
}
