package repository

import (
	"context"

	"console/internal/domain/entity"
)

// VendorRepository reads vendors and submits verification decisions.
type VendorRepository interface {
	List(ctx context.Context, query ListQuery) (*Page[entity.Vendor], error)
	FindByID(ctx context.Context, id string) (*entity.Vendor, error)
	// Verify sets the verification status; rejectionReason accompanies
	// REJECTED decisions and is empty otherwise.
	Verify(ctx context.Context, id string, status entity.VerificationStatus, rejectionReason string) (*entity.Vendor, error)
}
