package impl

import (
	"context"
	"log/slog"
	"strings"

	"console/config"
	"console/internal/action"
	deliverycontext "console/internal/delivery/context"
	"console/internal/domain/entity"
	domainerrors "console/internal/domain/errors"
	"console/internal/domain/repository"
	"console/internal/errors"
	"console/internal/listing"
	"console/internal/usecase"
)

type vendorService struct {
	vendors      repository.VendorRepository
	deletions    repository.DeletionRepository
	feed         *listing.Feed[entity.Vendor]
	dispatcher   *action.Dispatcher[entity.Vendor]
	defaultLimit int
	logger       *slog.Logger
}

// NewVendorService creates a new vendor verification service instance
func NewVendorService(
	vendors repository.VendorRepository,
	deletions repository.DeletionRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.VendorUsecase {
	feed := listing.NewFeed(vendors.List, func(v entity.Vendor) string { return v.ID }, logger)

	return &vendorService{
		vendors:      vendors,
		deletions:    deletions,
		feed:         feed,
		dispatcher:   action.NewDispatcher(feed, logger),
		defaultLimit: cfg.Listing.DefaultLimit,
		logger:       logger,
	}
}

func (s *vendorService) List(ctx context.Context, query repository.ListQuery) (listing.Snapshot[entity.Vendor], error) {
	if query.Limit == 0 {
		query.Limit = s.defaultLimit
	}

	return s.feed.Load(ctx, query)
}

func (s *vendorService) Get(ctx context.Context, id string) (*entity.Vendor, error) {
	return s.vendors.FindByID(ctx, id)
}

// Approve verifies a vendor awaiting a decision
func (s *vendorService) Approve(ctx context.Context, id string) (*entity.Vendor, error) {
	return s.verify(ctx, id, entity.VerificationApproved, "")
}

// Reject declines a vendor awaiting a decision
func (s *vendorService) Reject(ctx context.Context, id, reason string) (*entity.Vendor, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, errors.WithStack(domainerrors.ErrReasonRequired)
	}

	return s.verify(ctx, id, entity.VerificationRejected, reason)
}

func (s *vendorService) verify(ctx context.Context, id string, status entity.VerificationStatus, reason string) (*entity.Vendor, error) {
	// Decisions only apply to vendors still awaiting one. The check runs
	// against the displayed row before anything leaves the process.
	if current, known := s.feed.Find(id); known && !current.VerificationStatus.CanDecide() {
		return nil, errors.WithStack(domainerrors.ErrInvalidTransition)
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	vendor, err := s.dispatcher.Do(ctx, id, func(ctx context.Context) (*entity.Vendor, error) {
		return s.vendors.Verify(ctx, id, status, reason)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("vendor verification decided",
		slog.String("vendor_id", id),
		slog.String("status", string(status)))

	return vendor, nil
}

// RequestDeletion files an account deletion request for the vendor
func (s *vendorService) RequestDeletion(ctx context.Context, id, reason string) (*entity.DeletionRequest, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, errors.WithStack(domainerrors.ErrReasonRequired)
	}

	var request *entity.DeletionRequest
	_, err := s.dispatcher.Do(ctx, id, func(ctx context.Context) (*entity.Vendor, error) {
		submitted, err := s.deletions.Submit(ctx, id, entity.AccountTypeVendor, reason)
		if err != nil {
			return nil, err
		}
		request = submitted

		return nil, nil
	})
	if err != nil {
		return nil, err
	}

	return request, nil
}
