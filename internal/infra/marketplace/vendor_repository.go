package marketplace

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"console/internal/domain/entity"
	"console/internal/domain/repository"
)

type vendorRepository struct {
	client *Client
	logger *slog.Logger
}

// NewVendorRepository creates the backend-backed vendor repository.
func NewVendorRepository(client *Client, logger *slog.Logger) repository.VendorRepository {
	return &vendorRepository{client: client, logger: logger}
}

func (r *vendorRepository) List(ctx context.Context, query repository.ListQuery) (*repository.Page[entity.Vendor], error) {
	raw, err := r.client.get(ctx, "/admin/vendors", listValues(query))
	if err != nil {
		return nil, err
	}

	page := decodePage[entity.Vendor](raw, query.Normalize(), r.logger)

	return &page, nil
}

func (r *vendorRepository) FindByID(ctx context.Context, id string) (*entity.Vendor, error) {
	raw, err := r.client.get(ctx, "/admin/vendors/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}

	return decodeData[entity.Vendor](raw)
}

func (r *vendorRepository) Verify(ctx context.Context, id string, status entity.VerificationStatus, rejectionReason string) (*entity.Vendor, error) {
	// The verify route lives outside the /admin prefix upstream.
	body := map[string]any{"verificationStatus": status}
	if rejectionReason != "" {
		body["rejectionReason"] = rejectionReason
	}

	raw, err := r.client.do(ctx, http.MethodPatch, "/vendors/"+url.PathEscape(id)+"/verify", nil, body)
	if err != nil {
		return nil, err
	}

	return decodeData[entity.Vendor](raw)
}
