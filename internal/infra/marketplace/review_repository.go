package marketplace

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"console/internal/domain/entity"
	"console/internal/domain/repository"
)

type reviewRepository struct {
	client *Client
	logger *slog.Logger
}

// NewReviewRepository creates the backend-backed review repository.
func NewReviewRepository(client *Client, logger *slog.Logger) repository.ReviewRepository {
	return &reviewRepository{client: client, logger: logger}
}

// ListModeration fetches the full moderation queue. The backend does not
// paginate this route, so the result is normalized into a single page.
func (r *reviewRepository) ListModeration(ctx context.Context) (*repository.Page[entity.Review], error) {
	raw, err := r.client.get(ctx, "/admin/reviews/moderation", nil)
	if err != nil {
		return nil, err
	}

	page := decodePage[entity.Review](raw, repository.ListQuery{Page: 1}, r.logger)
	page.TotalPages = 1

	return &page, nil
}

func (r *reviewRepository) Moderate(ctx context.Context, id string, status entity.ApprovalStatus) (*entity.Review, error) {
	raw, err := r.client.do(ctx, http.MethodPatch, "/admin/reviews/"+url.PathEscape(id)+"/moderate", nil,
		map[string]any{"status": status})
	if err != nil {
		return nil, err
	}

	return decodeData[entity.Review](raw)
}
