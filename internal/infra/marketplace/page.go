package marketplace

import (
	"encoding/json"
	"log/slog"
	"math"
	"net/url"
	"strconv"

	"console/internal/domain/repository"
)

// listEnvelope accepts every pagination shape the backend uses. Flat
// fields ({data,total,page,limit}), a nested pagination object, and the
// withdrawals route's totalWithdrawals alias all land here.
type listEnvelope struct {
	Data             json.RawMessage `json:"data"`
	Total            *int            `json:"total"`
	TotalWithdrawals *int            `json:"totalWithdrawals"`
	Page             *int            `json:"page"`
	Limit            *int            `json:"limit"`
	Pagination       *struct {
		Total      int `json:"total"`
		Page       int `json:"page"`
		Limit      int `json:"limit"`
		TotalPages int `json:"totalPages"`
	} `json:"pagination"`
}

// decodePage normalizes a list response into Page[T]. A body that does not
// decode is logged and reported as an empty page rather than an error so
// that one odd record batch never blanks the whole console view.
func decodePage[T any](raw []byte, query repository.ListQuery, logger *slog.Logger) repository.Page[T] {
	empty := repository.Page[T]{Items: []T{}, Page: query.Page, Limit: query.Limit}

	var envelope listEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		logger.Warn("malformed list envelope", slog.Any("error", err))

		return empty
	}

	var items []T
	if len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, &items); err != nil {
			logger.Warn("malformed list items", slog.Any("error", err))

			return empty
		}
	}
	if items == nil {
		items = []T{}
	}

	page := repository.Page[T]{
		Items: items,
		Total: len(items),
		Page:  query.Page,
		Limit: query.Limit,
	}

	switch {
	case envelope.Pagination != nil:
		page.Total = envelope.Pagination.Total
		page.Page = envelope.Pagination.Page
		page.Limit = envelope.Pagination.Limit
		page.TotalPages = envelope.Pagination.TotalPages
	case envelope.Total != nil:
		page.Total = *envelope.Total
	case envelope.TotalWithdrawals != nil:
		page.Total = *envelope.TotalWithdrawals
	}
	if envelope.Page != nil {
		page.Page = *envelope.Page
	}
	if envelope.Limit != nil {
		page.Limit = *envelope.Limit
	}

	if page.TotalPages == 0 && page.Limit > 0 {
		page.TotalPages = int(math.Ceil(float64(page.Total) / float64(page.Limit)))
	}

	return page
}

// listValues turns a query into the backend's pagination parameters.
func listValues(query repository.ListQuery) url.Values {
	query = query.Normalize()

	values := url.Values{}
	values.Set("page", strconv.Itoa(query.Page))
	if query.Limit > 0 {
		values.Set("limit", strconv.Itoa(query.Limit))
	}
	if query.Search != "" {
		values.Set("search", query.Search)
	}

	return values
}
