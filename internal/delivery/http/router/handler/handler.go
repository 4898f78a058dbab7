// Package handler contains the HTTP handlers for the console.
package handler

import (
	"strconv"

	"console/internal/domain/repository"
	"console/internal/listing"

	"github.com/labstack/echo/v4"
)

// listData is the wire shape of one listing page.
type listData[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

func listPayload[T any](snapshot listing.Snapshot[T]) listData[T] {
	return listData[T]{
		Items:      snapshot.Items,
		Total:      snapshot.Total,
		Page:       snapshot.Page,
		Limit:      snapshot.Limit,
		TotalPages: snapshot.TotalPages,
	}
}

// listQuery reads the pagination parameters from the request.
func listQuery(c echo.Context) repository.ListQuery {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	return repository.ListQuery{
		Page:   page,
		Limit:  limit,
		Search: c.QueryParam("search"),
	}.Normalize()
}
