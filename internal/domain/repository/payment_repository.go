package repository

import (
	"context"

	"console/internal/domain/entity"
)

// PaymentRepository reads payments and settles pending ones.
type PaymentRepository interface {
	List(ctx context.Context, query ListQuery) (*Page[entity.Payment], error)
	FindByID(ctx context.Context, id string) (*entity.Payment, error)
	UpdateStatus(ctx context.Context, id string, status entity.PaymentStatus) (*entity.Payment, error)
}
