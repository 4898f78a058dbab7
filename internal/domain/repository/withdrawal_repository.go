package repository

import (
	"context"

	"console/internal/domain/entity"
)

// WithdrawalRepository reads payout requests and submits decisions.
type WithdrawalRepository interface {
	List(ctx context.Context, query ListQuery) (*Page[entity.Withdrawal], error)
	UpdateStatus(ctx context.Context, id string, status entity.ApprovalStatus) (*entity.Withdrawal, error)
}
