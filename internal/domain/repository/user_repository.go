package repository

import (
	"context"

	"console/internal/domain/entity"
)

// UserRepository reads and mutates marketplace user accounts.
type UserRepository interface {
	List(ctx context.Context, query ListQuery) (*Page[entity.User], error)
	FindByID(ctx context.Context, id string) (*entity.User, error)
	UpdateStatus(ctx context.Context, id string, status entity.UserStatus) (*entity.User, error)
}
