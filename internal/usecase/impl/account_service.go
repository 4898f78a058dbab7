package impl

import (
	"context"
	"log/slog"

	deliverycontext "console/internal/delivery/context"
	"console/internal/domain/entity"
	domainerrors "console/internal/domain/errors"
	"console/internal/domain/repository"
	"console/internal/errors"
	"console/internal/usecase"
)

type accountService struct {
	auth   repository.AuthRepository
	logger *slog.Logger
}

// NewAccountService creates a new staff account service instance
func NewAccountService(auth repository.AuthRepository, logger *slog.Logger) usecase.AccountUsecase {
	return &accountService{auth: auth, logger: logger}
}

// CreateAdmin registers a new admin account
func (s *accountService) CreateAdmin(ctx context.Context, input usecase.AdminSignupInput) error {
	if input.Password != input.ConfirmPassword {
		return errors.WithStack(domainerrors.ErrPasswordMismatch)
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	err := s.auth.Register(ctx, repository.AdminSignup{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
		Password:  input.Password,
		Role:      string(entity.RoleAdmin),
	})
	if err != nil {
		return err
	}

	logger.Info("admin account created", slog.String("email", input.Email))

	return nil
}
