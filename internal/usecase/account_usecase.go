package usecase

import "context"

// AdminSignupInput carries the fields for creating a new admin account
type AdminSignupInput struct {
	FirstName       string `json:"firstName" validate:"required"`
	LastName        string `json:"lastName" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// AccountUsecase defines the interface for console staff accounts
type AccountUsecase interface {
	// CreateAdmin registers a new admin account. The password and its
	// confirmation must match. Only a superadmin may call this.
	CreateAdmin(ctx context.Context, input AdminSignupInput) error
}
