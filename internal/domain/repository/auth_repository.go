package repository

import "context"

// AdminSignup carries the fields for creating a new admin account.
type AdminSignup struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Password  string `json:"password"`
	Role      string `json:"role"`
}

// AuthRepository proxies authentication calls to the backend. The console
// never verifies credentials itself; it forwards them and keeps the token.
type AuthRepository interface {
	// Login exchanges credentials for a bearer token.
	Login(ctx context.Context, email, password string) (token string, err error)
	// Register creates a new admin account (superadmin only).
	Register(ctx context.Context, signup AdminSignup) error
}
