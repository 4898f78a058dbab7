package entity

import "time"

// UserStatus is the account status an admin can toggle.
type UserStatus string

const (
	UserActive    UserStatus = "ACTIVE"
	UserSuspended UserStatus = "SUSPENDED"
)

// IsValid checks if the UserStatus is a valid value.
func (s UserStatus) IsValid() bool {
	return s == UserActive || s == UserSuspended
}

// User is a marketplace account as the backend reports it. Suspend and
// activate are allowed from any state; accounts are never created or hard
// deleted from the console (deletion goes through a DeletionRequest).
type User struct {
	ID              string     `json:"_id"`
	FirstName       string     `json:"firstName"`
	LastName        string     `json:"lastName"`
	Email           string     `json:"email"`
	Phone           string     `json:"phone,omitempty"`
	Role            Role       `json:"role"`
	Status          UserStatus `json:"status"`
	IsEmailVerified bool       `json:"isEmailVerified"`
	IsPhoneVerified bool       `json:"isPhoneVerified"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}
