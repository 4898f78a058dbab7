// Package entity contains the core business objects of the console,
// mirrored from the marketplace backend's records.
package entity

import "slices"

// Role represents the role carried in a marketplace account's token claims.
type Role string

const (
	// RoleCustomer indicates a regular marketplace customer.
	RoleCustomer Role = "CUSTOMER"
	// RoleVendor indicates a selling vendor account.
	RoleVendor Role = "VENDOR"
	// RoleAdmin indicates a console administrator.
	RoleAdmin Role = "ADMIN"
	// RoleSuperAdmin indicates an administrator who may create other admins
	// and decide account deletion requests.
	RoleSuperAdmin Role = "SUPERADMIN"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleVendor, RoleAdmin, RoleSuperAdmin:
		return true
	default:
		return false
	}
}

// IsStaff reports whether the role grants access to the console at all.
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// IsSuperAdmin reports whether the role may create admins and decide
// account deletion requests.
func (r Role) IsSuperAdmin() bool {
	return r == RoleSuperAdmin
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
