package domain

import "fmt"

// Role is the closed set of capability domains a user can hold
type Role string

const (
	RoleAdmin    Role = "Admin"    // Manages employees and decides leave requests
	RoleEmployee Role = "Employee" // Applies for leave and views own requests
)

// ParseRole converts a stored or signed role string into a Role
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleEmployee:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

// Home returns the landing area for a role
func (r Role) Home() string {
	switch r {
	case RoleAdmin:
		return "/admin"
	case RoleEmployee:
		return "/employee"
	default:
		return "/login"
	}
}
