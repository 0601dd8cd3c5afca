// Package authz decides whether a principal may run a role-gated operation.
package authz

import (
	"errors"
	"fmt"

	"employee_management/internal/domain"
)

var (
	// ErrUnauthenticated is returned when no principal is present
	ErrUnauthenticated = errors.New("authentication required")
	// ErrForbidden is returned when the principal lacks the required role
	ErrForbidden = errors.New("access denied")
)

// RequireRole allows the operation only for a principal holding exactly required.
// Roles are disjoint capability sets, so an Admin does not pass an Employee gate.
func RequireRole(p *domain.Principal, required domain.Role) error {
	if p == nil {
		return ErrUnauthenticated
	}
	switch required {
	case domain.RoleAdmin, domain.RoleEmployee:
	default:
		return fmt.Errorf("%w: unknown required role %q", ErrForbidden, required)
	}
	switch p.Role {
	case domain.RoleAdmin, domain.RoleEmployee:
		if p.Role == required {
			return nil
		}
		return ErrForbidden
	default:
		return ErrForbidden
	}
}
