package service

import (
	"context"

	"employee_management/internal/domain"
	"employee_management/internal/session"
)

// UserStore is the persistence the services need for users
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindByID(ctx context.Context, id uint) (domain.User, error)
	Insert(ctx context.Context, user *domain.User) error
	UpdateProfile(ctx context.Context, id uint, role domain.Role, fullName, email string) error
	UpdatePasswordHash(ctx context.Context, id uint, hash string) error
	Delete(ctx context.Context, id uint, role domain.Role) error
	ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
	CountByRole(ctx context.Context, role domain.Role) (int64, error)
}

// LeaveStore is the persistence the services need for leave requests
type LeaveStore interface {
	Insert(ctx context.Context, leave *domain.LeaveRequest) error
	FindByID(ctx context.Context, id uint) (domain.LeaveRequest, error)
	UpdateStatus(ctx context.Context, id uint, status domain.LeaveStatus) error
	ListByEmployee(ctx context.Context, employeeID uint, limit int) ([]domain.LeaveRequest, error)
	ListAll(ctx context.Context) ([]domain.LeaveRequest, error)
	CountByStatus(ctx context.Context, employeeID *uint) (domain.StatusCounts, error)
}

// PasswordHasher hashes new passwords and verifies stored ones
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(stored, password string) error
	NeedsRehash(stored string) bool
}

// SessionIssuer starts and ends sessions
type SessionIssuer interface {
	Issue(ctx context.Context, p domain.Principal) (string, session.Session, error)
	Revoke(ctx context.Context, token string) error
	RevokeUser(ctx context.Context, userID uint) error
}
