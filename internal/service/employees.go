package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"employee_management/internal/authz"
	"employee_management/internal/domain"
	"employee_management/internal/security"
	"employee_management/internal/store"

	"github.com/sirupsen/logrus"
)

// NewEmployee is the input of EmployeeService.Create
type NewEmployee struct {
	FullName string
	Email    string
	Password string
}

// EmployeeProfile holds the fields an administrator may edit
type EmployeeProfile struct {
	FullName string
	Email    string
}

// EmployeeService lets administrators manage the employee directory
type EmployeeService struct {
	users    UserStore
	hasher   PasswordHasher
	sessions SessionIssuer
	now      func() time.Time
}

// NewEmployeeService wires an EmployeeService
func NewEmployeeService(users UserStore, hasher PasswordHasher, sessions SessionIssuer) *EmployeeService {
	return &EmployeeService{users: users, hasher: hasher, sessions: sessions, now: time.Now}
}

// List returns every employee
func (s *EmployeeService) List(ctx context.Context, p *domain.Principal) ([]domain.User, error) {
	if err := authz.RequireRole(p, domain.RoleAdmin); err != nil {
		return nil, err
	}
	return s.users.ListByRole(ctx, domain.RoleEmployee)
}

// Create adds an employee. The role is always Employee.
func (s *EmployeeService) Create(ctx context.Context, p *domain.Principal, in NewEmployee) (domain.User, error) {
	if err := authz.RequireRole(p, domain.RoleAdmin); err != nil {
		return domain.User{}, err
	}
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = domain.NormalizeEmail(in.Email)
	if err := checkText("full_name", "Full name", in.FullName, 120); err != nil {
		return domain.User{}, err
	}
	if err := checkEmail(in.Email); err != nil {
		return domain.User{}, err
	}
	if in.Password == "" {
		return domain.User{}, invalid("password", "Password is required")
	}

	hash, err := s.hasher.Hash(in.Password)
	if errors.Is(err, security.ErrPasswordTooLong) {
		return domain.User{}, invalid("password", "Password is too long")
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("hashing password: %w", err)
	}
	user := domain.User{
		FullName:     in.FullName,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         domain.RoleEmployee,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.users.Insert(ctx, &user); err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			return domain.User{}, invalid("email", "Email already exists")
		}
		return domain.User{}, err
	}
	logrus.WithFields(logrus.Fields{"admin_id": p.UserID, "employee_id": user.ID}).Info("Employee created")
	return user, nil
}

// Edit updates the name and email of an employee. Administrators cannot be edited here.
func (s *EmployeeService) Edit(ctx context.Context, p *domain.Principal, id uint, in EmployeeProfile) (domain.User, error) {
	if err := authz.RequireRole(p, domain.RoleAdmin); err != nil {
		return domain.User{}, err
	}
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = domain.NormalizeEmail(in.Email)
	if err := checkText("full_name", "Full name", in.FullName, 120); err != nil {
		return domain.User{}, err
	}
	if err := checkEmail(in.Email); err != nil {
		return domain.User{}, err
	}

	switch err := s.users.UpdateProfile(ctx, id, domain.RoleEmployee, in.FullName, in.Email); {
	case errors.Is(err, store.ErrNotFound):
		return domain.User{}, ErrNotFound
	case errors.Is(err, store.ErrEmailTaken):
		return domain.User{}, invalid("email", "Email already exists")
	case err != nil:
		return domain.User{}, err
	}

	user, err := s.users.FindByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrNotFound
	}
	return user, err
}

// Delete removes an employee and ends their sessions. Addressing a missing
// user or an administrator changes nothing and reports ErrNotFound.
func (s *EmployeeService) Delete(ctx context.Context, p *domain.Principal, id uint) error {
	if err := authz.RequireRole(p, domain.RoleAdmin); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, id, domain.RoleEmployee); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	entry := logrus.WithFields(logrus.Fields{"admin_id": p.UserID, "employee_id": id})
	if err := s.sessions.RevokeUser(ctx, id); err != nil {
		entry.WithField("error", err.Error()).Error("Employee deleted but sessions were not revoked")
		return err
	}
	entry.Info("Employee deleted")
	return nil
}
