// Package store implements persistence for users and leave requests on top of gorm.
//
// Every mutation is one statement touching at most one row.
package store

import (
	"context"
	"errors"
	"fmt"

	"employee_management/internal/domain"

	"gorm.io/gorm"
)

// UserRepository reads and writes user rows
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a UserRepository using db
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByEmail returns the user whose email equals email exactly
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).Where("email = ?", email).Take(&user).Error
	return user, notFound(err, "finding user by email")
}

// FindByID returns the user with id
func (r *UserRepository) FindByID(ctx context.Context, id uint) (domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&user).Error
	return user, notFound(err, "finding user by id")
}

// Insert creates user and fills in its id
func (r *UserRepository) Insert(ctx context.Context, user *domain.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrEmailTaken
		}
		return fmt.Errorf("inserting user: %w", err)
	}
	return nil
}

// UpdateProfile sets the name and email of the user with id, provided it holds role
func (r *UserRepository) UpdateProfile(ctx context.Context, id uint, role domain.Role, fullName, email string) error {
	res := r.db.WithContext(ctx).Model(&domain.User{}).
		Where("id = ? AND role = ?", id, role).
		Updates(map[string]any{"full_name": fullName, "email": email})
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return ErrEmailTaken
		}
		return fmt.Errorf("updating user %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdatePasswordHash replaces the stored password hash of the user with id
func (r *UserRepository) UpdatePasswordHash(ctx context.Context, id uint, hash string) error {
	res := r.db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", id).Update("password_hash", hash)
	if res.Error != nil {
		return fmt.Errorf("updating password of user %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the user with id, provided it holds role
func (r *UserRepository) Delete(ctx context.Context, id uint, role domain.Role) error {
	res := r.db.WithContext(ctx).Where("id = ? AND role = ?", id, role).Delete(&domain.User{})
	if res.Error != nil {
		return fmt.Errorf("deleting user %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByRole returns every user holding role, oldest first
func (r *UserRepository) ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	var users []domain.User
	if err := r.db.WithContext(ctx).Where("role = ?", role).Order("id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return users, nil
}

// CountByRole returns the number of users holding role
func (r *UserRepository) CountByRole(ctx context.Context, role domain.Role) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&domain.User{}).Where("role = ?", role).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("counting users: %w", err)
	}
	return n, nil
}

// notFound maps gorm's missing-row error to ErrNotFound and wraps anything else
func notFound(err error, op string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
