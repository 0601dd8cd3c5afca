package db

import (
	"errors"
	"fmt"
	"time"

	"employee_management/internal/domain"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Bootstrap administrator. The digest is the unsalted SHA-256 of "Admin@123";
// it is replaced by a salted hash the first time the administrator logs in.
// On an empty database the administrator receives id 1.
const (
	AdminName     = "Admin"
	AdminEmail    = "admin@company.com"
	AdminPassword = "Admin@123"
	AdminDigest   = "240be518fabd2724ddb6f04eeb1da5967448d7e831c08c8fa822809f74c720a9"
)

// SeedAdmin provisions the bootstrap administrator unless an administrator already exists
func SeedAdmin(db *gorm.DB, email string) error {
	email = domain.NormalizeEmail(email)
	if email == "" {
		email = AdminEmail
	}
	var existing domain.User
	err := db.Where("role = ?", domain.RoleAdmin).Take(&existing).Error
	if err == nil {
		logrus.WithField("email", existing.Email).Debug("Administrator already provisioned")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("checking for administrator: %w", err)
	}
	admin := domain.User{
		FullName:     AdminName,
		Email:        email,
		PasswordHash: AdminDigest,
		Role:         domain.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("seeding administrator: %w", err)
	}
	logrus.WithField("email", email).Info("Bootstrap administrator created")
	return nil
}
