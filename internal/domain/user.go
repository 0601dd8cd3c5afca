package domain

import (
	"strings"
	"time"
)

// User Model
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`                       // Primary key
	FullName     string    `gorm:"size:120;not null" json:"full_name"`         // Display name
	Email        string    `gorm:"size:254;uniqueIndex;not null" json:"email"` // Unique login handle
	PasswordHash string    `gorm:"size:255;not null" json:"-"`                 // Salted hash or legacy digest, never plaintext
	Role         Role      `gorm:"size:20;not null;index" json:"role"`         // Admin or Employee
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`                 // Creation timestamp
}

// Principal returns the session identity for u
func (u User) Principal() Principal {
	return Principal{UserID: u.ID, Name: u.FullName, Role: u.Role}
}

// NormalizeEmail trims and lowercases an email. Stored emails are always in
// this form, so lookups and uniqueness ignore case.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
