package session

import (
	"context"
	"errors"
	"time"

	"employee_management/internal/domain"
)

// ErrSessionNotFound is returned when no live session exists for an id
var ErrSessionNotFound = errors.New("session not found")

// Session is the authoritative server-side record of a login
type Session struct {
	ID        string      `json:"id"`
	UserID    uint        `json:"user_id"`
	Name      string      `json:"name"`
	Role      domain.Role `json:"role"`
	IssuedAt  time.Time   `json:"issued_at"`
	ExpiresAt time.Time   `json:"expires_at"`
}

// Principal returns the identity view of s
func (s Session) Principal() domain.Principal {
	return domain.Principal{UserID: s.UserID, Name: s.Name, Role: s.Role}
}

// Store keeps session records until their TTL elapses or they are deleted
type Store interface {
	Save(ctx context.Context, s Session, ttl time.Duration) error
	Load(ctx context.Context, id string) (Session, error)
	// Touch resets the TTL of a live session; ErrSessionNotFound if it is gone
	Touch(ctx context.Context, id string, ttl time.Duration) error
	// Delete removes a session; deleting a missing session is not an error
	Delete(ctx context.Context, id string) error
	// DeleteByUser removes every session of userID
	DeleteByUser(ctx context.Context, userID uint) error
}
