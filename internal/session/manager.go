// Package session issues, resolves and revokes login sessions.
//
// A session has two representations that can never disagree: the
// authoritative record kept in a Store, and the signed token handed to the
// client, which only carries the record id plus a copy of the identity. A
// token is honoured only while its record is live, so deleting the record
// ends the session everywhere at once.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"employee_management/internal/domain"
	"employee_management/internal/utils"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrInvalidToken is returned when a token is malformed, tampered with or expired
var ErrInvalidToken = errors.New("invalid session token")

// Config holds the session policy
type Config struct {
	Secret      string        // HMAC key for tokens
	Issuer      string        // Token issuer claim
	TTL         time.Duration // Absolute lifetime measured from issuance
	IdleTimeout time.Duration // Inactivity limit, zero disables it
}

// Manager is the only producer of valid sessions
type Manager struct {
	store Store
	cfg   Config
	now   func() time.Time
	newID func() string
}

// NewManager returns a Manager persisting sessions in store
func NewManager(store Store, cfg Config) *Manager {
	return &Manager{store: store, cfg: cfg, now: time.Now, newID: uuid.NewString}
}

// Issue creates a session for p and returns its signed token
func (m *Manager) Issue(ctx context.Context, p domain.Principal) (string, Session, error) {
	now := m.now().UTC().Truncate(time.Second)
	s := Session{
		ID:        m.newID(),
		UserID:    p.UserID,
		Name:      p.Name,
		Role:      p.Role,
		IssuedAt:  now,
		ExpiresAt: now.Add(m.cfg.TTL),
	}
	if err := m.store.Save(ctx, s, m.recordTTL(s, now)); err != nil {
		return "", Session{}, err
	}
	token, err := utils.GenerateJWT(utils.Claims{UserID: p.UserID, Name: p.Name, Role: string(p.Role)},
		s.ID, m.cfg.Issuer, m.cfg.Secret, s.IssuedAt, s.ExpiresAt)
	if err != nil {
		_ = m.store.Delete(ctx, s.ID)
		return "", Session{}, fmt.Errorf("signing session token: %w", err)
	}
	return token, s, nil
}

// Resolve returns the live session for token. Expired, tampered or revoked
// tokens yield ErrInvalidToken or ErrSessionNotFound; store failures are
// returned as they are so callers can tell them apart from a missing session.
func (m *Manager) Resolve(ctx context.Context, token string) (Session, error) {
	claims, err := utils.ParseJWT(token, m.cfg.Issuer, m.cfg.Secret)
	if err != nil {
		return Session{}, ErrInvalidToken
	}
	s, err := m.store.Load(ctx, claims.ID)
	if err != nil {
		return Session{}, err
	}
	now := m.now()
	if s.UserID != claims.UserID || string(s.Role) != claims.Role || !now.Before(s.ExpiresAt) {
		logrus.WithFields(logrus.Fields{
			"session_id": s.ID,
			"user_id":    claims.UserID,
		}).Warn("Session token does not match its record")
		return Session{}, ErrInvalidToken
	}
	if m.cfg.IdleTimeout > 0 {
		if err := m.store.Touch(ctx, s.ID, m.recordTTL(s, now)); err != nil {
			return Session{}, err
		}
	}
	return s, nil
}

// Revoke ends the session behind token. Unknown, invalid and already ended
// sessions are ignored.
func (m *Manager) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	claims, err := utils.ParseJWT(token, m.cfg.Issuer, m.cfg.Secret)
	if err != nil {
		return nil // an expired token's record has already expired with it
	}
	return m.store.Delete(ctx, claims.ID)
}

// RevokeUser ends every session of userID
func (m *Manager) RevokeUser(ctx context.Context, userID uint) error {
	if err := m.store.DeleteByUser(ctx, userID); err != nil {
		return fmt.Errorf("revoking sessions of user %d: %w", userID, err)
	}
	return nil
}

// recordTTL bounds the record lifetime by the absolute expiry and, when set, the idle timeout
func (m *Manager) recordTTL(s Session, now time.Time) time.Duration {
	ttl := s.ExpiresAt.Sub(now)
	if m.cfg.IdleTimeout > 0 && m.cfg.IdleTimeout < ttl {
		ttl = m.cfg.IdleTimeout
	}
	return ttl
}
