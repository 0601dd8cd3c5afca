package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"employee_management/internal/domain"
	"employee_management/internal/security"
	"employee_management/internal/store"

	"github.com/sirupsen/logrus"
)

// LoginResult is a verified principal together with its new session
type LoginResult struct {
	Principal domain.Principal
	Token     string
	ExpiresAt time.Time
}

// Authenticator verifies credentials and is the only path to a new session
type Authenticator struct {
	users    UserStore
	hasher   PasswordHasher
	sessions SessionIssuer
	// dummy is a hash in the configured scheme. It is verified whenever the stored
	// hash would cost less: for an unknown email and for a legacy digest.
	dummy string
}

// NewAuthenticator wires an Authenticator
func NewAuthenticator(users UserStore, hasher PasswordHasher, sessions SessionIssuer) (*Authenticator, error) {
	dummy, err := hasher.Hash("not-a-real-password")
	if err != nil {
		return nil, fmt.Errorf("preparing authenticator: %w", err)
	}
	return &Authenticator{users: users, hasher: hasher, sessions: sessions, dummy: dummy}, nil
}

// Authenticate checks email and password and returns the matching principal.
// An unknown email and a wrong password both yield ErrInvalidCredentials.
func (a *Authenticator) Authenticate(ctx context.Context, email, password string) (domain.Principal, error) {
	email = domain.NormalizeEmail(email)
	if email == "" {
		return domain.Principal{}, invalid("email", "Email is required")
	}
	if password == "" {
		return domain.Principal{}, invalid("password", "Password is required")
	}

	user, err := a.users.FindByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		_ = a.hasher.Verify(a.dummy, password)
		return domain.Principal{}, ErrInvalidCredentials
	}
	if err != nil {
		return domain.Principal{}, err
	}

	if security.Detect(user.PasswordHash) == security.SchemeLegacy {
		// legacy digests are fast; match the cost of an unknown email
		_ = a.hasher.Verify(a.dummy, password)
	}
	if err := a.hasher.Verify(user.PasswordHash, password); err != nil {
		if !errors.Is(err, security.ErrMismatch) {
			logrus.WithFields(logrus.Fields{"user_id": user.ID, "error": err.Error()}).Error("Stored password hash is unusable")
		}
		return domain.Principal{}, ErrInvalidCredentials
	}
	if !user.Role.Valid() {
		logrus.WithFields(logrus.Fields{"user_id": user.ID, "role": user.Role}).Error("User has an unknown role")
		return domain.Principal{}, ErrInvalidCredentials
	}

	if a.hasher.NeedsRehash(user.PasswordHash) {
		a.upgradeHash(ctx, user.ID, password)
	}
	return user.Principal(), nil
}

// Login authenticates and issues a session for the principal
func (a *Authenticator) Login(ctx context.Context, email, password string) (LoginResult, error) {
	p, err := a.Authenticate(ctx, email, password)
	if err != nil {
		return LoginResult{}, err
	}
	token, s, err := a.sessions.Issue(ctx, p)
	if err != nil {
		return LoginResult{}, fmt.Errorf("issuing session: %w", err)
	}
	logrus.WithFields(logrus.Fields{"user_id": p.UserID, "role": p.Role}).Info("User logged in")
	return LoginResult{Principal: p, Token: token, ExpiresAt: s.ExpiresAt}, nil
}

// Logout ends the session behind token. It is a no-op without a live session.
func (a *Authenticator) Logout(ctx context.Context, token string) error {
	return a.sessions.Revoke(ctx, token)
}

// upgradeHash replaces a legacy or outdated hash after a successful login.
// Failures are logged and do not affect the login.
func (a *Authenticator) upgradeHash(ctx context.Context, userID uint, password string) {
	hash, err := a.hasher.Hash(password)
	if err == nil {
		err = a.users.UpdatePasswordHash(ctx, userID, hash)
	}
	if err != nil {
		logrus.WithFields(logrus.Fields{"user_id": userID, "error": err.Error()}).Warn("Password hash upgrade failed")
		return
	}
	logrus.WithField("user_id", userID).Info("Password hash upgraded")
}
