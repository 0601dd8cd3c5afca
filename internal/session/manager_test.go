package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"employee_management/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

var testConfig = Config{Secret: "test-secret", Issuer: "ems-test", TTL: time.Hour, IdleTimeout: 30 * time.Minute}

func newTestManager(t *testing.T, cfg Config) (*Manager, *MemoryStore, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Now()}
	store := NewMemoryStore()
	store.now = clock.Now
	m := NewManager(store, cfg)
	m.now = clock.Now
	return m, store, clock
}

var jane = domain.Principal{UserID: 2, Name: "Jane Doe", Role: domain.RoleEmployee}

func TestIssueAndResolve(t *testing.T) {
	m, _, _ := newTestManager(t, testConfig)
	ctx := context.Background()

	token, issued, err := m.Issue(ctx, jane)
	require.NoError(t, err)
	assert.NotEmpty(t, issued.ID)
	assert.Equal(t, issued.IssuedAt.Add(time.Hour), issued.ExpiresAt)

	got, err := m.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, jane, got.Principal())
	assert.Equal(t, issued.ID, got.ID)
}

func TestResolve_RejectsTamperedToken(t *testing.T) {
	m, _, _ := newTestManager(t, testConfig)
	ctx := context.Background()

	token, _, err := m.Issue(ctx, jane)
	require.NoError(t, err)

	_, err = m.Resolve(ctx, token+"x")
	assert.ErrorIs(t, err, ErrInvalidToken)

	other := NewManager(NewMemoryStore(), Config{Secret: "other", Issuer: testConfig.Issuer, TTL: time.Hour})
	forged, _, err := other.Issue(ctx, domain.Principal{UserID: 2, Name: "Jane Doe", Role: domain.RoleAdmin})
	require.NoError(t, err)
	_, err = m.Resolve(ctx, forged)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestResolve_RecordMustMatchToken(t *testing.T) {
	m, store, _ := newTestManager(t, testConfig)
	ctx := context.Background()

	token, s, err := m.Issue(ctx, jane)
	require.NoError(t, err)

	// a record rewritten with another role must not be honoured for this token
	s.Role = domain.RoleAdmin
	require.NoError(t, store.Save(ctx, s, time.Hour))

	_, err = m.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestResolve_AbsoluteExpiry(t *testing.T) {
	cfg := testConfig
	cfg.IdleTimeout = 0
	m, _, clock := newTestManager(t, cfg)
	ctx := context.Background()

	token, _, err := m.Issue(ctx, jane)
	require.NoError(t, err)

	clock.Advance(59 * time.Minute)
	_, err = m.Resolve(ctx, token)
	require.NoError(t, err)

	clock.Advance(2 * time.Minute)
	_, err = m.Resolve(ctx, token)
	assert.True(t, errors.Is(err, ErrSessionNotFound) || errors.Is(err, ErrInvalidToken), "got %v", err)
}

func TestResolve_IdleTimeoutIsSlidingButBounded(t *testing.T) {
	m, _, clock := newTestManager(t, testConfig)
	ctx := context.Background()

	token, _, err := m.Issue(ctx, jane)
	require.NoError(t, err)

	// activity every 20 minutes keeps the session alive until the absolute expiry
	for i := 0; i < 2; i++ {
		clock.Advance(20 * time.Minute)
		_, err = m.Resolve(ctx, token)
		require.NoError(t, err)
	}
	clock.Advance(21 * time.Minute)
	_, err = m.Resolve(ctx, token)
	assert.Error(t, err, "absolute expiry wins over activity")

	token, _, err = m.Issue(ctx, jane)
	require.NoError(t, err)
	clock.Advance(31 * time.Minute)
	_, err = m.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrSessionNotFound, "idle session must expire")
}

func TestRevoke(t *testing.T) {
	m, _, _ := newTestManager(t, testConfig)
	ctx := context.Background()

	token, _, err := m.Issue(ctx, jane)
	require.NoError(t, err)

	require.NoError(t, m.Revoke(ctx, token))
	_, err = m.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// idempotent
	assert.NoError(t, m.Revoke(ctx, token))
	assert.NoError(t, m.Revoke(ctx, ""))
	assert.NoError(t, m.Revoke(ctx, "garbage"))
}

func TestContextPrincipal(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, CurrentUser(ctx))
	assert.False(t, HasRole(ctx, domain.RoleEmployee))

	ctx = WithPrincipal(ctx, jane)
	require.NotNil(t, CurrentUser(ctx))
	assert.Equal(t, jane, *CurrentUser(ctx))
	assert.True(t, HasRole(ctx, domain.RoleEmployee))
	assert.False(t, HasRole(ctx, domain.RoleAdmin))
}

func TestRevokeUser(t *testing.T) {
	m, _, _ := newTestManager(t, testConfig)
	ctx := context.Background()
	john := domain.Principal{UserID: 3, Name: "John", Role: domain.RoleEmployee}

	a, _, err := m.Issue(ctx, jane)
	require.NoError(t, err)
	b, _, err := m.Issue(ctx, jane)
	require.NoError(t, err)
	other, _, err := m.Issue(ctx, john)
	require.NoError(t, err)

	require.NoError(t, m.RevokeUser(ctx, jane.UserID))
	for _, token := range []string{a, b} {
		_, err := m.Resolve(ctx, token)
		assert.ErrorIs(t, err, ErrSessionNotFound)
	}
	_, err = m.Resolve(ctx, other)
	assert.NoError(t, err)

	assert.NoError(t, m.RevokeUser(ctx, jane.UserID))
}
