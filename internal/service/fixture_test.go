package service

import (
	"context"
	"testing"
	"time"

	"employee_management/internal/db/dbtest"
	"employee_management/internal/domain"
	"employee_management/internal/security"
	"employee_management/internal/session"
	"employee_management/internal/store"

	"github.com/stretchr/testify/require"
)

type fixture struct {
	users    *store.UserRepository
	leaves   *store.LeaveRepository
	sessions *session.Manager
	svc      *Services
}

var admin = &domain.Principal{UserID: 1, Name: "Admin", Role: domain.RoleAdmin}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureWithAdmin(t, "")
}

// newFixtureWithAdmin seeds the bootstrap administrator under adminEmail
func newFixtureWithAdmin(t *testing.T, adminEmail string) *fixture {
	t.Helper()
	gdb := dbtest.OpenWithAdmin(t, adminEmail)
	hasher, err := security.NewHasher(security.SchemeArgon2id)
	require.NoError(t, err)
	hasher = hasher.WithArgon2Params(security.Argon2Params{Memory: 1024, Time: 1, Threads: 1, SaltLen: 16, KeyLen: 32})

	f := &fixture{
		users:  store.NewUserRepository(gdb),
		leaves: store.NewLeaveRepository(gdb),
		sessions: session.NewManager(session.NewMemoryStore(), session.Config{
			Secret: "test-secret", Issuer: "ems-test", TTL: time.Hour, IdleTimeout: 30 * time.Minute,
		}),
	}
	f.svc, err = New(f.users, f.leaves, hasher, f.sessions)
	require.NoError(t, err)
	return f
}

// addEmployee creates an employee through the admin path and returns its principal
func (f *fixture) addEmployee(t *testing.T, name, email, password string) *domain.Principal {
	t.Helper()
	u, err := f.svc.Employees.Create(context.Background(), admin, NewEmployee{FullName: name, Email: email, Password: password})
	require.NoError(t, err)
	p := u.Principal()
	return &p
}

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}
