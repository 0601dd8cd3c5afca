package service

import (
	"context"
	"testing"
	"time"

	"employee_management/internal/authz"
	"employee_management/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func application(start, end string) LeaveApplication {
	return LeaveApplication{LeaveType: "Annual", StartDate: day(start), EndDate: day(end), Reason: "family trip"}
}

func TestApplyLeave(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	jane := f.addEmployee(t, "Jane", "jane@company.com", "pw")

	l, err := f.svc.Leaves.Apply(ctx, jane, application("2025-03-10", "2025-03-12"))
	require.NoError(t, err)
	assert.NotZero(t, l.ID)
	assert.Equal(t, jane.UserID, l.EmployeeID)
	assert.Equal(t, domain.LeavePending, l.Status)
	assert.False(t, l.AppliedAt.IsZero())
}

func TestApplyLeave_Dates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	jane := f.addEmployee(t, "Jane", "jane@company.com", "pw")

	_, err := f.svc.Leaves.Apply(ctx, jane, application("2025-03-10", "2025-03-05"))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "end_date", verr.Field)

	single, err := f.svc.Leaves.Apply(ctx, jane, application("2025-03-10", "2025-03-10"))
	require.NoError(t, err, "single-day leave is valid")
	assert.Equal(t, single.StartDate, single.EndDate)

	// time of day is ignored
	in := application("2025-03-10", "2025-03-10")
	in.StartDate = in.StartDate.Add(15 * time.Hour)
	_, err = f.svc.Leaves.Apply(ctx, jane, in)
	require.NoError(t, err)

	mine, err := f.svc.Leaves.ListMine(ctx, jane)
	require.NoError(t, err)
	assert.Len(t, mine, 2, "the rejected application was not stored")
}

func TestApplyLeave_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	jane := f.addEmployee(t, "Jane", "jane@company.com", "pw")

	tests := map[string]struct {
		mutate func(*LeaveApplication)
		field  string
	}{
		"missing type":   {func(a *LeaveApplication) { a.LeaveType = " " }, "leave_type"},
		"missing reason": {func(a *LeaveApplication) { a.Reason = "" }, "reason"},
		"missing start":  {func(a *LeaveApplication) { a.StartDate = time.Time{} }, "start_date"},
		"missing end":    {func(a *LeaveApplication) { a.EndDate = time.Time{} }, "end_date"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			in := application("2025-03-10", "2025-03-11")
			tt.mutate(&in)
			_, err := f.svc.Leaves.Apply(ctx, jane, in)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestListMine_Isolation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.addEmployee(t, "A", "a@company.com", "pw")
	b := f.addEmployee(t, "B", "b@company.com", "pw")

	clock := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	f.svc.Leaves.now = func() time.Time { clock = clock.Add(time.Minute); return clock }

	for i := 0; i < 4; i++ {
		_, err := f.svc.Leaves.Apply(ctx, a, application("2025-03-10", "2025-03-11"))
		require.NoError(t, err)
		_, err = f.svc.Leaves.Apply(ctx, b, application("2025-04-10", "2025-04-11"))
		require.NoError(t, err)
	}

	for _, p := range []*domain.Principal{a, b} {
		mine, err := f.svc.Leaves.ListMine(ctx, p)
		require.NoError(t, err)
		require.Len(t, mine, 4)
		for i, l := range mine {
			assert.Equal(t, p.UserID, l.EmployeeID)
			if i > 0 {
				assert.True(t, l.AppliedAt.Before(mine[i-1].AppliedAt), "newest first")
			}
		}
	}
}

func TestListAll(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.addEmployee(t, "A", "a@company.com", "pw")
	b := f.addEmployee(t, "B", "b@company.com", "pw")

	clock := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	f.svc.Leaves.now = func() time.Time { clock = clock.Add(time.Minute); return clock }

	_, err := f.svc.Leaves.Apply(ctx, a, application("2025-03-10", "2025-03-11"))
	require.NoError(t, err)
	_, err = f.svc.Leaves.Apply(ctx, b, application("2025-03-12", "2025-03-12"))
	require.NoError(t, err)

	all, err := f.svc.Leaves.ListAll(ctx, admin)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.NotNil(t, all[0].Employee)
	assert.Equal(t, "B", all[0].Employee.FullName)
	assert.Equal(t, "A", all[1].Employee.FullName)
}

func TestRespond_LastWriteWins(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	jane := f.addEmployee(t, "Jane", "jane@company.com", "pw")

	l, err := f.svc.Leaves.Apply(ctx, jane, application("2025-03-10", "2025-03-10"))
	require.NoError(t, err)

	require.NoError(t, f.svc.Leaves.Respond(ctx, admin, l.ID, domain.LeaveApproved))
	require.NoError(t, f.svc.Leaves.Respond(ctx, admin, l.ID, domain.LeaveRejected))

	got, err := f.leaves.FindByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.LeaveRejected, got.Status)
}

func TestRespond_Errors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	jane := f.addEmployee(t, "Jane", "jane@company.com", "pw")
	l, err := f.svc.Leaves.Apply(ctx, jane, application("2025-03-10", "2025-03-10"))
	require.NoError(t, err)

	assert.ErrorIs(t, f.svc.Leaves.Respond(ctx, admin, 999, domain.LeaveApproved), ErrNotFound)

	var verr *ValidationError
	require.ErrorAs(t, f.svc.Leaves.Respond(ctx, admin, l.ID, domain.LeavePending), &verr)
	require.ErrorAs(t, f.svc.Leaves.Respond(ctx, admin, l.ID, domain.LeaveStatus("Maybe")), &verr)

	got, err := f.leaves.FindByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.LeavePending, got.Status)
}

func TestLeaveOperations_RoleGates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	jane := f.addEmployee(t, "Jane", "jane@company.com", "pw")
	l, err := f.svc.Leaves.Apply(ctx, jane, application("2025-03-10", "2025-03-10"))
	require.NoError(t, err)

	_, err = f.svc.Leaves.ListAll(ctx, jane)
	assert.ErrorIs(t, err, authz.ErrForbidden)
	assert.ErrorIs(t, f.svc.Leaves.Respond(ctx, jane, l.ID, domain.LeaveApproved), authz.ErrForbidden)

	_, err = f.svc.Leaves.Apply(ctx, admin, application("2025-03-10", "2025-03-10"))
	assert.ErrorIs(t, err, authz.ErrForbidden)
	_, err = f.svc.Leaves.ListMine(ctx, admin)
	assert.ErrorIs(t, err, authz.ErrForbidden)

	_, err = f.svc.Leaves.Apply(ctx, nil, application("2025-03-10", "2025-03-10"))
	assert.ErrorIs(t, err, authz.ErrUnauthenticated)

	got, err := f.leaves.FindByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.LeavePending, got.Status, "forbidden respond must not write")
}
