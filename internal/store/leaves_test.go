package store

import (
	"context"
	"testing"
	"time"

	"employee_management/internal/db/dbtest"
	"employee_management/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leaveAt(employeeID uint, applied time.Time) *domain.LeaveRequest {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	return &domain.LeaveRequest{
		EmployeeID: employeeID,
		LeaveType:  "Annual",
		StartDate:  day,
		EndDate:    day,
		Reason:     "trip",
		Status:     domain.LeavePending,
		AppliedAt:  applied,
	}
}

func TestLeaveRepository_ListByEmployee_Isolation(t *testing.T) {
	gdb := dbtest.Open(t)
	users := NewUserRepository(gdb)
	leaves := NewLeaveRepository(gdb)
	ctx := context.Background()

	a, b := newEmployee("A", "a@company.com"), newEmployee("B", "b@company.com")
	require.NoError(t, users.Insert(ctx, a))
	require.NoError(t, users.Insert(ctx, b))

	base := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 6; i++ {
		owner := a.ID
		if i%2 == 1 {
			owner = b.ID
		}
		require.NoError(t, leaves.Insert(ctx, leaveAt(owner, base.Add(time.Duration(i)*time.Hour))))
	}

	mine, err := leaves.ListByEmployee(ctx, a.ID, 0)
	require.NoError(t, err)
	require.Len(t, mine, 3)
	for i, l := range mine {
		assert.Equal(t, a.ID, l.EmployeeID)
		if i > 0 {
			assert.True(t, !l.AppliedAt.After(mine[i-1].AppliedAt), "newest first")
		}
	}

	limited, err := leaves.ListByEmployee(ctx, a.ID, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
	assert.Equal(t, mine[0].ID, limited[0].ID)
}

func TestLeaveRepository_ListAll_LoadsRequester(t *testing.T) {
	gdb := dbtest.Open(t)
	users := NewUserRepository(gdb)
	leaves := NewLeaveRepository(gdb)
	ctx := context.Background()

	a := newEmployee("A", "a@company.com")
	require.NoError(t, users.Insert(ctx, a))
	base := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, leaves.Insert(ctx, leaveAt(a.ID, base)))
	require.NoError(t, leaves.Insert(ctx, leaveAt(a.ID, base.Add(time.Hour))))

	all, err := leaves.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.True(t, all[0].AppliedAt.After(all[1].AppliedAt))
	require.NotNil(t, all[0].Employee)
	assert.Equal(t, "A", all[0].Employee.FullName)

	// requests outlive their requester
	require.NoError(t, users.Delete(ctx, a.ID, domain.RoleEmployee))
	all, err = leaves.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Nil(t, all[0].Employee)
}

func TestLeaveRepository_UpdateStatus(t *testing.T) {
	gdb := dbtest.Open(t)
	leaves := NewLeaveRepository(gdb)
	ctx := context.Background()

	l := leaveAt(1, time.Now().UTC())
	require.NoError(t, leaves.Insert(ctx, l))

	require.NoError(t, leaves.UpdateStatus(ctx, l.ID, domain.LeaveApproved))
	require.NoError(t, leaves.UpdateStatus(ctx, l.ID, domain.LeaveApproved))
	got, err := leaves.FindByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.LeaveApproved, got.Status)

	assert.ErrorIs(t, leaves.UpdateStatus(ctx, 999, domain.LeaveRejected), ErrNotFound)
	_, err = leaves.FindByID(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLeaveRepository_CountByStatus(t *testing.T) {
	gdb := dbtest.Open(t)
	leaves := NewLeaveRepository(gdb)
	ctx := context.Background()
	now := time.Now().UTC()

	for _, fixture := range []struct {
		owner  uint
		status domain.LeaveStatus
	}{
		{2, domain.LeavePending}, {2, domain.LeaveApproved}, {2, domain.LeaveApproved},
		{3, domain.LeaveRejected}, {3, domain.LeavePending},
	} {
		l := leaveAt(fixture.owner, now)
		l.Status = fixture.status
		require.NoError(t, leaves.Insert(ctx, l))
	}

	owner := uint(2)
	mine, err := leaves.CountByStatus(ctx, &owner)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCounts{Total: 3, Pending: 1, Approved: 2}, mine)

	all, err := leaves.CountByStatus(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCounts{Total: 5, Pending: 2, Approved: 2, Rejected: 1}, all)
}
