package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"employee_management/internal/authz"
	"employee_management/internal/domain"
	"employee_management/internal/store"

	"github.com/sirupsen/logrus"
)

// LeaveApplication is the employee-supplied part of a leave request.
// The owner is always the caller, never a field of the request.
type LeaveApplication struct {
	LeaveType string
	StartDate time.Time
	EndDate   time.Time
	Reason    string
}

// LeaveService runs the leave request lifecycle: Pending, then Approved or Rejected
type LeaveService struct {
	leaves LeaveStore
	now    func() time.Time
}

// NewLeaveService wires a LeaveService
func NewLeaveService(leaves LeaveStore) *LeaveService {
	return &LeaveService{leaves: leaves, now: time.Now}
}

// Apply files a new Pending request owned by the calling employee
func (s *LeaveService) Apply(ctx context.Context, p *domain.Principal, in LeaveApplication) (domain.LeaveRequest, error) {
	if err := authz.RequireRole(p, domain.RoleEmployee); err != nil {
		return domain.LeaveRequest{}, err
	}
	in.LeaveType = strings.TrimSpace(in.LeaveType)
	in.Reason = strings.TrimSpace(in.Reason)
	if err := checkText("leave_type", "Leave type", in.LeaveType, 40); err != nil {
		return domain.LeaveRequest{}, err
	}
	if in.StartDate.IsZero() {
		return domain.LeaveRequest{}, invalid("start_date", "Start date is required")
	}
	if in.EndDate.IsZero() {
		return domain.LeaveRequest{}, invalid("end_date", "End date is required")
	}
	start, end := calendarDay(in.StartDate), calendarDay(in.EndDate)
	if end.Before(start) {
		return domain.LeaveRequest{}, invalid("end_date", "End date must not be before start date")
	}
	if err := checkText("reason", "Reason", in.Reason, 2000); err != nil {
		return domain.LeaveRequest{}, err
	}

	leave := domain.LeaveRequest{
		EmployeeID: p.UserID,
		LeaveType:  in.LeaveType,
		StartDate:  start,
		EndDate:    end,
		Reason:     in.Reason,
		Status:     domain.LeavePending,
		AppliedAt:  s.now().UTC(),
	}
	if err := s.leaves.Insert(ctx, &leave); err != nil {
		return domain.LeaveRequest{}, err
	}
	logrus.WithFields(logrus.Fields{"employee_id": p.UserID, "leave_id": leave.ID}).Info("Leave requested")
	return leave, nil
}

// ListMine returns the caller's own requests, newest first
func (s *LeaveService) ListMine(ctx context.Context, p *domain.Principal) ([]domain.LeaveRequest, error) {
	if err := authz.RequireRole(p, domain.RoleEmployee); err != nil {
		return nil, err
	}
	return s.leaves.ListByEmployee(ctx, p.UserID, 0)
}

// ListAll returns every request with its requester, newest first
func (s *LeaveService) ListAll(ctx context.Context, p *domain.Principal) ([]domain.LeaveRequest, error) {
	if err := authz.RequireRole(p, domain.RoleAdmin); err != nil {
		return nil, err
	}
	return s.leaves.ListAll(ctx)
}

// Respond records an administrator's decision. A decided request may be
// decided again; the last decision wins.
func (s *LeaveService) Respond(ctx context.Context, p *domain.Principal, id uint, decision domain.LeaveStatus) error {
	if err := authz.RequireRole(p, domain.RoleAdmin); err != nil {
		return err
	}
	if _, err := domain.ParseDecision(string(decision)); err != nil {
		return invalid("status", "Decision must be Approved or Rejected")
	}

	current, err := s.leaves.FindByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if err := s.leaves.UpdateStatus(ctx, id, decision); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	entry := logrus.WithFields(logrus.Fields{
		"admin_id": p.UserID,
		"leave_id": id,
		"from":     current.Status,
		"to":       decision,
	})
	if current.Status.Terminal() {
		entry.Warn("Leave request decided again")
	} else {
		entry.Info("Leave request decided")
	}
	return nil
}

// calendarDay drops the time of day, keeping the date as written
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
