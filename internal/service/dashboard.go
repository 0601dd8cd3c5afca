package service

import (
	"context"

	"employee_management/internal/authz"
	"employee_management/internal/domain"
)

// RecentLeaves is how many requests the employee dashboard shows
const RecentLeaves = 5

// DashboardService builds the per-role summaries
type DashboardService struct {
	users  UserStore
	leaves LeaveStore
}

// NewDashboardService wires a DashboardService
func NewDashboardService(users UserStore, leaves LeaveStore) *DashboardService {
	return &DashboardService{users: users, leaves: leaves}
}

// Employee summarises the caller's own requests
func (s *DashboardService) Employee(ctx context.Context, p *domain.Principal) (domain.EmployeeSummary, error) {
	if err := authz.RequireRole(p, domain.RoleEmployee); err != nil {
		return domain.EmployeeSummary{}, err
	}
	counts, err := s.leaves.CountByStatus(ctx, &p.UserID)
	if err != nil {
		return domain.EmployeeSummary{}, err
	}
	recent, err := s.leaves.ListByEmployee(ctx, p.UserID, RecentLeaves)
	if err != nil {
		return domain.EmployeeSummary{}, err
	}
	return domain.EmployeeSummary{Counts: counts, Recent: recent}, nil
}

// Admin summarises the whole organisation
func (s *DashboardService) Admin(ctx context.Context, p *domain.Principal) (domain.AdminSummary, error) {
	if err := authz.RequireRole(p, domain.RoleAdmin); err != nil {
		return domain.AdminSummary{}, err
	}
	employees, err := s.users.CountByRole(ctx, domain.RoleEmployee)
	if err != nil {
		return domain.AdminSummary{}, err
	}
	counts, err := s.leaves.CountByStatus(ctx, nil)
	if err != nil {
		return domain.AdminSummary{}, err
	}
	return domain.AdminSummary{EmployeeCount: employees, Counts: counts}, nil
}
