package store

import (
	"context"
	"fmt"

	"employee_management/internal/domain"

	"gorm.io/gorm"
)

// LeaveRepository reads and writes leave request rows
type LeaveRepository struct {
	db *gorm.DB
}

// NewLeaveRepository returns a LeaveRepository using db
func NewLeaveRepository(db *gorm.DB) *LeaveRepository {
	return &LeaveRepository{db: db}
}

// Insert creates leave and fills in its id
func (r *LeaveRepository) Insert(ctx context.Context, leave *domain.LeaveRequest) error {
	if err := r.db.WithContext(ctx).Omit("Employee").Create(leave).Error; err != nil {
		return fmt.Errorf("inserting leave request: %w", err)
	}
	return nil
}

// FindByID returns the leave request with id
func (r *LeaveRepository) FindByID(ctx context.Context, id uint) (domain.LeaveRequest, error) {
	var leave domain.LeaveRequest
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&leave).Error
	return leave, notFound(err, "finding leave request")
}

// UpdateStatus overwrites the status of the leave request with id in one statement
func (r *LeaveRepository) UpdateStatus(ctx context.Context, id uint, status domain.LeaveStatus) error {
	res := r.db.WithContext(ctx).Model(&domain.LeaveRequest{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("updating leave request %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByEmployee returns the requests owned by employeeID, newest first.
// A limit of zero or less returns all of them.
func (r *LeaveRepository) ListByEmployee(ctx context.Context, employeeID uint, limit int) ([]domain.LeaveRequest, error) {
	var leaves []domain.LeaveRequest
	q := newestFirst(r.db.WithContext(ctx).Where("employee_id = ?", employeeID))
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&leaves).Error; err != nil {
		return nil, fmt.Errorf("listing leave requests of employee %d: %w", employeeID, err)
	}
	return leaves, nil
}

// ListAll returns every request with its requester loaded, newest first.
// Requests whose requester no longer exists have a nil Employee.
func (r *LeaveRepository) ListAll(ctx context.Context) ([]domain.LeaveRequest, error) {
	var leaves []domain.LeaveRequest
	if err := newestFirst(r.db.WithContext(ctx).Preload("Employee")).Find(&leaves).Error; err != nil {
		return nil, fmt.Errorf("listing leave requests: %w", err)
	}
	return leaves, nil
}

// CountByStatus counts requests per status. When employeeID is nil every request is counted.
func (r *LeaveRepository) CountByStatus(ctx context.Context, employeeID *uint) (domain.StatusCounts, error) {
	var rows []struct {
		Status domain.LeaveStatus
		N      int64
	}
	q := r.db.WithContext(ctx).Model(&domain.LeaveRequest{}).Select("status, COUNT(*) AS n").Group("status")
	if employeeID != nil {
		q = q.Where("employee_id = ?", *employeeID)
	}
	if err := q.Scan(&rows).Error; err != nil {
		return domain.StatusCounts{}, fmt.Errorf("counting leave requests: %w", err)
	}
	var counts domain.StatusCounts
	for _, row := range rows {
		counts.Add(row.Status, row.N)
	}
	return counts, nil
}

func newestFirst(q *gorm.DB) *gorm.DB {
	return q.Order("applied_at DESC").Order("id DESC")
}
