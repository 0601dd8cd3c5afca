package domain

import (
	"fmt"
	"time"
)

// LeaveStatus is the lifecycle state of a leave request
type LeaveStatus string

const (
	LeavePending  LeaveStatus = "Pending"  // Initial state
	LeaveApproved LeaveStatus = "Approved" // Terminal, set by an admin
	LeaveRejected LeaveStatus = "Rejected" // Terminal, set by an admin
)

// ParseDecision accepts only the two administrative outcomes
func ParseDecision(s string) (LeaveStatus, error) {
	switch LeaveStatus(s) {
	case LeaveApproved, LeaveRejected:
		return LeaveStatus(s), nil
	default:
		return "", fmt.Errorf("decision must be %s or %s", LeaveApproved, LeaveRejected)
	}
}

// Terminal reports whether no further transition is expected from s
func (s LeaveStatus) Terminal() bool {
	return s == LeaveApproved || s == LeaveRejected
}

// LeaveRequest Model
type LeaveRequest struct {
	ID         uint        `gorm:"primaryKey" json:"id"`                            // Primary key
	EmployeeID uint        `gorm:"not null;index" json:"employee_id"`               // Owning employee, always taken from the session
	Employee   *User       `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"` // Requester, loaded for admin listings
	LeaveType  string      `gorm:"size:40;not null" json:"leave_type"`              // Sick, Casual, Annual, ...
	StartDate  time.Time   `gorm:"not null" json:"start_date"`                      // First day of leave
	EndDate    time.Time   `gorm:"not null" json:"end_date"`                        // Last day of leave, never before StartDate
	Reason     string      `gorm:"type:text;not null" json:"reason"`                // Free text
	Status     LeaveStatus `gorm:"size:20;not null;index" json:"status"`            // Pending, Approved or Rejected
	AppliedAt  time.Time   `gorm:"not null;index" json:"applied_at"`                // Submission time
}
