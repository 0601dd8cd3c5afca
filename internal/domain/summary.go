package domain

// StatusCounts holds leave request counts by status
type StatusCounts struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}

// Add records n requests in status s
func (c *StatusCounts) Add(s LeaveStatus, n int64) {
	switch s {
	case LeavePending:
		c.Pending += n
	case LeaveApproved:
		c.Approved += n
	case LeaveRejected:
		c.Rejected += n
	}
	c.Total += n
}

// EmployeeSummary is the self-service dashboard
type EmployeeSummary struct {
	Counts StatusCounts   `json:"counts"`
	Recent []LeaveRequest `json:"recent"` // Most recent requests, newest first
}

// AdminSummary is the administrator dashboard
type AdminSummary struct {
	EmployeeCount int64        `json:"employee_count"`
	Counts        StatusCounts `json:"counts"`
}
