package api

import (
	"net/http" // HTTP status codes
	"strconv"  // Path parameter parsing

	"employee_management/internal/domain"     // Domain models
	"employee_management/internal/middleware" // Request principal
	"employee_management/internal/service"    // Core operations

	"github.com/gin-gonic/gin" // Gin web framework
)

// EmployeeRequest is the body for creating an employee
type EmployeeRequest struct {
	FullName string `json:"full_name"` // Display name
	Email    string `json:"email"`     // Unique login handle
	Password string `json:"password"`  // Initial password
}

// EmployeeUpdateRequest is the body for editing an employee
type EmployeeUpdateRequest struct {
	FullName string `json:"full_name"` // Display name
	Email    string `json:"email"`     // Unique login handle
}

// DecisionRequest is the body for deciding a leave request
type DecisionRequest struct {
	Status string `json:"status" binding:"required"` // Approved or Rejected
}

// LeaveAdminResponse is a leave request as administrators see it
type LeaveAdminResponse struct {
	domain.LeaveRequest
	EmployeeName string `json:"employee_name"` // Empty once the employee is deleted
}

// pathID reads the :id path parameter
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// AdminDashboardHandler returns the organisation summary
func AdminDashboardHandler(dashboard *service.DashboardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		summary, err := dashboard.Admin(c.Request.Context(), middleware.Principal(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}

// ListEmployeesHandler returns every employee
func ListEmployeesHandler(employees *service.EmployeeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := employees.List(c.Request.Context(), middleware.Principal(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"employees": users, "total": len(users)})
	}
}

// CreateEmployeeHandler adds an employee
func CreateEmployeeHandler(employees *service.EmployeeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req EmployeeRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c)
			return
		}
		user, err := employees.Create(c.Request.Context(), middleware.Principal(c), service.NewEmployee{
			FullName: req.FullName,
			Email:    req.Email,
			Password: req.Password,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, user)
	}
}

// UpdateEmployeeHandler edits an employee's name and email
func UpdateEmployeeHandler(employees *service.EmployeeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			badRequest(c)
			return
		}
		var req EmployeeUpdateRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c)
			return
		}
		user, err := employees.Edit(c.Request.Context(), middleware.Principal(c), id, service.EmployeeProfile{
			FullName: req.FullName,
			Email:    req.Email,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// DeleteEmployeeHandler removes an employee
func DeleteEmployeeHandler(employees *service.EmployeeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			badRequest(c)
			return
		}
		if err := employees.Delete(c.Request.Context(), middleware.Principal(c), id); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Employee deleted"})
	}
}

// ListLeavesHandler returns every leave request with its requester
func ListLeavesHandler(leaves *service.LeaveService) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := leaves.ListAll(c.Request.Context(), middleware.Principal(c))
		if err != nil {
			respondError(c, err)
			return
		}
		resp := make([]LeaveAdminResponse, len(all)) // Map leaves to response format
		for i, l := range all {
			resp[i] = LeaveAdminResponse{LeaveRequest: l}
			if l.Employee != nil {
				resp[i].EmployeeName = l.Employee.FullName
			}
		}
		c.JSON(http.StatusOK, gin.H{"leaves": resp, "total": len(resp)})
	}
}

// RespondLeaveHandler records an Approved or Rejected decision
func RespondLeaveHandler(leaves *service.LeaveService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			badRequest(c)
			return
		}
		var req DecisionRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c)
			return
		}
		status := domain.LeaveStatus(req.Status)
		if err := leaves.Respond(c.Request.Context(), middleware.Principal(c), id, status); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Leave request " + req.Status, "id": id, "status": status})
	}
}
