package api

import (
	"errors"   // Error inspection
	"net/http" // HTTP status codes
	"time"     // Date parsing

	"employee_management/internal/middleware" // Request principal
	"employee_management/internal/service"    // Core operations

	"github.com/gin-gonic/gin"               // Gin web framework
	"github.com/go-playground/validator/v10" // Binding errors
)

// dateLayout is the calendar date format used on the wire
const dateLayout = "2006-01-02"

// LeaveRequestBody is the leave application form. There is no employee
// field; the request is always filed for the caller.
type LeaveRequestBody struct {
	LeaveType string `json:"leave_type"`                                        // Sick, Casual, Annual, ...
	StartDate string `json:"start_date" binding:"required,datetime=2006-01-02"` // First day
	EndDate   string `json:"end_date" binding:"required,datetime=2006-01-02"`   // Last day
	Reason    string `json:"reason"`                                            // Free text
}

// EmployeeDashboardHandler returns the caller's summary
func EmployeeDashboardHandler(dashboard *service.DashboardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		summary, err := dashboard.Employee(c.Request.Context(), middleware.Principal(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}

// MyLeavesHandler returns the caller's own leave requests
func MyLeavesHandler(leaves *service.LeaveService) gin.HandlerFunc {
	return func(c *gin.Context) {
		mine, err := leaves.ListMine(c.Request.Context(), middleware.Principal(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"leaves": mine, "total": len(mine)})
	}
}

// ApplyLeaveHandler files a leave request for the caller
func ApplyLeaveHandler(leaves *service.LeaveService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LeaveRequestBody // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Dates must be given as YYYY-MM-DD", "field": fieldName(verrs[0])})
				return
			}
			badRequest(c)
			return
		}
		start, _ := time.Parse(dateLayout, req.StartDate) // Already checked by binding
		end, _ := time.Parse(dateLayout, req.EndDate)
		leave, err := leaves.Apply(c.Request.Context(), middleware.Principal(c), service.LeaveApplication{
			LeaveType: req.LeaveType,
			StartDate: start,
			EndDate:   end,
			Reason:    req.Reason,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, leave)
	}
}

// fieldName maps a binding error to the JSON field it concerns
func fieldName(fe validator.FieldError) string {
	switch fe.Field() {
	case "StartDate":
		return "start_date"
	case "EndDate":
		return "end_date"
	default:
		return fe.Field()
	}
}
