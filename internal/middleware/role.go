package middleware

import (
	"errors"   // Error inspection
	"net/http" // HTTP status codes

	"employee_management/internal/authz"  // Authorization gate
	"employee_management/internal/domain" // Domain models

	"github.com/gin-gonic/gin" // Gin web framework
)

// RequireRole lets a request through only when its principal holds role.
// Anonymous requests get 401, principals of another role get 403.
func RequireRole(role domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := authz.RequireRole(Principal(c), role)
		switch {
		case err == nil:
			c.Next() // Allowed
		case errors.Is(err, authz.ErrUnauthenticated):
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		default:
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		}
	}
}
