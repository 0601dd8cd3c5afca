package api

import (
	"context"  // Health check
	"net/http" // HTTP status codes
	"time"     // CORS preflight caching

	"employee_management/internal/domain"     // Domain models
	"employee_management/internal/middleware" // Session, role gate and request logging
	"employee_management/internal/service"    // Core operations
	"employee_management/internal/session"    // Session manager

	"github.com/gin-contrib/cors" // CORS middleware
	"github.com/gin-gonic/gin"    // Gin web framework
)

// RouterConfig holds the transport settings of the HTTP API
type RouterConfig struct {
	Cookie         CookieSettings              // Session cookie
	CORSOrigins    []string                    // Front end origins allowed to send credentials
	TrustedProxies []string                    // Proxies whose forwarding headers are honoured
	Health         func(context.Context) error // Readiness check, nil reports healthy
}

// NewRouter builds the gin engine serving every route
func NewRouter(svc *service.Services, sessions *session.Manager, cfg RouterConfig) (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, err
	}
	if len(cfg.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			AllowCredentials: true, // The session cookie
			MaxAge:           12 * time.Hour,
		}))
	}

	r.GET("/healthz", func(c *gin.Context) {
		if cfg.Health != nil {
			if err := cfg.Health(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := r.Group("/api")
	apiGroup.Use(middleware.SessionMiddleware(sessions, cfg.Cookie.Name))

	// Auth routes
	auth := apiGroup.Group("/auth")
	auth.POST("/login", LoginHandler(svc.Auth, cfg.Cookie))   // Login endpoint
	auth.POST("/logout", LogoutHandler(svc.Auth, cfg.Cookie)) // Logout endpoint
	auth.GET("/me", MeHandler())                              // Current identity

	// Admin routes
	admin := apiGroup.Group("/admin")
	admin.Use(middleware.RequireRole(domain.RoleAdmin))
	admin.GET("/dashboard", AdminDashboardHandler(svc.Dashboard))
	admin.GET("/employees", ListEmployeesHandler(svc.Employees))
	admin.POST("/employees", CreateEmployeeHandler(svc.Employees))
	admin.PUT("/employees/:id", UpdateEmployeeHandler(svc.Employees))
	admin.DELETE("/employees/:id", DeleteEmployeeHandler(svc.Employees))
	admin.GET("/leaves", ListLeavesHandler(svc.Leaves))
	admin.POST("/leaves/:id/respond", RespondLeaveHandler(svc.Leaves))

	// Employee routes
	employee := apiGroup.Group("/employee")
	employee.Use(middleware.RequireRole(domain.RoleEmployee))
	employee.GET("/dashboard", EmployeeDashboardHandler(svc.Dashboard))
	employee.GET("/leaves", MyLeavesHandler(svc.Leaves))
	employee.POST("/leaves", ApplyLeaveHandler(svc.Leaves))

	return r, nil
}
