package middleware

import (
	"errors"   // Error inspection
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"employee_management/internal/domain"  // Domain models
	"employee_management/internal/session" // Session manager

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Structured logging
)

// SessionToken returns the session token sent with the request, taken from
// the session cookie first and the Authorization header second
func SessionToken(c *gin.Context, cookieName string) string {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
		return cookie // Browser clients
	}
	authHeader := c.GetHeader("Authorization") // API clients
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// SessionMiddleware resolves the request's session and attaches its principal.
// Requests without a live session continue anonymously; gates further down decide.
func SessionMiddleware(manager *session.Manager, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := SessionToken(c, cookieName)
		if token == "" {
			c.Next() // Anonymous request
			return
		}
		s, err := manager.Resolve(c.Request.Context(), token)
		switch {
		case errors.Is(err, session.ErrInvalidToken), errors.Is(err, session.ErrSessionNotFound):
			c.Next() // Expired, revoked or forged tokens carry no identity
			return
		case err != nil:
			logrus.WithField("error", err.Error()).Error("Session store unavailable")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		p := s.Principal()
		c.Request = c.Request.WithContext(session.WithPrincipal(c.Request.Context(), p)) // Principal for handlers and services
		c.Next()
	}
}

// Principal returns the principal attached by SessionMiddleware, or nil
func Principal(c *gin.Context) *domain.Principal {
	return session.CurrentUser(c.Request.Context())
}
