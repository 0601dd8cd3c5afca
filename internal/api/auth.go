package api

import (
	"net/http" // HTTP status codes
	"time"     // Cookie lifetime

	"employee_management/internal/domain"     // Domain models
	"employee_management/internal/middleware" // Session token lookup
	"employee_management/internal/service"    // Core operations

	"github.com/gin-gonic/gin" // Gin web framework
)

// CookieSettings describes the session cookie handed to browsers
type CookieSettings struct {
	Name   string // Cookie name
	Secure bool   // HTTPS only
}

// LoginRequest is the login form
type LoginRequest struct {
	Email    string `json:"email"`    // Login handle
	Password string `json:"password"` // Plaintext, only ever hashed
}

// AuthResponse is returned on a successful login
type AuthResponse struct {
	Token     string           `json:"token"`      // Signed session token
	ExpiresAt time.Time        `json:"expires_at"` // Absolute session expiry
	User      domain.Principal `json:"user"`       // Authenticated identity
	Home      string           `json:"home"`       // Landing area for the role
}

// LoginHandler authenticates a user, opens a session and sets the session cookie
func LoginHandler(auth *service.Authenticator, cookie CookieSettings) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c) // Malformed body
			return
		}
		res, err := auth.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			respondError(c, err) // Validation, invalid login attempt or store failure
			return
		}
		maxAge := int(time.Until(res.ExpiresAt).Seconds()) // Cookie dies with the session
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(cookie.Name, res.Token, maxAge, "/", "", cookie.Secure, true)
		c.JSON(http.StatusOK, AuthResponse{
			Token:     res.Token,
			ExpiresAt: res.ExpiresAt,
			User:      res.Principal,
			Home:      res.Principal.Role.Home(),
		})
	}
}

// LogoutHandler ends the current session. Calling it without a session succeeds.
func LogoutHandler(auth *service.Authenticator, cookie CookieSettings) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := middleware.SessionToken(c, cookie.Name)
		if err := auth.Logout(c.Request.Context(), token); err != nil {
			respondError(c, err) // Session store failure
			return
		}
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(cookie.Name, "", -1, "/", "", cookie.Secure, true) // Drop the cookie
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}

// MeHandler returns the caller's identity and landing area
func MeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		p := middleware.Principal(c)
		if p == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": p, "home": p.Role.Home()})
	}
}
