package utils

import (
	"errors" // Error construction
	"fmt"    // Error wrapping
	"time"   // Token lifetimes

	"github.com/golang-jwt/jwt/v5" // JWT library
)

// ErrInvalidToken is returned for any token that fails parsing or validation
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims carried by a session token
type Claims struct {
	UserID               uint   `json:"user_id"` // Authenticated user
	Name                 string `json:"name"`    // Display name at login time
	Role                 string `json:"role"`    // Role at login time
	jwt.RegisteredClaims        // Standard JWT claims, ID holds the session id
}

// GenerateJWT signs a token for the given session. The expiry is absolute.
func GenerateJWT(claims Claims, sessionID, issuer, secret string, issuedAt, expiresAt time.Time) (string, error) {
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ID:        sessionID,                     // Binds the token to one server-side session
		Subject:   fmt.Sprint(claims.UserID),     // Subject mirrors the user id
		Issuer:    issuer,                        // Checked on parse
		IssuedAt:  jwt.NewNumericDate(issuedAt),  // Issuance time
		ExpiresAt: jwt.NewNumericDate(expiresAt), // Fixed expiry, not sliding
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims) // Create token with claims
	return token.SignedString([]byte(secret))                  // Sign the token with the secret
}

// ParseJWT parses and validates a token string. Any failure is reported as ErrInvalidToken.
func ParseJWT(tokenStr, issuer, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(secret), nil // Return the secret key for validation
	}, jwt.WithIssuer(issuer), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.ID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
