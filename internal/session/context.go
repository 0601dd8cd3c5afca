package session

import (
	"context"

	"employee_management/internal/domain"
)

type principalKey struct{}

// WithPrincipal returns a copy of ctx carrying p
func WithPrincipal(ctx context.Context, p domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// CurrentUser returns the principal carried by ctx, or nil when the request is unauthenticated
func CurrentUser(ctx context.Context) *domain.Principal {
	p, ok := ctx.Value(principalKey{}).(domain.Principal)
	if !ok {
		return nil
	}
	return &p
}

// HasRole reports whether ctx carries a principal holding role
func HasRole(ctx context.Context, role domain.Role) bool {
	p := CurrentUser(ctx)
	return p != nil && p.Role == role
}
