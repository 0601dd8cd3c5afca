package domain

// Principal is the authenticated identity attached to a session.
// It is built once at login and only read afterwards.
type Principal struct {
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
	Role   Role   `json:"role"`
}
