package domain

import "time"

// Role differentiates the two independently stored credentials.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Session is the derived per-role authentication state.
type Session struct {
	Role            Role
	IsAuthenticated bool
	ExpiresAt       *time.Time
}
