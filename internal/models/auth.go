package models

import "github.com/golang-jwt/jwt/v5"

// Role represents the access level carried in an access token.
type Role string

const (
	RolePlanner  Role = "PLANNER"
	RoleEmployee Role = "EMPLOYEE"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RolePlanner || r == RoleEmployee
}

// JWTClaims represents the access token payload. Subject holds the employee
// name for EMPLOYEE tokens.
type JWTClaims struct {
	Role Role `json:"role"`
	jwt.RegisteredClaims
}
