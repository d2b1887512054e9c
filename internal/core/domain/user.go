package domain

import (
	"strings"
	"time"
)

// RoleAdmin is the only elevated role. Regular users carry an empty role.
const RoleAdmin = "admin"

// User models an account in the directory. Email is the identity key.
type User struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email"`
	Role      string    `json:"role,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// UpsertResult reports the outcome of an idempotent first-login insert.
type UpsertResult struct {
	ID      string `json:"insertedId"`
	Created bool   `json:"created"`
}

// NormalizeEmail lower-cases and trims an email so lookups and ownership
// comparisons agree.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
