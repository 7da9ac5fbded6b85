// model/access.go
package model

import "time"

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
)

// Valid reports whether r is one of the assignable roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleModerator:
		return true
	}
	return false
}

type RoleAssignment struct {
	UserID    string    `json:"user_id"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
