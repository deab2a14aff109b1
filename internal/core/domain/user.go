// internal/core/domain/user.go
package domain

import (
	"errors"
	"strings"
	"time"
)

// Role represents a dashboard user role
type Role string

// Role constants
const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// User represents a dashboard user account.
type User struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone,omitempty"`
	Role      Role       `json:"role"`
	Active    bool       `json:"active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// UserFromPayload builds a User from a loosely-typed API record. It errors
// only when the payload itself is absent. An unknown role falls back to
// staff, the least privileged role.
func UserFromPayload(p Payload) (*User, error) {
	if p == nil {
		return nil, errors.New("user payload is nil")
	}
	u := &User{
		ID:        p.id("id", "user_id", "userId"),
		Name:      p.str("name", "full_name", "fullName", "username"),
		Email:     p.str("email"),
		Phone:     p.str("phone", "phone_number", "phoneNumber"),
		Role:      Role(p.str("role")),
		Active:    p.boolean("active", "is_active", "isActive"),
		CreatedAt: p.timestamp("created_at", "createdAt"),
		UpdatedAt: p.timestamp("updated_at", "updatedAt"),
	}
	if u.Role != RoleAdmin && u.Role != RoleStaff {
		u.Role = RoleStaff
	}
	if t := p.timestamp("deleted_at", "deletedAt"); !t.IsZero() {
		u.DeletedAt = &t
	}
	return u, nil
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool { return u != nil && u.Role == RoleAdmin }

// IsValid reports whether the record satisfies the required-field and format
// checks enforced before a create/update call is issued.
func (u *User) IsValid() bool {
	if strings.TrimSpace(u.Name) == "" {
		return false
	}
	if !ValidEmail(u.Email) {
		return false
	}
	if u.Phone != "" && !ValidPhone(u.Phone) {
		return false
	}
	return true
}
