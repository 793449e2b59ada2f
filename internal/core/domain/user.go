package domain

import (
	"slices"
	"time"
)

// Role is a named permission granted to a user.
type Role string

const (
	RoleUser  Role = "User"
	RoleAdmin Role = "Admin"
)

// User represents an account holder in the domain.
type User struct {
	UserID       string `json:"userID"`
	FullName     string `json:"fullname"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Roles        []Role `json:"role"`

	// RefreshTokenHash is the digest of the single live refresh token; nil after logout.
	RefreshTokenHash *string `json:"-"`

	ResetCode       *string    `json:"-"`
	ResetCodeExpiry *time.Time `json:"-"`

	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}

// HasRole reports whether the user holds role r.
func (u *User) HasRole(r Role) bool {
	return slices.Contains(u.Roles, r)
}

// IsAdmin reports whether the user holds the Admin role.
func (u *User) IsAdmin() bool {
	return u.HasRole(RoleAdmin)
}

// IsDeleted reports whether the user has been soft-deleted.
func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}

// ResetCodeValidAt reports whether code matches the stored reset code and has not expired at t.
// The code stops being valid at exactly its expiry instant.
func (u *User) ResetCodeValidAt(code string, t time.Time) bool {
	if u.ResetCode == nil || u.ResetCodeExpiry == nil || code == "" {
		return false
	}
	return *u.ResetCode == code && t.Before(*u.ResetCodeExpiry)
}
