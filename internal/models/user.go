package models

import (
	"database/sql"
	"time"
)

// User is the row shape of the users table.
type User struct {
	UserID       string   `db:"user_id"`
	FullName     string   `db:"fullname"`
	Email        string   `db:"email"`
	PasswordHash string   `db:"password_hash"`
	Roles        []string `db:"roles"`

	RefreshTokenHash sql.NullString `db:"refresh_token_hash"`

	ResetCode          sql.NullString `db:"reset_code"`
	ResetCodeExpiresAt sql.NullTime   `db:"reset_code_expires_at"`

	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
