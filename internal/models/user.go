package models

import "database/sql"

// User is a row of the users table.
type User struct {
	UserID         string         `db:"id"`
	Username       string         `db:"username"`
	Email          string         `db:"email"`
	FullName       string         `db:"full_name"`
	PasswordHash   string         `db:"password_hash"`
	RefreshToken   sql.NullString `db:"refresh_token"` // SHA-256 digest of the current refresh token
	Avatar         MediaColumns
	CoverImage     NullableMediaColumns
	AuthProvider   string         `db:"auth_provider"`
	ProviderUserID sql.NullString `db:"provider_user_id"`
	Timestamps
}

// UserSummary is the owner projection joined into other queries.
type UserSummary struct {
	UserID   string `db:"owner_id"`
	Username string `db:"owner_username"`
	FullName string `db:"owner_full_name"`
	Avatar   MediaColumns
}
