package domain

import "strings"

// AuthProvider identifies how a user signs in.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "local"
	ProviderGoogle AuthProvider = "google"
)

// User is the identity record. PasswordHash and RefreshToken never leave the server.
type User struct {
	UserID         string       `json:"_id"`
	Username       string       `json:"username"`
	Email          string       `json:"email"`
	FullName       string       `json:"fullName"`
	Avatar         MediaAsset   `json:"avatar"`
	CoverImage     *MediaAsset  `json:"coverImage,omitempty"`
	AuthProvider   AuthProvider `json:"authProvider"`
	ProviderUserID *string      `json:"-"`
	PasswordHash   string       `json:"-"`
	RefreshToken   *string      `json:"-"`
	Timestamps
}

// Sanitized returns a copy with the secret and the stored session token stripped.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	u.RefreshToken = nil
	u.ProviderUserID = nil
	return u
}

// Summary returns the public projection used when embedding the user elsewhere.
func (u User) Summary() UserSummary {
	avatar := u.Avatar
	return UserSummary{
		UserID:   u.UserID,
		Username: u.Username,
		FullName: u.FullName,
		Avatar:   &avatar,
	}
}

// NormalizeIdentifier trims and lowercases a username or email.
func NormalizeIdentifier(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ChannelProfile is a user seen as a channel, with subscription counters.
type ChannelProfile struct {
	UserID                    string      `json:"_id"`
	Username                  string      `json:"username"`
	Email                     string      `json:"email"`
	FullName                  string      `json:"fullName"`
	Avatar                    MediaAsset  `json:"avatar"`
	CoverImage                *MediaAsset `json:"coverImage,omitempty"`
	SubscribersCount          int64       `json:"subscribersCount"`
	ChannelsSubscribedToCount int64       `json:"channelsSubscribedToCount"`
	IsSubscribed              bool        `json:"isSubscribed"`
}

// GoogleUserInfo holds the claims read from a verified Google ID token.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
