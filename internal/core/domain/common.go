package domain

import "time"

// Timestamps holds creation and modification times for persisted records.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserSummary is the public projection of a user embedded in other resources.
type UserSummary struct {
	UserID   string      `json:"_id"`
	Username string      `json:"username"`
	FullName string      `json:"fullName"`
	Avatar   *MediaAsset `json:"avatar,omitempty"`
}
