package dto

import (
	"time"

	"github.com/SscSPs/videotube_backend/internal/core/domain"
)

// --- User DTOs ---

// RegisterUserRequest carries the text fields of the multipart registration form.
type RegisterUserRequest struct {
	Username string `form:"username" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
	FullName string `form:"fullName" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// UpdateAccountDetailsRequest defines the data allowed for updating account details.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateAccountDetailsRequest struct {
	Email    *string `json:"email" binding:"omitempty,email"`
	FullName *string `json:"fullName"`
}

// UserResponse is the sanitized user returned to clients.
type UserResponse struct {
	UserID       string             `json:"_id"`
	Username     string             `json:"username"`
	Email        string             `json:"email"`
	FullName     string             `json:"fullName"`
	Avatar       domain.MediaAsset  `json:"avatar"`
	CoverImage   *domain.MediaAsset `json:"coverImage,omitempty"`
	AuthProvider string             `json:"authProvider"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

// ToUserResponse converts domain.User to DTO. The secret hash and refresh token are never copied.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:       u.UserID,
		Username:     u.Username,
		Email:        u.Email,
		FullName:     u.FullName,
		Avatar:       u.Avatar,
		CoverImage:   u.CoverImage,
		AuthProvider: string(u.AuthProvider),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

// UserMediaUpdateResponse is returned after replacing an avatar or cover image.
type UserMediaUpdateResponse struct {
	User         UserResponse              `json:"user"`
	DeleteResult *domain.MediaDeleteResult `json:"deleteResult"`
}
