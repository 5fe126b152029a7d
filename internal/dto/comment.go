package dto

// CommentRequest is the body for adding or editing a comment.
type CommentRequest struct {
	Content string `json:"content" binding:"required"`
}
