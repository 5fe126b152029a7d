package domain

// Comment is a user's comment on a video.
type Comment struct {
	CommentID string       `json:"_id"`
	VideoID   string       `json:"video"`
	OwnerID   string       `json:"ownerId"`
	Content   string       `json:"content"`
	Owner     *UserSummary `json:"owner,omitempty"`
	Timestamps
}
