package domain

// Reaction is the kind of reaction a user leaves on a video or comment.
type Reaction string

const (
	ReactionLike    Reaction = "like"
	ReactionDislike Reaction = "dislike"
)

// Valid reports whether r is a known reaction.
func (r Reaction) Valid() bool {
	return r == ReactionLike || r == ReactionDislike
}

// LikeTarget tells which kind of resource a like points at.
type LikeTarget string

const (
	LikeTargetVideo   LikeTarget = "video"
	LikeTargetComment LikeTarget = "comment"
)

// Like is one user's reaction on exactly one video or comment.
type Like struct {
	LikeID    string   `json:"_id"`
	VideoID   *string  `json:"video,omitempty"`
	CommentID *string  `json:"comment,omitempty"`
	LikedBy   string   `json:"likedBy"`
	Reaction  Reaction `json:"reaction"`
	Timestamps
}

// LikedVideo is a video the user liked, with the time of the reaction.
type LikedVideo struct {
	LikeID string `json:"_id"`
	Video  Video  `json:"video"`
	Timestamps
}
