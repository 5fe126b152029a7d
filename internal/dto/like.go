package dto

// ToggleReactionRequest sets or clears the caller's reaction. An empty reactionType removes it.
type ToggleReactionRequest struct {
	ReactionType string `json:"reactionType" binding:"omitempty,oneof=like dislike"`
}
