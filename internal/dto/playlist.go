package dto

// CreatePlaylistRequest defines data for creating a new playlist.
type CreatePlaylistRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Description string `json:"description"`
}

// UpdatePlaylistRequest defines data for renaming a playlist.
type UpdatePlaylistRequest struct {
	Name        string  `json:"name" binding:"required,max=200"`
	Description *string `json:"description"`
}
