package domain

// Playlist is an ordered, owner-scoped collection of videos.
type Playlist struct {
	PlaylistID  string       `json:"_id"`
	OwnerID     string       `json:"ownerId"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	VideoIDs    []string     `json:"videos"`
	Owner       *UserSummary `json:"owner,omitempty"`
	Timestamps
}

// PlaylistDetails is a playlist with its videos and owner expanded.
type PlaylistDetails struct {
	Playlist
	Videos []Video `json:"videos"`
}
