package models

import "database/sql"

// Comment is a row of the comments table.
type Comment struct {
	CommentID string `db:"id"`
	VideoID   string `db:"video_id"`
	OwnerID   string `db:"owner_id"`
	Content   string `db:"content"`
	Timestamps
}

// Like is a row of the likes table. Exactly one of VideoID and CommentID is set.
type Like struct {
	LikeID    string         `db:"id"`
	VideoID   sql.NullString `db:"video_id"`
	CommentID sql.NullString `db:"comment_id"`
	LikedBy   string         `db:"liked_by"`
	Reaction  string         `db:"reaction"`
	Timestamps
}

// Playlist is a row of the playlists table.
type Playlist struct {
	PlaylistID  string `db:"id"`
	OwnerID     string `db:"owner_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Timestamps
}

// Subscription is a row of the subscriptions table.
type Subscription struct {
	SubscriptionID string `db:"id"`
	SubscriberID   string `db:"subscriber_id"`
	ChannelID      string `db:"channel_id"`
	Timestamps
}
