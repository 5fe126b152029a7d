package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Video is a row of the videos table.
type Video struct {
	VideoID     string          `db:"id"`
	OwnerID     string          `db:"owner_id"`
	Title       string          `db:"title"`
	Description string          `db:"description"`
	VideoFile   MediaColumns    // video_url, video_public_id, video_resource_type
	Thumbnail   MediaColumns    // thumbnail_url, thumbnail_public_id, thumbnail_resource_type
	Duration    decimal.Decimal `db:"duration"`
	Views       int64           `db:"views"`
	IsPublished bool            `db:"is_published"`
	Timestamps
}

// WatchHistoryEntry is a row of the watch_history table.
type WatchHistoryEntry struct {
	UserID    string    `db:"user_id"`
	VideoID   string    `db:"video_id"`
	WatchedAt time.Time `db:"watched_at"`
}
