package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Video is an uploaded video with its thumbnail.
type Video struct {
	VideoID     string          `json:"_id"`
	OwnerID     string          `json:"ownerId"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	VideoFile   MediaAsset      `json:"videoFile"`
	Thumbnail   MediaAsset      `json:"thumbnail"`
	Duration    decimal.Decimal `json:"duration" swaggertype:"string" example:"12.5"`
	Views       int64           `json:"views"`
	IsPublished bool            `json:"isPublished"`
	Owner       *UserSummary    `json:"owner,omitempty"`
	Timestamps
}

// WatchedVideo is an entry of a user's watch history.
type WatchedVideo struct {
	Video
	WatchedAt time.Time `json:"watchedAt"`
}
