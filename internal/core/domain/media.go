package domain

import (
	"io"

	"github.com/shopspring/decimal"
)

// MediaKind tells the storage backend how to treat an asset.
type MediaKind string

const (
	MediaKindImage MediaKind = "image"
	MediaKindVideo MediaKind = "video"
)

// MediaAsset references a file held by the media storage backend.
type MediaAsset struct {
	URL          string    `json:"url"`
	PublicID     string    `json:"public_id"`
	ResourceType MediaKind `json:"resource_type,omitempty"`
	// Duration is reported for video assets only.
	Duration decimal.Decimal `json:"-"`
}

// IsZero reports whether the asset references nothing.
func (a MediaAsset) IsZero() bool {
	return a.URL == "" && a.PublicID == ""
}

// UploadFile is an inbound file ready to be streamed to the media storage backend.
type UploadFile struct {
	FieldName   string
	FileName    string
	ContentType string
	Size        int64
	Kind        MediaKind
	Content     io.Reader
}

// MediaDeleteResult reports the outcome of a best-effort asset deletion.
type MediaDeleteResult struct {
	PublicID string `json:"public_id"`
	Result   string `json:"result"`
	Error    string `json:"error,omitempty"`
}
