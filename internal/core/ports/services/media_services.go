package services

import (
	"context"

	"github.com/SscSPs/videotube_backend/internal/core/domain"
)

// MediaStorage uploads files to the media host and deletes them.
type MediaStorage interface {
	// Upload streams the file and returns its public URL and identifier.
	Upload(ctx context.Context, file domain.UploadFile) (*domain.MediaAsset, error)

	// Delete removes an asset. The result describes what the backend reported.
	Delete(ctx context.Context, asset domain.MediaAsset) (*domain.MediaDeleteResult, error)
}
