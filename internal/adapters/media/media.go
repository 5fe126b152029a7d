// Package media selects the media storage backend from configuration.
package media

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/videotube_backend/internal/adapters/media/cloudinary"
	"github.com/SscSPs/videotube_backend/internal/adapters/media/minio"
	"github.com/SscSPs/videotube_backend/internal/adapters/media/s3"
	portssvc "github.com/SscSPs/videotube_backend/internal/core/ports/services"
	"github.com/SscSPs/videotube_backend/internal/platform/config"
)

// NewStorage builds the backend named by cfg.Backend.
func NewStorage(ctx context.Context, cfg config.MediaConfig) (portssvc.MediaStorage, error) {
	slog.Info("Initializing media storage", "backend", cfg.Backend)

	var (
		storage portssvc.MediaStorage
		err     error
	)
	switch cfg.Backend {
	case config.MediaBackendCloudinary:
		storage, err = asStorage(cloudinary.New(cfg.Cloudinary))
	case config.MediaBackendMinio:
		storage, err = asStorage(minio.New(ctx, cfg.Minio))
	case config.MediaBackendS3:
		storage, err = asStorage(s3.New(ctx, cfg.S3))
	default:
		return nil, fmt.Errorf("unknown media backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize %s media storage: %w", cfg.Backend, err)
	}
	return storage, nil
}

// asStorage drops the typed nil a failed constructor returns.
func asStorage[T portssvc.MediaStorage](s T, err error) (portssvc.MediaStorage, error) {
	if err != nil {
		return nil, err
	}
	return s, nil
}
