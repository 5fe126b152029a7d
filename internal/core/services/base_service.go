package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/videotube_backend/internal/apperrors"
	"github.com/SscSPs/videotube_backend/internal/core/domain"
	portssvc "github.com/SscSPs/videotube_backend/internal/core/ports/services"
	"github.com/SscSPs/videotube_backend/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.ErrorContext(ctx, msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).InfoContext(ctx, msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).DebugContext(ctx, msg, keyvals...)
}

// AuthorizeOwner returns a 403 error unless the caller owns the resource.
func (s *BaseService) AuthorizeOwner(ctx context.Context, ownerID, userID, resource string) error {
	if ownerID == userID {
		return nil
	}
	s.LogDebug(ctx, "Ownership check failed",
		slog.String("resource", resource),
		slog.String("owner_id", ownerID),
		slog.String("user_id", userID))
	return apperrors.NewForbiddenError("You are not allowed to modify this " + resource)
}

// deleteAssetBestEffort deletes a media asset and reports the outcome instead of failing.
// Assets without a public id (external avatar URLs) are skipped.
func (s *BaseService) deleteAssetBestEffort(ctx context.Context, media portssvc.MediaStorage, asset domain.MediaAsset) *domain.MediaDeleteResult {
	if asset.PublicID == "" {
		return nil
	}
	result, err := media.Delete(ctx, asset)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete media asset", slog.String("public_id", asset.PublicID))
		return &domain.MediaDeleteResult{PublicID: asset.PublicID, Result: "error", Error: err.Error()}
	}
	return result
}
