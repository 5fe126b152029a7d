// Package minio stores media in a MinIO bucket.
package minio

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/SscSPs/videotube_backend/internal/apperrors"
	"github.com/SscSPs/videotube_backend/internal/core/domain"
	portssvc "github.com/SscSPs/videotube_backend/internal/core/ports/services"
	"github.com/SscSPs/videotube_backend/internal/middleware"
	"github.com/SscSPs/videotube_backend/internal/platform/config"
	"github.com/SscSPs/videotube_backend/internal/utils"
)

// minioAPI is the slice of *minio.Client the storage uses.
type minioAPI interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
}

var _ minioAPI = (*minio.Client)(nil)

// Storage implements portssvc.MediaStorage on a MinIO bucket.
type Storage struct {
	api       minioAPI
	bucket    string
	publicURL string
	now       func() time.Time
}

var _ portssvc.MediaStorage = (*Storage)(nil)

// New connects to MinIO and makes sure the bucket exists.
func New(ctx context.Context, cfg config.Minio) (*Storage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	publicURL := cfg.PublicURL
	if publicURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		publicURL = fmt.Sprintf("%s://%s/%s", scheme, cfg.Endpoint, cfg.Bucket)
	}
	return NewWithAPI(ctx, client, cfg.Bucket, publicURL)
}

// NewWithAPI builds a Storage over any minioAPI.
func NewWithAPI(ctx context.Context, api minioAPI, bucket, publicURL string) (*Storage, error) {
	s := &Storage{
		api:       api,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
		now:       time.Now,
	}
	if err := s.ensureBucket(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure bucket exists: %w", err)
	}
	return s, nil
}

func (s *Storage) ensureBucket(ctx context.Context) error {
	exists, err := s.api.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}
	if err := s.api.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	return nil
}

// Upload stores the file under a generated key. Duration is not probed.
func (s *Storage) Upload(ctx context.Context, file domain.UploadFile) (*domain.MediaAsset, error) {
	if file.Content == nil {
		return nil, fmt.Errorf("%w: empty file", apperrors.ErrMediaUpload)
	}
	key := utils.ObjectKey(file.Kind, file.FileName, s.now().UTC())

	size := file.Size
	if size <= 0 {
		size = -1
	}
	info, err := s.api.PutObject(ctx, s.bucket, key, file.Content, size, minio.PutObjectOptions{
		ContentType: file.ContentType,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMediaUpload, err)
	}

	middleware.GetLoggerFromCtx(ctx).DebugContext(ctx, "Uploaded media to minio",
		slog.String("key", key),
		slog.Int64("size", info.Size))

	kind := file.Kind
	if kind == "" {
		kind = domain.MediaKindImage
	}
	return &domain.MediaAsset{
		URL:          s.publicURL + "/" + key,
		PublicID:     key,
		ResourceType: kind,
	}, nil
}

// Delete removes the object. MinIO reports success for missing keys.
func (s *Storage) Delete(ctx context.Context, asset domain.MediaAsset) (*domain.MediaDeleteResult, error) {
	if err := s.api.RemoveObject(ctx, s.bucket, asset.PublicID, minio.RemoveObjectOptions{}); err != nil {
		return nil, fmt.Errorf("failed to delete object %s: %w", asset.PublicID, err)
	}
	return &domain.MediaDeleteResult{PublicID: asset.PublicID, Result: "ok"}, nil
}
