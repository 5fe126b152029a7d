// Package s3 stores media in an S3-compatible bucket through aws-sdk-go-v2.
package s3

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/SscSPs/videotube_backend/internal/apperrors"
	"github.com/SscSPs/videotube_backend/internal/core/domain"
	portssvc "github.com/SscSPs/videotube_backend/internal/core/ports/services"
	"github.com/SscSPs/videotube_backend/internal/middleware"
	"github.com/SscSPs/videotube_backend/internal/platform/config"
	"github.com/SscSPs/videotube_backend/internal/utils"
)

// objectAPI is the slice of *s3.Client the storage uses.
type objectAPI interface {
	PutObject(ctx context.Context, params *awss3.PutObjectInput, optFns ...func(*awss3.Options)) (*awss3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *awss3.DeleteObjectInput, optFns ...func(*awss3.Options)) (*awss3.DeleteObjectOutput, error)
}

var _ objectAPI = (*awss3.Client)(nil)

// Storage implements portssvc.MediaStorage on an S3 bucket.
type Storage struct {
	api       objectAPI
	bucket    string
	publicURL string
	now       func() time.Time
}

var _ portssvc.MediaStorage = (*Storage)(nil)

// New loads AWS configuration with static credentials when given, falling back to the default chain.
func New(ctx context.Context, cfg config.S3) (*Storage, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := awss3.NewFromConfig(awsCfg, func(o *awss3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	publicURL := cfg.PublicURL
	if publicURL == "" {
		if cfg.Endpoint != "" {
			publicURL = strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
		} else {
			publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
		}
	}
	return NewWithAPI(client, cfg.Bucket, publicURL), nil
}

// NewWithAPI builds a Storage over any objectAPI.
func NewWithAPI(api objectAPI, bucket, publicURL string) *Storage {
	return &Storage{
		api:       api,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
		now:       time.Now,
	}
}

// Upload puts the file under a generated key. Duration is not probed.
func (s *Storage) Upload(ctx context.Context, file domain.UploadFile) (*domain.MediaAsset, error) {
	if file.Content == nil {
		return nil, fmt.Errorf("%w: empty file", apperrors.ErrMediaUpload)
	}
	key := utils.ObjectKey(file.Kind, file.FileName, s.now().UTC())

	input := &awss3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   file.Content,
	}
	if file.ContentType != "" {
		input.ContentType = aws.String(file.ContentType)
	}
	if file.Size > 0 {
		input.ContentLength = aws.Int64(file.Size)
	}
	if _, err := s.api.PutObject(ctx, input); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMediaUpload, err)
	}

	middleware.GetLoggerFromCtx(ctx).DebugContext(ctx, "Uploaded media to s3", slog.String("key", key))

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

// Delete removes the object. S3 reports success for missing keys.
func (s *Storage) Delete(ctx context.Context, asset domain.MediaAsset) (*domain.MediaDeleteResult, error) {
	_, err := s.api.DeleteObject(ctx, &awss3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(asset.PublicID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to delete object %s: %w", asset.PublicID, err)
	}
	return &domain.MediaDeleteResult{PublicID: asset.PublicID, Result: "ok"}, nil
}
