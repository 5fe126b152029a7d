package minio

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	minioLib "github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/videotube_backend/internal/apperrors"
	"github.com/SscSPs/videotube_backend/internal/core/domain"
)

// fakeMinio implements minioAPI for testing without network.
type fakeMinio struct {
	bucketExists    bool
	bucketExistsErr error
	makeBucketErr   error
	madeBucket      string
	putErr          error
	putKey          string
	putBody         string
	putSize         int64
	putContentType  string
	removeErr       error
	removedKey      string
}

func (f *fakeMinio) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	return f.bucketExists, f.bucketExistsErr
}

func (f *fakeMinio) MakeBucket(ctx context.Context, bucketName string, opts minioLib.MakeBucketOptions) error {
	f.madeBucket = bucketName
	return f.makeBucketErr
}

func (f *fakeMinio) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minioLib.PutObjectOptions) (minioLib.UploadInfo, error) {
	if f.putErr != nil {
		return minioLib.UploadInfo{}, f.putErr
	}
	b, _ := io.ReadAll(reader)
	f.putKey = objectName
	f.putBody = string(b)
	f.putSize = objectSize
	f.putContentType = opts.ContentType
	return minioLib.UploadInfo{Bucket: bucketName, Key: objectName, Size: int64(len(b))}, nil
}

func (f *fakeMinio) RemoveObject(ctx context.Context, bucketName, objectName string, opts minioLib.RemoveObjectOptions) error {
	f.removedKey = objectName
	return f.removeErr
}

func TestNewWithAPI_CreatesMissingBucket(t *testing.T) {
	fake := &fakeMinio{}
	_, err := NewWithAPI(context.Background(), fake, "media", "http://localhost:9000/media")
	require.NoError(t, err)
	assert.Equal(t, "media", fake.madeBucket)
}

func TestNewWithAPI_Errors(t *testing.T) {
	_, err := NewWithAPI(context.Background(), &fakeMinio{bucketExistsErr: errors.New("down")}, "media", "")
	assert.Error(t, err)

	_, err = NewWithAPI(context.Background(), &fakeMinio{makeBucketErr: errors.New("denied")}, "media", "")
	assert.Error(t, err)
}

func TestUpload(t *testing.T) {
	fake := &fakeMinio{bucketExists: true}
	s, err := NewWithAPI(context.Background(), fake, "media", "http://cdn.local/media/")
	require.NoError(t, err)

	asset, err := s.Upload(context.Background(), domain.UploadFile{
		FileName:    "clip.mp4",
		ContentType: "video/mp4",
		Kind:        domain.MediaKindVideo,
		Size:        4,
		Content:     strings.NewReader("data"),
	})
	require.NoError(t, err)
	assert.Empty(t, fake.madeBucket)
	assert.True(t, strings.HasPrefix(fake.putKey, "videos/"))
	assert.True(t, strings.HasSuffix(fake.putKey, ".mp4"))
	assert.Equal(t, "data", fake.putBody)
	assert.EqualValues(t, 4, fake.putSize)
	assert.Equal(t, "video/mp4", fake.putContentType)
	assert.Equal(t, fake.putKey, asset.PublicID)
	assert.Equal(t, "http://cdn.local/media/"+fake.putKey, asset.URL)
	assert.Equal(t, domain.MediaKindVideo, asset.ResourceType)
}

func TestUpload_Failure(t *testing.T) {
	s, err := NewWithAPI(context.Background(), &fakeMinio{bucketExists: true, putErr: errors.New("io")}, "media", "")
	require.NoError(t, err)

	_, err = s.Upload(context.Background(), domain.UploadFile{FileName: "a.png", Content: strings.NewReader("x")})
	assert.ErrorIs(t, err, apperrors.ErrMediaUpload)

	_, err = s.Upload(context.Background(), domain.UploadFile{FileName: "a.png"})
	assert.ErrorIs(t, err, apperrors.ErrMediaUpload)
}

func TestDelete(t *testing.T) {
	fake := &fakeMinio{bucketExists: true}
	s, err := NewWithAPI(context.Background(), fake, "media", "")
	require.NoError(t, err)

	res, err := s.Delete(context.Background(), domain.MediaAsset{PublicID: "images/2024/01/x.png"})
	require.NoError(t, err)
	assert.Equal(t, "ok", res.Result)
	assert.Equal(t, "images/2024/01/x.png", fake.removedKey)

	fake.removeErr = errors.New("denied")
	_, err = s.Delete(context.Background(), domain.MediaAsset{PublicID: "k"})
	assert.Error(t, err)
}
