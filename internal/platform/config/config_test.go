package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PGSQL_URL", "postgres://localhost/videotube")
	t.Setenv("MEDIA_BACKEND", MediaBackendCloudinary)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.AccessTokenExpiry)
	assert.Equal(t, 10*24*time.Hour, cfg.RefreshTokenExpiry)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, "5-M", cfg.LoginRateLimit)
	assert.EqualValues(t, 20*1024, cfg.JSONBodyLimitBytes)
	assert.EqualValues(t, 100<<20, cfg.MaxUploadBytes)
	assert.True(t, cfg.CookieSecure)
	assert.False(t, cfg.RevokeSessionsOnPasswordChange)
	assert.NotEqual(t, cfg.AccessTokenSecret, cfg.RefreshTokenSecret)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_EXPIRY", "15m")
	t.Setenv("REFRESH_TOKEN_EXPIRY", "not-a-duration")
	t.Setenv("CORS_ORIGIN", "https://a.example, https://b.example")
	t.Setenv("COOKIE_SECURE", "false")
	t.Setenv("REVOKE_SESSIONS_ON_PASSWORD_CHANGE", "true")
	t.Setenv("MEDIA_BACKEND", MediaBackendMinio)
	t.Setenv("MINIO_BUCKET", "clips")
	t.Setenv("MAX_UPLOAD_BYTES", "1048576")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 15*time.Minute, cfg.AccessTokenExpiry)
	assert.Equal(t, 10*24*time.Hour, cfg.RefreshTokenExpiry)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.False(t, cfg.CookieSecure)
	assert.True(t, cfg.RevokeSessionsOnPasswordChange)
	assert.EqualValues(t, 1<<20, cfg.MaxUploadBytes)
	assert.Equal(t, MediaBackendMinio, cfg.Media.Backend)
	assert.Equal(t, "clips", cfg.Media.Minio.Bucket)
	assert.Equal(t, "localhost:9000", cfg.Media.Minio.Endpoint)
}

func TestLoadMediaConfig_UnknownBackend(t *testing.T) {
	t.Setenv("MEDIA_BACKEND", "ftp")

	_, err := LoadMediaConfig()
	assert.ErrorContains(t, err, "unknown MEDIA_BACKEND")
}
