package pgsql

import (
	"database/sql"

	"github.com/SscSPs/videotube_backend/internal/core/domain"
	"github.com/SscSPs/videotube_backend/internal/models"
)

// userColumns selects every users column in models.User scan order.
const userColumns = `u.id, u.username, u.email, u.full_name, u.password_hash, u.refresh_token,
	u.avatar_url, u.avatar_public_id, u.avatar_resource_type,
	u.cover_image_url, u.cover_image_public_id, u.cover_image_resource_type,
	u.auth_provider, u.provider_user_id, u.created_at, u.updated_at`

// publicUserColumns matches userColumns with the secret hash and the session digest blanked.
const publicUserColumns = `u.id, u.username, u.email, u.full_name, '' AS password_hash, NULL::text AS refresh_token,
	u.avatar_url, u.avatar_public_id, u.avatar_resource_type,
	u.cover_image_url, u.cover_image_public_id, u.cover_image_resource_type,
	u.auth_provider, u.provider_user_id, u.created_at, u.updated_at`

// ownerColumns is the owner summary joined as alias o.
const ownerColumns = `o.id, o.username, o.full_name, o.avatar_url, o.avatar_public_id, o.avatar_resource_type`

// videoColumns selects a video with its owner (alias o) in scanVideo order.
const videoColumns = `v.id, v.owner_id, v.title, v.description,
	v.video_url, v.video_public_id, v.video_resource_type,
	v.thumbnail_url, v.thumbnail_public_id, v.thumbnail_resource_type,
	v.duration, v.views, v.is_published, v.created_at, v.updated_at, ` + ownerColumns

const videoFrom = `FROM videos v JOIN users o ON o.id = v.owner_id`

// rowScanner is satisfied by pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*models.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID, &m.Username, &m.Email, &m.FullName, &m.PasswordHash, &m.RefreshToken,
		&m.Avatar.URL, &m.Avatar.PublicID, &m.Avatar.ResourceType,
		&m.CoverImage.URL, &m.CoverImage.PublicID, &m.CoverImage.ResourceType,
		&m.AuthProvider, &m.ProviderUserID, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func ownerDest(m *models.UserSummary) []any {
	return []any{&m.UserID, &m.Username, &m.FullName, &m.Avatar.URL, &m.Avatar.PublicID, &m.Avatar.ResourceType}
}

func videoDest(m *models.Video, owner *models.UserSummary) []any {
	dest := []any{
		&m.VideoID, &m.OwnerID, &m.Title, &m.Description,
		&m.VideoFile.URL, &m.VideoFile.PublicID, &m.VideoFile.ResourceType,
		&m.Thumbnail.URL, &m.Thumbnail.PublicID, &m.Thumbnail.ResourceType,
		&m.Duration, &m.Views, &m.IsPublished, &m.CreatedAt, &m.UpdatedAt,
	}
	return append(dest, ownerDest(owner)...)
}

// scanVideo scans videoColumns followed by any extra destinations.
func scanVideo(row rowScanner, extra ...any) (*domain.Video, error) {
	var m models.Video
	var owner models.UserSummary
	if err := row.Scan(append(videoDest(&m, &owner), extra...)...); err != nil {
		return nil, err
	}
	v := toDomainVideo(m, owner)
	return &v, nil
}

func toDomainMedia(m models.MediaColumns) domain.MediaAsset {
	return domain.MediaAsset{URL: m.URL, PublicID: m.PublicID, ResourceType: domain.MediaKind(m.ResourceType)}
}

func toNullableDomainMedia(m models.NullableMediaColumns) *domain.MediaAsset {
	if m.URL == nil || *m.URL == "" {
		return nil
	}
	asset := domain.MediaAsset{URL: *m.URL}
	if m.PublicID != nil {
		asset.PublicID = *m.PublicID
	}
	if m.ResourceType != nil {
		asset.ResourceType = domain.MediaKind(*m.ResourceType)
	}
	return &asset
}

func toModelNullableMedia(a *domain.MediaAsset) models.NullableMediaColumns {
	if a == nil || a.IsZero() {
		return models.NullableMediaColumns{}
	}
	kind := string(a.ResourceType)
	return models.NullableMediaColumns{URL: &a.URL, PublicID: &a.PublicID, ResourceType: &kind}
}

func toDomainUser(m models.User) domain.User {
	u := domain.User{
		UserID:       m.UserID,
		Username:     m.Username,
		Email:        m.Email,
		FullName:     m.FullName,
		Avatar:       toDomainMedia(m.Avatar),
		CoverImage:   toNullableDomainMedia(m.CoverImage),
		AuthProvider: domain.AuthProvider(m.AuthProvider),
		PasswordHash: m.PasswordHash,
		Timestamps:   domain.Timestamps{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
	}
	if m.RefreshToken.Valid {
		token := m.RefreshToken.String
		u.RefreshToken = &token
	}
	if m.ProviderUserID.Valid {
		sub := m.ProviderUserID.String
		u.ProviderUserID = &sub
	}
	return u
}

func toModelUser(d domain.User) models.User {
	m := models.User{
		UserID:       d.UserID,
		Username:     d.Username,
		Email:        d.Email,
		FullName:     d.FullName,
		PasswordHash: d.PasswordHash,
		Avatar: models.MediaColumns{
			URL:          d.Avatar.URL,
			PublicID:     d.Avatar.PublicID,
			ResourceType: string(d.Avatar.ResourceType),
		},
		CoverImage:   toModelNullableMedia(d.CoverImage),
		AuthProvider: string(d.AuthProvider),
		Timestamps:   models.Timestamps{CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt},
	}
	if m.AuthProvider == "" {
		m.AuthProvider = string(domain.ProviderLocal)
	}
	if m.Avatar.ResourceType == "" {
		m.Avatar.ResourceType = string(domain.MediaKindImage)
	}
	if d.RefreshToken != nil {
		m.RefreshToken = sql.NullString{String: *d.RefreshToken, Valid: true}
	}
	if d.ProviderUserID != nil {
		m.ProviderUserID = sql.NullString{String: *d.ProviderUserID, Valid: true}
	}
	return m
}

func toDomainSummary(m models.UserSummary) *domain.UserSummary {
	avatar := toDomainMedia(m.Avatar)
	return &domain.UserSummary{UserID: m.UserID, Username: m.Username, FullName: m.FullName, Avatar: &avatar}
}

func toDomainVideo(m models.Video, owner models.UserSummary) domain.Video {
	return domain.Video{
		VideoID:     m.VideoID,
		OwnerID:     m.OwnerID,
		Title:       m.Title,
		Description: m.Description,
		VideoFile:   toDomainMedia(m.VideoFile),
		Thumbnail:   toDomainMedia(m.Thumbnail),
		Duration:    m.Duration,
		Views:       m.Views,
		IsPublished: m.IsPublished,
		Owner:       toDomainSummary(owner),
		Timestamps:  domain.Timestamps{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
	}
}
