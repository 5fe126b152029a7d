package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/videotube_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/videotube_backend/internal/core/ports/repositories"
	"github.com/SscSPs/videotube_backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

func (r *PgxUserRepository) findOne(ctx context.Context, op, columns, where string, args ...any) (*domain.User, error) {
	query := `SELECT ` + columns + ` FROM users u WHERE ` + where + ` LIMIT 1`
	m, err := scanUser(r.Pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, mapPgError(err, op)
	}
	u := toDomainUser(*m)
	return &u, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findOne(ctx, "find user by id", userColumns, `u.id = $1`, userID)
}

func (r *PgxUserRepository) FindPublicUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findOne(ctx, "find public user by id", publicUserColumns, `u.id = $1`, userID)
}

func (r *PgxUserRepository) FindUserByLogin(ctx context.Context, username, email string) (*domain.User, error) {
	return r.findOne(ctx, "find user by login", userColumns,
		`($1 <> '' AND u.username = $1) OR ($2 <> '' AND u.email = $2)`, username, email)
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, "find user by email", publicUserColumns, `u.email = $1`, email)
}

func (r *PgxUserRepository) FindUserByProvider(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	return r.findOne(ctx, "find user by provider", publicUserColumns,
		`u.auth_provider = $1 AND u.provider_user_id = $2`, string(provider), providerUserID)
}

func (r *PgxUserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE username = $1 OR email = $2)`,
		username, email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return exists, nil
}

func (r *PgxUserRepository) FindChannelProfile(ctx context.Context, username string, viewerID string) (*domain.ChannelProfile, error) {
	query := `
		SELECT ` + userColumns + `,
			(SELECT COUNT(*) FROM subscriptions s WHERE s.channel_id = u.id),
			(SELECT COUNT(*) FROM subscriptions s WHERE s.subscriber_id = u.id),
			EXISTS (SELECT 1 FROM subscriptions s WHERE s.channel_id = u.id AND s.subscriber_id::text = $2)
		FROM users u
		WHERE u.username = $1;
	`
	var (
		m                         models.User
		subscribers, subscribedTo int64
		isSubscribed              bool
	)
	err := r.Pool.QueryRow(ctx, query, username, viewerID).Scan(
		&m.UserID, &m.Username, &m.Email, &m.FullName, &m.PasswordHash, &m.RefreshToken,
		&m.Avatar.URL, &m.Avatar.PublicID, &m.Avatar.ResourceType,
		&m.CoverImage.URL, &m.CoverImage.PublicID, &m.CoverImage.ResourceType,
		&m.AuthProvider, &m.ProviderUserID, &m.CreatedAt, &m.UpdatedAt,
		&subscribers, &subscribedTo, &isSubscribed,
	)
	if err != nil {
		return nil, mapPgError(err, "find channel profile")
	}
	u := toDomainUser(m)
	return &domain.ChannelProfile{
		UserID:                    u.UserID,
		Username:                  u.Username,
		Email:                     u.Email,
		FullName:                  u.FullName,
		Avatar:                    u.Avatar,
		CoverImage:                u.CoverImage,
		SubscribersCount:          subscribers,
		ChannelsSubscribedToCount: subscribedTo,
		IsSubscribed:              isSubscribed,
	}, nil
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := toModelUser(user)
	query := `
		INSERT INTO users (id, username, email, full_name, password_hash, refresh_token,
			avatar_url, avatar_public_id, avatar_resource_type,
			cover_image_url, cover_image_public_id, cover_image_resource_type,
			auth_provider, provider_user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.UserID, m.Username, m.Email, m.FullName, m.PasswordHash, m.RefreshToken,
		m.Avatar.URL, m.Avatar.PublicID, m.Avatar.ResourceType,
		m.CoverImage.URL, m.CoverImage.PublicID, m.CoverImage.ResourceType,
		m.AuthProvider, m.ProviderUserID, m.CreatedAt, m.UpdatedAt,
	)
	return mapPgError(err, "failed to save user")
}

// updateReturning runs an UPDATE on a single user and returns the public projection.
func (r *PgxUserRepository) updateReturning(ctx context.Context, op, set string, args ...any) (*domain.User, error) {
	query := `UPDATE users u SET ` + set + `, updated_at = NOW() WHERE u.id = $1 RETURNING ` + publicUserColumns
	m, err := scanUser(r.Pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, mapPgError(err, op)
	}
	u := toDomainUser(*m)
	return &u, nil
}

func (r *PgxUserRepository) UpdateAccountDetails(ctx context.Context, userID string, email, fullName string) (*domain.User, error) {
	return r.updateReturning(ctx, "failed to update account details",
		`email = $2, full_name = $3`, userID, email, fullName)
}

func (r *PgxUserRepository) UpdateAvatar(ctx context.Context, userID string, avatar domain.MediaAsset) (*domain.User, error) {
	return r.updateReturning(ctx, "failed to update avatar",
		`avatar_url = $2, avatar_public_id = $3, avatar_resource_type = $4`,
		userID, avatar.URL, avatar.PublicID, string(domain.MediaKindImage))
}

func (r *PgxUserRepository) UpdateCoverImage(ctx context.Context, userID string, cover domain.MediaAsset) (*domain.User, error) {
	return r.updateReturning(ctx, "failed to update cover image",
		`cover_image_url = $2, cover_image_public_id = $3, cover_image_resource_type = $4`,
		userID, cover.URL, cover.PublicID, string(domain.MediaKindImage))
}

// SetRefreshToken touches refresh_token only; updated_at stays untouched so sessions do not
// show up as profile edits.
func (r *PgxUserRepository) SetRefreshToken(ctx context.Context, userID string, token *string) error {
	tag, err := r.Pool.Exec(ctx, `UPDATE users SET refresh_token = $2 WHERE id = $1`, userID, token)
	if err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}
	return requireAffected(tag)
}

func (r *PgxUserRepository) UpdatePasswordHash(ctx context.Context, userID string, passwordHash string, clearSession bool) error {
	query := `
		UPDATE users
		SET password_hash = $2,
			refresh_token = CASE WHEN $3::boolean THEN NULL ELSE refresh_token END,
			updated_at = NOW()
		WHERE id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, userID, passwordHash, clearSession)
	if err != nil {
		return fmt.Errorf("failed to update password hash: %w", err)
	}
	return requireAffected(tag)
}

func (r *PgxUserRepository) ListWatchHistory(ctx context.Context, userID string) ([]domain.WatchedVideo, error) {
	query := `
		SELECT ` + videoColumns + `, wh.watched_at
		FROM watch_history wh
		JOIN videos v ON v.id = wh.video_id
		JOIN users o ON o.id = v.owner_id
		WHERE wh.user_id = $1
		ORDER BY wh.watched_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query watch history: %w", err)
	}
	defer rows.Close()

	history := []domain.WatchedVideo{}
	for rows.Next() {
		var entry models.WatchHistoryEntry
		video, err := scanVideo(rows, &entry.WatchedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan watch history row: %w", err)
		}
		history = append(history, domain.WatchedVideo{Video: *video, WatchedAt: entry.WatchedAt})
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating watch history rows: %w", rows.Err())
	}
	return history, nil
}

func (r *PgxUserRepository) RemoveFromWatchHistory(ctx context.Context, userID, videoID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM watch_history WHERE user_id = $1 AND video_id = $2`, userID, videoID)
	if err != nil {
		return fmt.Errorf("failed to remove watch history entry: %w", err)
	}
	return requireAffected(tag)
}

func (r *PgxUserRepository) ClearWatchHistory(ctx context.Context, userID string) (int64, error) {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM watch_history WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to clear watch history: %w", err)
	}
	return tag.RowsAffected(), nil
}
