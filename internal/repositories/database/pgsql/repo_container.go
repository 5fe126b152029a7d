package pgsql

import (
	portsrepo "github.com/SscSPs/videotube_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:         newPgxUserRepository(dbPool),
		VideoRepo:        newPgxVideoRepository(dbPool),
		CommentRepo:      newPgxCommentRepository(dbPool),
		LikeRepo:         newPgxLikeRepository(dbPool),
		PlaylistRepo:     newPgxPlaylistRepository(dbPool),
		SubscriptionRepo: newPgxSubscriptionRepository(dbPool),
	}
}
