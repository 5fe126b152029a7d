package services

import (
	portsrepo "github.com/SscSPs/videotube_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/videotube_backend/internal/core/ports/services"
	"github.com/SscSPs/videotube_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, media portssvc.MediaStorage) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Token = NewTokenService(cfg)

	var sessionOpts []SessionServiceOption
	if cfg.GoogleClientID != "" {
		sessionOpts = append(sessionOpts, WithGoogleOAuth(NewGoogleOAuthService(cfg)))
	}
	container.Session = NewSessionService(cfg, repos.UserRepo, container.Token, sessionOpts...)

	container.User = NewUserService(repos.UserRepo, media)
	container.Video = NewVideoService(repos.VideoRepo, media)
	container.Comment = NewCommentService(repos.CommentRepo, repos.VideoRepo)
	container.Like = NewLikeService(repos.LikeRepo)
	container.Playlist = NewPlaylistService(repos.PlaylistRepo)
	container.Subscription = NewSubscriptionService(repos.SubscriptionRepo, repos.UserRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.TokenSvcFacade = (*tokenService)(nil)
	_ portssvc.SessionSvc     = (*sessionService)(nil)
	_ portssvc.GoogleOAuthSvc = (*googleOAuthService)(nil)
)
