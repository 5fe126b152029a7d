package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Token        TokenSvcFacade
	Session      SessionSvc
	User         UserSvcFacade
	Video        VideoSvcFacade
	Comment      CommentSvcFacade
	Like         LikeSvcFacade
	Playlist     PlaylistSvcFacade
	Subscription SubscriptionSvcFacade
}
