package repositories

import (
	"context"

	"github.com/SscSPs/videotube_backend/internal/core/domain"
)

// SubscriptionRepositoryFacade defines persistence for channel subscriptions.
type SubscriptionRepositoryFacade interface {
	// CreateSubscription inserts a subscription. An existing pair yields apperrors.ErrDuplicate.
	CreateSubscription(ctx context.Context, sub domain.Subscription) error

	// DeleteSubscription removes the pair. Returns false when it did not exist.
	DeleteSubscription(ctx context.Context, subscriberID, channelID string) (bool, error)

	ListSubscribers(ctx context.Context, channelID string) ([]domain.Subscription, error)
	ListSubscribedChannels(ctx context.Context, subscriberID string) ([]domain.Subscription, error)
}
