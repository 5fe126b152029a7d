package services

import (
	"context"

	"github.com/SscSPs/videotube_backend/internal/core/domain"
)

// SubscriptionSvcFacade defines channel subscription operations.
type SubscriptionSvcFacade interface {
	// ToggleSubscription subscribes when not subscribed and unsubscribes otherwise.
	// The returned subscription is nil after unsubscribing.
	ToggleSubscription(ctx context.Context, subscriberID, channelID string) (*domain.Subscription, error)

	GetChannelSubscribers(ctx context.Context, channelID string) ([]domain.Subscription, error)
	GetSubscribedChannels(ctx context.Context, subscriberID string) ([]domain.Subscription, error)
}
