package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/videotube_backend/internal/apperrors"
	"github.com/SscSPs/videotube_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/videotube_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/videotube_backend/internal/core/ports/services"
	"github.com/google/uuid"
)

type subscriptionService struct {
	BaseService
	subRepo  portsrepo.SubscriptionRepositoryFacade
	userRepo portsrepo.UserReader
}

// NewSubscriptionService creates a new subscription service.
func NewSubscriptionService(subRepo portsrepo.SubscriptionRepositoryFacade, userRepo portsrepo.UserReader) portssvc.SubscriptionSvcFacade {
	return &subscriptionService{subRepo: subRepo, userRepo: userRepo}
}

var _ portssvc.SubscriptionSvcFacade = (*subscriptionService)(nil)

// ToggleSubscription subscribes or unsubscribes the caller from a channel.
func (s *subscriptionService) ToggleSubscription(ctx context.Context, subscriberID, channelID string) (*domain.Subscription, error) {
	if subscriberID == channelID {
		return nil, apperrors.NewValidationError("You cannot subscribe to your own channel")
	}
	if _, err := s.userRepo.FindPublicUserByID(ctx, channelID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Channel not found")
		}
		return nil, fmt.Errorf("failed to get channel: %w", err)
	}

	removed, err := s.subRepo.DeleteSubscription(ctx, subscriberID, channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to remove subscription: %w", err)
	}
	if removed {
		s.LogInfo(ctx, "Unsubscribed", slog.String("channel_id", channelID))
		return nil, nil
	}

	now := time.Now().UTC()
	sub := domain.Subscription{
		SubscriptionID: uuid.NewString(),
		SubscriberID:   subscriberID,
		ChannelID:      channelID,
		Timestamps:     domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
	if err := s.subRepo.CreateSubscription(ctx, sub); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError("Already subscribed")
		}
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}
	s.LogInfo(ctx, "Subscribed", slog.String("channel_id", channelID))
	return &sub, nil
}

// GetChannelSubscribers lists subscribers of a channel.
func (s *subscriptionService) GetChannelSubscribers(ctx context.Context, channelID string) ([]domain.Subscription, error) {
	subs, err := s.subRepo.ListSubscribers(ctx, channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscribers: %w", err)
	}
	if subs == nil {
		subs = []domain.Subscription{}
	}
	return subs, nil
}

// GetSubscribedChannels lists channels a user subscribed to.
func (s *subscriptionService) GetSubscribedChannels(ctx context.Context, subscriberID string) ([]domain.Subscription, error) {
	subs, err := s.subRepo.ListSubscribedChannels(ctx, subscriberID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscribed channels: %w", err)
	}
	if subs == nil {
		subs = []domain.Subscription{}
	}
	return subs, nil
}
