package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/videotube_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/videotube_backend/internal/core/ports/repositories"
	"github.com/SscSPs/videotube_backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSubscriptionRepository struct {
	BaseRepository
}

func newPgxSubscriptionRepository(db *pgxpool.Pool) portsrepo.SubscriptionRepositoryFacade {
	return &PgxSubscriptionRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.SubscriptionRepositoryFacade = (*PgxSubscriptionRepository)(nil)

func (r *PgxSubscriptionRepository) CreateSubscription(ctx context.Context, sub domain.Subscription) error {
	query := `
		INSERT INTO subscriptions (id, subscriber_id, channel_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query, sub.SubscriptionID, sub.SubscriberID, sub.ChannelID, sub.CreatedAt, sub.UpdatedAt)
	return mapPgError(err, "failed to create subscription")
}

func (r *PgxSubscriptionRepository) DeleteSubscription(ctx context.Context, subscriberID, channelID string) (bool, error) {
	tag, err := r.Pool.Exec(ctx,
		`DELETE FROM subscriptions WHERE subscriber_id = $1 AND channel_id = $2`, subscriberID, channelID)
	if err != nil {
		return false, fmt.Errorf("failed to delete subscription: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// listJoined lists subscriptions filtered on filterColumn, joining the user on the other side.
// expandSubscriber selects which end of the pair gets the summary.
func (r *PgxSubscriptionRepository) listJoined(ctx context.Context, filterColumn, joinColumn string, id string, expandSubscriber bool) ([]domain.Subscription, error) {
	query := `
		SELECT s.id, s.subscriber_id, s.channel_id, s.created_at, s.updated_at, ` + ownerColumns + `
		FROM subscriptions s
		JOIN users o ON o.id = s.` + joinColumn + `
		WHERE s.` + filterColumn + ` = $1
		ORDER BY s.created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query subscriptions: %w", err)
	}
	defer rows.Close()

	subs := []domain.Subscription{}
	for rows.Next() {
		var m models.Subscription
		var other models.UserSummary
		dest := append([]any{&m.SubscriptionID, &m.SubscriberID, &m.ChannelID, &m.CreatedAt, &m.UpdatedAt}, ownerDest(&other)...)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan subscription row: %w", err)
		}
		sub := domain.Subscription{
			SubscriptionID: m.SubscriptionID,
			SubscriberID:   m.SubscriberID,
			ChannelID:      m.ChannelID,
			Timestamps:     domain.Timestamps{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
		}
		if expandSubscriber {
			sub.Subscriber = toDomainSummary(other)
		} else {
			sub.Channel = toDomainSummary(other)
		}
		subs = append(subs, sub)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating subscription rows: %w", rows.Err())
	}
	return subs, nil
}

func (r *PgxSubscriptionRepository) ListSubscribers(ctx context.Context, channelID string) ([]domain.Subscription, error) {
	return r.listJoined(ctx, "channel_id", "subscriber_id", channelID, true)
}

func (r *PgxSubscriptionRepository) ListSubscribedChannels(ctx context.Context, subscriberID string) ([]domain.Subscription, error) {
	return r.listJoined(ctx, "subscriber_id", "channel_id", subscriberID, false)
}
