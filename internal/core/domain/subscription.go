package domain

// Subscription links a subscriber to a channel (both users).
type Subscription struct {
	SubscriptionID string       `json:"_id"`
	SubscriberID   string       `json:"subscriberId"`
	ChannelID      string       `json:"channelId"`
	Subscriber     *UserSummary `json:"subscriber,omitempty"`
	Channel        *UserSummary `json:"channel,omitempty"`
	Timestamps
}
