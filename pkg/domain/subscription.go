package domain

import "time"

// Subscription pairs a subscriber (chat) with a source
type Subscription struct {
	ID                  int64
	UserID              int64
	SourceID            int64
	Active              bool
	NotificationEnabled bool
	LastNotified        *time.Time
	CreatedAt           time.Time
}

// SubscriptionCounts holds aggregate subscription numbers
type SubscriptionCounts struct {
	Total  int `db:"total"`
	Active int `db:"active"`
}
