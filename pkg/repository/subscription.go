package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/newsbot/pkg/domain"
)

// SubscriptionRepository handles subscription-related database operations
type SubscriptionRepository struct {
	db *sqlx.DB
}

type subscriptionSQL struct {
	ID                  int64      `db:"id"`
	UserID              int64      `db:"user_id"`
	SourceID            int64      `db:"source_id"`
	Active              bool       `db:"is_active"`
	NotificationEnabled bool       `db:"notification_enabled"`
	LastNotified        *time.Time `db:"last_notified"`
	CreatedAt           time.Time  `db:"created_at"`
}

// NewSubscriptionRepository creates a new subscription repository
func NewSubscriptionRepository(db *sqlx.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// CreateSubscription inserts a subscription, the (user, source) pair must be unique
func (r *SubscriptionRepository) CreateSubscription(ctx context.Context, sub *domain.Subscription) error {
	query := `
		INSERT INTO subscriptions (user_id, source_id, is_active, notification_enabled)
		VALUES (?, ?, ?, ?)
	`
	result, err := r.db.ExecContext(ctx, query, sub.UserID, sub.SourceID, sub.Active, sub.NotificationEnabled)
	if err != nil {
		return fmt.Errorf("create subscription: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get insert id: %w", err)
	}
	sub.ID = id
	return nil
}

// GetNotifiableSubscriptions returns active subscriptions with notifications enabled for a source
func (r *SubscriptionRepository) GetNotifiableSubscriptions(ctx context.Context, sourceID int64) ([]domain.Subscription, error) {
	query := `
		SELECT * FROM subscriptions
		WHERE source_id = ? AND is_active = 1 AND notification_enabled = 1
		ORDER BY id
	`
	var rows []subscriptionSQL
	if err := r.db.SelectContext(ctx, &rows, query, sourceID); err != nil {
		return nil, fmt.Errorf("get subscriptions for source %d: %w", sourceID, err)
	}

	subs := make([]domain.Subscription, len(rows))
	for i, s := range rows {
		subs[i] = domain.Subscription{
			ID:                  s.ID,
			UserID:              s.UserID,
			SourceID:            s.SourceID,
			Active:              s.Active,
			NotificationEnabled: s.NotificationEnabled,
			LastNotified:        s.LastNotified,
			CreatedAt:           s.CreatedAt,
		}
	}
	return subs, nil
}

// UpdateLastNotified records a successful delivery time
func (r *SubscriptionRepository) UpdateLastNotified(ctx context.Context, id int64, ts time.Time) error {
	err := lockRetrier().Do(ctx, func() error {
		_, err := r.db.ExecContext(ctx, "UPDATE subscriptions SET last_notified = ? WHERE id = ?", ts.UTC(), id)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("update last notified: %w", err)}
		}
		return nil
	}, errCritical)
	return unwrapCritical(err)
}

// SetSubscriptionActive enables or disables a subscription
func (r *SubscriptionRepository) SetSubscriptionActive(ctx context.Context, id int64, active bool) error {
	if _, err := r.db.ExecContext(ctx, "UPDATE subscriptions SET is_active = ? WHERE id = ?", active, id); err != nil {
		return fmt.Errorf("set subscription %d active: %w", id, err)
	}
	return nil
}

// CountSubscriptions returns total and active subscription numbers
func (r *SubscriptionRepository) CountSubscriptions(ctx context.Context) (domain.SubscriptionCounts, error) {
	var counts domain.SubscriptionCounts
	query := `
		SELECT COUNT(*) AS total,
		       COALESCE(SUM(CASE WHEN is_active = 1 THEN 1 ELSE 0 END), 0) AS active
		FROM subscriptions
	`
	if err := r.db.GetContext(ctx, &counts, query); err != nil {
		return domain.SubscriptionCounts{}, fmt.Errorf("count subscriptions: %w", err)
	}
	return counts, nil
}
