package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/time/rate"

	"github.com/umputun/newsbot/pkg/domain"
)

//go:generate moq -out mocks/sender.go -pkg mocks -skip-ensure -fmt goimports . Sender
//go:generate moq -out mocks/subscription_store.go -pkg mocks -skip-ensure -fmt goimports . SubscriptionStore
//go:generate moq -out mocks/metrics.go -pkg mocks -skip-ensure -fmt goimports . Metrics

// maxFloodWait is the longest flood-control pause we honor before a single resend
const maxFloodWait = 30 * time.Second

// Sender delivers a rendered message to a subscriber.
// Failures should be *domain.DeliveryError when the transport can tell terminal from transient.
type Sender interface {
	Send(ctx context.Context, userID int64, text string) error
}

// SubscriptionStore provides subscriptions of a source
type SubscriptionStore interface {
	GetNotifiableSubscriptions(ctx context.Context, sourceID int64) ([]domain.Subscription, error)
	UpdateLastNotified(ctx context.Context, id int64, ts time.Time) error
	SetSubscriptionActive(ctx context.Context, id int64, active bool) error
}

// Metrics records delivery results
type Metrics interface {
	RecordDelivery(status string)
}

// delivery statuses reported to metrics
const (
	StatusDelivered   = "delivered"
	StatusFailed      = "failed"
	StatusUnreachable = "unreachable"
)

// Params defines distributor dependencies and settings
type Params struct {
	Store   SubscriptionStore
	Sender  Sender
	Metrics Metrics // optional

	MaxItems              int           // items sent per source check, default 5
	MaxMessageLength      int           // rendered message cap in runes, default 4000
	Interval              time.Duration // minimal pause between two sends, default 100ms
	DeactivateUnreachable bool          // turn off subscriptions of subscribers who blocked the bot
}

// Distributor fans new items of a source out to its subscribers.
// Each delivery is independent, one failed subscriber doesn't affect others.
type Distributor struct {
	Params
	limiter *rate.Limiter
	now     func() time.Time
	pause   func(ctx context.Context, d time.Duration) error
}

// NewDistributor makes a distributor with defaults applied
func NewDistributor(params Params) *Distributor {
	if params.MaxItems <= 0 {
		params.MaxItems = 5
	}
	if params.MaxMessageLength <= 0 {
		params.MaxMessageLength = DefaultMaxMessageLength
	}
	if params.Interval <= 0 {
		params.Interval = 100 * time.Millisecond
	}
	if params.Metrics == nil {
		params.Metrics = nopMetrics{}
	}
	return &Distributor{
		Params:  params,
		limiter: rate.NewLimiter(rate.Every(params.Interval), 1),
		now:     time.Now,
		pause:   sleep,
	}
}

// Distribute sends up to MaxItems items, in order, to every notifiable subscriber of the source.
// Only subscription loading and cancellation are returned as errors, delivery failures go to the report.
func (d *Distributor) Distribute(ctx context.Context, src domain.Source, items []domain.ContentItem) (domain.DeliveryReport, error) {
	if len(items) > d.MaxItems {
		lgr.Printf("[DEBUG] %d new items from %s, sending first %d", len(items), src.URL, d.MaxItems)
		items = items[:d.MaxItems]
	}
	report := domain.DeliveryReport{Items: len(items)}

	subs, err := d.Store.GetNotifiableSubscriptions(ctx, src.ID)
	if err != nil {
		return report, fmt.Errorf("get subscriptions of source %d: %w", src.ID, err)
	}
	report.Subscribers = len(subs)
	if len(subs) == 0 || len(items) == 0 {
		lgr.Printf("[DEBUG] nothing to send for %s, subscribers: %d", src.URL, len(subs))
		return report, nil
	}

	lgr.Printf("[INFO] sending %d items of %s to %d subscribers", len(items), src.URL, len(subs))
	disabled := map[int64]bool{}
	for _, item := range items {
		if item.Kind == "" {
			item.Kind = src.Kind
		}
		text := Render(item, d.MaxMessageLength)
		for _, sub := range subs {
			if disabled[sub.ID] {
				continue
			}
			if err := d.limiter.Wait(ctx); err != nil {
				return report, fmt.Errorf("wait for send slot: %w", err)
			}
			if err := d.deliver(ctx, sub, text, &report); err != nil {
				if ctx.Err() != nil {
					return report, ctx.Err()
				}
				if domain.IsTerminalDelivery(err) && d.DeactivateUnreachable {
					d.deactivate(ctx, sub)
					disabled[sub.ID] = true
				}
			}
		}
	}

	lgr.Printf("[DEBUG] %s sent, delivered: %d, failed: %d, unreachable: %d",
		src.URL, report.Delivered, report.Failed, report.Unreachable)
	return report, nil
}

// deliver sends one message and records the result, flood-control errors get a single resend
func (d *Distributor) deliver(ctx context.Context, sub domain.Subscription, text string, report *domain.DeliveryReport) error {
	err := d.Sender.Send(ctx, sub.UserID, text)
	if wait := floodWait(err); wait > 0 && ctx.Err() == nil {
		lgr.Printf("[DEBUG] flood control for %d, resending in %v", sub.UserID, wait)
		if pauseErr := d.pause(ctx, wait); pauseErr != nil {
			return pauseErr
		}
		err = d.Sender.Send(ctx, sub.UserID, text)
	}

	switch {
	case err == nil:
		report.Delivered++
		d.Metrics.RecordDelivery(StatusDelivered)
		if err := d.Store.UpdateLastNotified(context.WithoutCancel(ctx), sub.ID, d.now()); err != nil {
			lgr.Printf("[WARN] failed to update last notified of subscription %d: %v", sub.ID, err)
		}
		return nil
	case ctx.Err() != nil:
		return err
	case domain.IsTerminalDelivery(err):
		report.Unreachable++
		d.Metrics.RecordDelivery(StatusUnreachable)
		lgr.Printf("[WARN] subscriber %d appears to have blocked the bot: %v", sub.UserID, err)
		return err
	default:
		report.Failed++
		d.Metrics.RecordDelivery(StatusFailed)
		lgr.Printf("[WARN] failed to send update to %d: %v", sub.UserID, err)
		return err
	}
}

func (d *Distributor) deactivate(ctx context.Context, sub domain.Subscription) {
	if err := d.Store.SetSubscriptionActive(context.WithoutCancel(ctx), sub.ID, false); err != nil {
		lgr.Printf("[WARN] failed to deactivate subscription %d: %v", sub.ID, err)
		return
	}
	lgr.Printf("[INFO] subscription %d of unreachable subscriber %d deactivated", sub.ID, sub.UserID)
}

// floodWait returns the pause requested by the transport, zero if none or too long to honor
func floodWait(err error) time.Duration {
	var de *domain.DeliveryError
	if !errors.As(err, &de) || de.Terminal || de.RetryAfter <= 0 || de.RetryAfter > maxFloodWait {
		return 0
	}
	return de.RetryAfter
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

type nopMetrics struct{}

func (nopMetrics) RecordDelivery(string) {}
