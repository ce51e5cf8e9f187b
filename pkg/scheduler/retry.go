package scheduler

import (
	"context"
	"errors"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"

	"github.com/umputun/newsbot/pkg/domain"
)

// fetch calls the fetcher up to MaxRetries+1 times with exponential backoff starting at RetryDelay.
// When all attempts fail the last error is returned as *domain.SourceError.
func (s *Scheduler) fetch(ctx context.Context, src domain.Source) ([]domain.ContentItem, error) {
	var items []domain.ContentItem
	attempts, maxAttempts := 0, s.MaxRetries+1

	// no max delay, wait before retry i is RetryDelay * 2^(i-1) whatever the configured delay is
	rpt := repeater.NewBackoff(maxAttempts, s.RetryDelay, repeater.WithJitter(0), repeater.WithMaxDelay(0))
	err := rpt.Do(ctx, func() error {
		attempts++
		res, err := s.Fetcher.Fetch(ctx, src.URL, src.Kind)
		if err != nil {
			if ctx.Err() == nil && attempts < maxAttempts && !errors.Is(err, domain.ErrUnsupportedSource) {
				lgr.Printf("[DEBUG] attempt %d/%d for %s failed, %v", attempts, maxAttempts, src.URL, err)
			}
			return err
		}
		items = res
		return nil
	}, domain.ErrUnsupportedSource)

	if err == nil {
		return items, nil
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	return nil, &domain.SourceError{URL: src.URL, Attempts: attempts, Err: err}
}
