package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/newsbot/pkg/domain"
)

// checkSource fetches the source, distributes new items and commits its bookkeeping.
// The returned error is set only for unexpected failures (panic, distribution or store errors),
// fetch failures are reported in the outcome. A cancelled fetch or distribution leaves the source untouched.
func (s *Scheduler) checkSource(ctx context.Context, src domain.Source) (out domain.CheckOutcome, err error) {
	start := time.Now()
	out.SourceID = src.ID
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in check of %s: %v", src.URL, r)
			out = s.recordFailure(ctx, src, err, true)
		}
		s.Metrics.RecordCheck(src.Kind, out, time.Since(start))
	}()

	items, fetchErr := s.fetch(ctx, src)
	if fetchErr != nil {
		if ctx.Err() != nil {
			lgr.Printf("[DEBUG] check of %s cancelled", src.URL)
			out.Err = ctx.Err()
			return out, ctx.Err()
		}
		return s.recordFailure(ctx, src, fetchErr, false), nil
	}

	now := s.now()
	fresh := FilterNewItems(items, Cutoff(src, now))
	upd := src
	markSuccess(&upd, now, len(fresh))

	if len(fresh) > 0 {
		lgr.Printf("[INFO] %d new items from %s", len(fresh), src.URL)
		report, distErr := s.Distributor.Distribute(ctx, src, fresh)
		if distErr != nil {
			if ctx.Err() != nil {
				lgr.Printf("[DEBUG] distribution for %s cancelled, items will be sent again", src.URL)
				out.Err = ctx.Err()
				return out, ctx.Err()
			}
			err = fmt.Errorf("distribute %d items of %s: %w", len(fresh), src.URL, distErr)
			return s.recordFailure(ctx, src, err, true), err
		}
		out.Delivered = report.Delivered
	} else {
		lgr.Printf("[DEBUG] no new items from %s", src.URL)
	}

	if err := s.commit(ctx, &upd); err != nil {
		out.Err = err
		return out, err
	}
	out.Success = true
	out.NewItems = len(fresh)
	return out, nil
}

// recordFailure counts a failed check and deactivates the source when it keeps failing
func (s *Scheduler) recordFailure(ctx context.Context, src domain.Source, err error, unexpected bool) domain.CheckOutcome {
	if unexpected {
		lgr.Printf("[ERROR] unexpected failure checking %s: %v", src.URL, err)
	} else {
		lgr.Printf("[WARN] check of %s failed: %v", src.URL, err)
	}

	deactivated := markFailure(&src, s.now(), err)
	if deactivated {
		lgr.Printf("[WARN] source %s deactivated after %d consecutive errors", src.URL, src.ErrorCount)
	}

	out := domain.CheckOutcome{SourceID: src.ID, Deactivated: deactivated, Err: err}
	if commitErr := s.commit(ctx, &src); commitErr != nil {
		out.Err = errors.Join(err, commitErr)
	}
	return out
}

// commit stores the check results, it is not interrupted by cancellation of ctx
func (s *Scheduler) commit(ctx context.Context, src *domain.Source) error {
	if err := s.Store.UpdateSourceCheck(context.WithoutCancel(ctx), src); err != nil {
		lgr.Printf("[ERROR] failed to save check of %s: %v", src.URL, err)
		return fmt.Errorf("save check of %s: %w", src.URL, err)
	}
	return nil
}
