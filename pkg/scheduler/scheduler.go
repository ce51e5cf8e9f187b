package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/newsbot/pkg/domain"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . Fetcher
//go:generate moq -out mocks/distributor.go -pkg mocks -skip-ensure -fmt goimports . Distributor
//go:generate moq -out mocks/metrics.go -pkg mocks -skip-ensure -fmt goimports . Metrics

// ErrAlreadyRunning is returned by Start when the loop is active
var ErrAlreadyRunning = errors.New("scheduler already running")

// Store provides source persistence for the scheduler
type Store interface {
	GetSource(ctx context.Context, id int64) (*domain.Source, error)
	GetActiveSources(ctx context.Context) ([]domain.Source, error)
	UpdateSourceCheck(ctx context.Context, src *domain.Source) error
	SourceCounts(ctx context.Context) (domain.SourceCounts, error)
	SubscriptionCounts(ctx context.Context) (domain.SubscriptionCounts, error)
}

// Fetcher retrieves content items of a source
type Fetcher interface {
	Fetch(ctx context.Context, locator string, kind domain.SourceKind) ([]domain.ContentItem, error)
}

// Distributor delivers new items of a source to its subscribers
type Distributor interface {
	Distribute(ctx context.Context, src domain.Source, items []domain.ContentItem) (domain.DeliveryReport, error)
}

// Metrics records check and cycle results
type Metrics interface {
	RecordCheck(kind domain.SourceKind, outcome domain.CheckOutcome, duration time.Duration)
	RecordCycle(sources int, duration time.Duration)
}

// Params defines scheduler dependencies and settings. Zero durations and sizes mean defaults,
// MaxRetries is used as is.
type Params struct {
	Store       Store
	Fetcher     Fetcher
	Distributor Distributor
	Metrics     Metrics // optional

	Interval      time.Duration // pause after each full cycle
	MaxRetries    int           // fetch retries after the first attempt
	RetryDelay    time.Duration // first retry delay, doubled on each next one
	BatchSize     int           // sources checked concurrently
	BatchDelay    time.Duration // pause between batches
	ErrorCooldown time.Duration // pause after a failed cycle
}

// Scheduler periodically checks all active sources and distributes new items.
// The loop runs in a single goroutine, sources of a batch are checked concurrently.
type Scheduler struct {
	Params

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
	loopErr error

	now   func() time.Time
	pause func(ctx context.Context, d time.Duration) error
}

// FatalError is a failed or panicked scheduling cycle, the loop survives it after a cool-down
type FatalError struct {
	Err error
}

func (e *FatalError) Error() string { return fmt.Sprintf("scheduler cycle failed: %v", e.Err) }

func (e *FatalError) Unwrap() error { return e.Err }

// NewScheduler creates a new scheduler instance
func NewScheduler(params Params) *Scheduler {
	if params.Interval <= 0 {
		params.Interval = 300 * time.Second
	}
	if params.MaxRetries < 0 {
		params.MaxRetries = 0
	}
	if params.RetryDelay <= 0 {
		params.RetryDelay = 5 * time.Second
	}
	if params.BatchSize <= 0 {
		params.BatchSize = 10
	}
	if params.BatchDelay < 0 {
		params.BatchDelay = 0
	}
	if params.ErrorCooldown <= 0 {
		params.ErrorCooldown = 60 * time.Second
	}
	if params.Metrics == nil {
		params.Metrics = nopMetrics{}
	}

	return &Scheduler{
		Params: params,
		now:    time.Now,
		pause:  sleep,
	}
}

// Start begins the scheduling loop in background, the loop lives until Stop or ctx cancellation
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		lgr.Printf("[WARN] scheduler already running")
		return ErrAlreadyRunning
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	s.running, s.cancel, s.done, s.loopErr = true, cancel, done, nil

	go func() {
		err := s.loop(ctx)
		cancel()
		s.mu.Lock()
		s.running, s.loopErr = false, err
		s.mu.Unlock()
		close(done)
	}()

	lgr.Printf("[INFO] scheduler started with interval %v, batch size %d, max retries %d",
		s.Interval, s.BatchSize, s.MaxRetries)
	return nil
}

// Stop cancels the loop and waits for it to finish. No check is running after it returns.
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		lgr.Printf("[WARN] scheduler is not running")
		return nil
	}
	cancel, done := s.cancel, s.done
	s.mu.Unlock()

	lgr.Printf("[INFO] stopping scheduler...")
	cancel()
	<-done

	s.mu.Lock()
	err := s.loopErr
	s.mu.Unlock()
	lgr.Printf("[INFO] scheduler stopped")

	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}

// IsRunning reports whether the loop is active
func (s *Scheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// ForceCheck runs a single check of the source right away. Returns true if the check ran,
// fetch failures included, and false if the source can't be loaded or the check failed unexpectedly.
func (s *Scheduler) ForceCheck(ctx context.Context, sourceID int64) bool {
	src, err := s.Store.GetSource(ctx, sourceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			lgr.Printf("[WARN] force check, source %d not found", sourceID)
			return false
		}
		lgr.Printf("[ERROR] force check, can't load source %d: %v", sourceID, err)
		return false
	}

	lgr.Printf("[INFO] force check of %s", src.URL)
	out, err := s.checkSource(ctx, *src)
	if err != nil {
		return false
	}
	lgr.Printf("[DEBUG] force check of %s done, success: %v, new items: %d", src.URL, out.Success, out.NewItems)
	return true
}

// Stats returns the running state and store counters
func (s *Scheduler) Stats(ctx context.Context) (domain.Stats, error) {
	sources, err := s.Store.SourceCounts(ctx)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("count sources: %w", err)
	}
	subs, err := s.Store.SubscriptionCounts(ctx)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("count subscriptions: %w", err)
	}
	return domain.Stats{
		Running:             s.IsRunning(),
		IntervalSeconds:     int(s.Interval / time.Second),
		TotalSources:        sources.Total,
		ActiveSources:       sources.Active,
		SourcesInErrorState: sources.InError,
		TotalSubscriptions:  subs.Total,
		ActiveSubscriptions: subs.Active,
	}, nil
}

// loop runs cycles until ctx is canceled, a failed cycle is followed by the cool-down instead of the interval
func (s *Scheduler) loop(ctx context.Context) error {
	for {
		delay := s.Interval
		n, err := s.runCycle(ctx)
		switch {
		case ctx.Err() != nil:
			return ctx.Err()
		case err != nil:
			lgr.Printf("[ERROR] %v, retrying in %v", err, s.ErrorCooldown)
			delay = s.ErrorCooldown
		case n == 0:
			lgr.Printf("[DEBUG] no active sources, next check in %v", s.Interval)
		}

		if err := s.pause(ctx, delay); err != nil {
			return err
		}
	}
}

// runCycle checks all active sources once, returns the number of sources
func (s *Scheduler) runCycle(ctx context.Context) (n int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &FatalError{Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	sources, err := s.Store.GetActiveSources(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return 0, ctx.Err()
		}
		return 0, &FatalError{Err: fmt.Errorf("load active sources: %w", err)}
	}
	if len(sources) == 0 {
		return 0, nil
	}
	return len(sources), s.checkAll(ctx, sources)
}

// checkAll splits sources into batches, each batch is checked concurrently.
// The pause separates batches, cancellation is honored between them.
func (s *Scheduler) checkAll(ctx context.Context, sources []domain.Source) error {
	cycleID := uuid.New().String()
	start := time.Now()
	lgr.Printf("[INFO] cycle %s, checking %d sources", cycleID, len(sources))

	outcomes := make([]domain.CheckOutcome, len(sources))
	for first := 0; first < len(sources); first += s.BatchSize {
		if first > 0 {
			if err := s.pause(ctx, s.BatchDelay); err != nil {
				return err
			}
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		last := min(first+s.BatchSize, len(sources))
		var g errgroup.Group // no shared ctx, a failed check must not cancel its siblings
		g.SetLimit(s.BatchSize)
		for i := first; i < last; i++ {
			g.Go(func() error {
				outcomes[i], _ = s.checkSource(ctx, sources[i])
				return nil
			})
		}
		_ = g.Wait()
	}

	var failed, newItems, delivered int
	for _, out := range outcomes {
		if !out.Success {
			failed++
		}
		newItems += out.NewItems
		delivered += out.Delivered
	}
	elapsed := time.Since(start)
	s.Metrics.RecordCycle(len(sources), elapsed)
	lgr.Printf("[INFO] cycle %s done in %v, sources: %d, failed: %d, new items: %d, delivered: %d",
		cycleID, elapsed.Round(time.Millisecond), len(sources), failed, newItems, delivered)
	return nil
}

// sleep waits for d or ctx cancellation
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
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

func (nopMetrics) RecordCheck(domain.SourceKind, domain.CheckOutcome, time.Duration) {}
func (nopMetrics) RecordCycle(int, time.Duration)                                   {}
