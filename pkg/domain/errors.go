package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned by stores when a record doesn't exist
var ErrNotFound = errors.New("not found")

// ErrUnsupportedSource is returned by fetchers for kinds that can't be polled without api access.
// It is permanent, retrying it makes no sense.
var ErrUnsupportedSource = errors.New("source requires api access")

// SourceError is a fetch or parse failure of a single source
type SourceError struct {
	URL      string
	Attempts int
	Err      error
}

func (e *SourceError) Error() string {
	if e.Attempts == 1 {
		return fmt.Sprintf("source %s failed after 1 attempt: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("source %s failed after %d attempts: %v", e.URL, e.Attempts, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

// DeliveryError is a failed send to a single subscriber.
// Terminal is set when the subscriber can't be reached anymore (blocked the bot, chat removed).
type DeliveryError struct {
	UserID     int64
	Terminal   bool
	RetryAfter time.Duration
	Err        error
}

func (e *DeliveryError) Error() string {
	if e.Terminal {
		return fmt.Sprintf("subscriber %d unreachable: %v", e.UserID, e.Err)
	}
	return fmt.Sprintf("delivery to %d failed: %v", e.UserID, e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

// IsTerminalDelivery reports whether err marks the subscriber as unreachable
func IsTerminalDelivery(err error) bool {
	var de *DeliveryError
	return errors.As(err, &de) && de.Terminal
}
