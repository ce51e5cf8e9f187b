package domain

// ContentItem is a single piece of content produced by a fetch.
// Published keeps the raw timestamp text, it can be empty or unparsable.
type ContentItem struct {
	Title     string
	URL       string
	Content   string
	Published string
	Kind      SourceKind
}

// CheckOutcome describes the result of a single source check
type CheckOutcome struct {
	SourceID    int64
	Success     bool
	NewItems    int
	Delivered   int
	Deactivated bool
	Err         error
}

// DeliveryReport summarizes a single fan-out of items to subscribers
type DeliveryReport struct {
	Items       int // items sent after truncation
	Subscribers int
	Delivered   int
	Failed      int
	Unreachable int
}

// Stats is a snapshot of scheduler state and store counters
type Stats struct {
	Running             bool `json:"running"`
	IntervalSeconds     int  `json:"interval_seconds"`
	TotalSources        int  `json:"total_sources"`
	ActiveSources       int  `json:"active_sources"`
	SourcesInErrorState int  `json:"sources_in_error_state"`
	TotalSubscriptions  int  `json:"total_subscriptions"`
	ActiveSubscriptions int  `json:"active_subscriptions"`
}
