package domain

import "time"

// SourceKind identifies the fetch capability used for a source
type SourceKind string

// supported source kinds, unknown kinds are fetched as generic websites
const (
	KindRSS       SourceKind = "rss"
	KindWebsite   SourceKind = "website"
	KindYouTube   SourceKind = "youtube"
	KindReddit    SourceKind = "reddit"
	KindTwitter   SourceKind = "twitter"
	KindFacebook  SourceKind = "facebook"
	KindInstagram SourceKind = "instagram"
)

// Source represents a content origin under periodic surveillance
type Source struct {
	ID          int64
	URL         string
	Kind        SourceKind
	Title       string
	Active      bool
	ErrorCount  int // consecutive failed checks
	CheckCount  int
	LastChecked *time.Time
	LastUpdated *time.Time // watermark for new-item detection
	LastError   string
	CreatedAt   time.Time
}

// Name returns a human-readable identifier for logs
func (s *Source) Name() string {
	if s.Title != "" {
		return s.Title
	}
	return s.URL
}

// SourceCounts holds aggregate source numbers
type SourceCounts struct {
	Total   int `db:"total"`
	Active  int `db:"active"`
	InError int `db:"in_error"`
}
