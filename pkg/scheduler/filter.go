package scheduler

import (
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/newsbot/pkg/domain"
)

// defaultLookback limits the first check of a source to recent items
const defaultLookback = 24 * time.Hour

// publishedLayouts are tried in order, naive layouts are taken as UTC
var publishedLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.RFC1123Z,
	time.RFC1123,
}

// Cutoff returns the watermark of the source, or now minus the lookback if it was never updated
func Cutoff(src domain.Source, now time.Time) time.Time {
	if src.LastUpdated != nil {
		return *src.LastUpdated
	}
	return now.Add(-defaultLookback)
}

// FilterNewItems keeps items published strictly after cutoff, order preserved.
// Items without a date or with an unparsable one are kept.
func FilterNewItems(items []domain.ContentItem, cutoff time.Time) []domain.ContentItem {
	res := make([]domain.ContentItem, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item.Published) == "" {
			res = append(res, item)
			continue
		}
		ts, ok := parsePublished(item.Published)
		if !ok {
			lgr.Printf("[DEBUG] can't parse published time %q of %s, treating as new", item.Published, item.URL)
			res = append(res, item)
			continue
		}
		if ts.After(cutoff) {
			res = append(res, item)
		}
	}
	return res
}

func parsePublished(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range publishedLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
