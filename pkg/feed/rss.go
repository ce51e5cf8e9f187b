package feed

import (
	"context"
	"fmt"
	"html"
	"io"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"github.com/umputun/newsbot/pkg/domain"
)

var textPolicy = bluemonday.StrictPolicy()

// fetchRSS retrieves and parses rss/atom/json feed
func (f *Fetcher) fetchRSS(ctx context.Context, feedURL string) ([]domain.ContentItem, error) {
	resp, err := f.get(ctx, feedURL, acceptFeed)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	feed, err := gofeed.NewParser().Parse(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", feedURL, err)
	}

	items := make([]domain.ContentItem, 0, len(feed.Items))
	for _, item := range feed.Items {
		ci := domain.ContentItem{
			Title:     strings.TrimSpace(item.Title),
			URL:       item.Link,
			Content:   cleanHTML(item.Description),
			Published: publishedText(item),
			Kind:      domain.KindRSS,
		}
		if ci.Content == "" {
			ci.Content = cleanHTML(item.Content)
		}
		if ci.Title == "" {
			ci.Title = "No title"
		}
		if ci.URL == "" {
			ci.URL = feedURL
		}
		items = append(items, ci)
	}
	return items, nil
}

// publishedText returns parsed publish (or update) time as RFC3339, raw text if it can't be parsed
func publishedText(item *gofeed.Item) string {
	switch {
	case item.PublishedParsed != nil:
		return item.PublishedParsed.UTC().Format(time.RFC3339)
	case item.UpdatedParsed != nil:
		return item.UpdatedParsed.UTC().Format(time.RFC3339)
	case item.Published != "":
		return item.Published
	default:
		return item.Updated
	}
}

// cleanHTML strips all tags and collapses whitespace
func cleanHTML(s string) string {
	if s == "" {
		return ""
	}
	text := html.UnescapeString(textPolicy.Sanitize(s))
	return strings.Join(strings.Fields(text), " ")
}
