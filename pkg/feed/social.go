package feed

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/newsbot/pkg/domain"
)

// fetchYouTube reads a channel through its public videos feed
func (f *Fetcher) fetchYouTube(ctx context.Context, channelURL string) ([]domain.ContentItem, error) {
	feedURL, err := f.youtubeFeed(channelURL)
	if err != nil {
		return nil, err
	}
	lgr.Printf("[DEBUG] youtube %s via %s", channelURL, feedURL)
	return f.fetchRSS(ctx, feedURL)
}

func (f *Fetcher) youtubeFeed(channelURL string) (string, error) {
	u, err := url.Parse(channelURL)
	if err != nil {
		return "", fmt.Errorf("invalid youtube url %q: %w", channelURL, err)
	}
	if strings.HasPrefix(u.Path, "/feeds/") {
		return channelURL, nil
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) >= 2 && parts[1] != "" {
		switch parts[0] {
		case "channel":
			return f.youtubeFeedURL + "?channel_id=" + url.QueryEscape(parts[1]), nil
		case "user":
			return f.youtubeFeedURL + "?user=" + url.QueryEscape(parts[1]), nil
		}
	}
	return "", fmt.Errorf("can't resolve youtube url %s to a channel feed, use /channel/<id>", channelURL)
}

// fetchReddit reads a subreddit or user page through its .rss endpoint
func (f *Fetcher) fetchReddit(ctx context.Context, pageURL string) ([]domain.ContentItem, error) {
	return f.fetchRSS(ctx, redditFeed(pageURL))
}

func redditFeed(pageURL string) string {
	switch {
	case strings.HasSuffix(pageURL, ".rss"):
		return pageURL
	case strings.HasSuffix(pageURL, "/"):
		return pageURL + ".rss"
	default:
		return pageURL + "/.rss"
	}
}

// fetchTwitter tries public rss bridges for the profile, the first working one wins
func (f *Fetcher) fetchTwitter(ctx context.Context, profileURL string) ([]domain.ContentItem, error) {
	user := twitterUser(profileURL)
	if user == "" {
		return nil, fmt.Errorf("no twitter user in %s", profileURL)
	}

	bridges := []string{
		strings.TrimSuffix(f.nitterURL, "/") + "/" + url.PathEscape(user) + "/rss",
		f.twitrssURL + "?user=" + url.QueryEscape(user),
	}
	var errs []error
	for _, feedURL := range bridges {
		items, err := f.fetchRSS(ctx, feedURL)
		if err == nil {
			return items, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		lgr.Printf("[DEBUG] twitter bridge %s failed, %v", feedURL, err)
		errs = append(errs, err)
	}
	return nil, fmt.Errorf("all twitter bridges failed for %s: %w", user, errors.Join(errs...))
}

func twitterUser(profileURL string) string {
	u, err := url.Parse(profileURL)
	if err != nil {
		return ""
	}
	path := strings.Trim(u.Path, "/")
	if i := strings.LastIndex(path, "/"); i >= 0 {
		path = path[i+1:]
	}
	return strings.TrimPrefix(path, "@")
}
