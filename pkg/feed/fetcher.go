package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/doyensec/safeurl"
	"github.com/go-pkgz/lgr"

	"github.com/umputun/newsbot/pkg/domain"
)

//go:generate moq -out mocks/page_extractor.go -pkg mocks -skip-ensure -fmt goimports . PageExtractor

// maxBodySize limits how much of a response we are willing to read
const maxBodySize = 10 * 1024 * 1024

// FetchFunc retrieves content items for a single locator
type FetchFunc func(ctx context.Context, locator string) ([]domain.ContentItem, error)

// PageExtractor pulls the main text out of a whole html page, used when no article blocks found
type PageExtractor interface {
	Extract(r io.Reader, pageURL string) (title, text string, err error)
}

// Params for the fetcher
type Params struct {
	Timeout      time.Duration
	UserAgent    string
	AllowPrivate bool          // disables ssrf protection, for local sources and tests
	MaxPageItems int           // max article blocks taken from a single web page
	Extractor    PageExtractor // optional whole-page fallback for websites
}

// Fetcher is a registry of fetch functions keyed by source kind.
// Unknown kinds are fetched as generic websites.
type Fetcher struct {
	Params
	client *http.Client

	mu       sync.RWMutex
	registry map[domain.SourceKind]FetchFunc

	// feed endpoints used for social sources, overridden in tests
	youtubeFeedURL string
	nitterURL      string
	twitrssURL     string
}

// NewFetcher makes a fetcher with all supported kinds registered
func NewFetcher(params Params) *Fetcher {
	if params.Timeout <= 0 {
		params.Timeout = 30 * time.Second
	}
	if params.UserAgent == "" {
		params.UserAgent = "Mozilla/5.0 FeedAggregatorBot/1.0"
	}
	if params.MaxPageItems <= 0 {
		params.MaxPageItems = 5
	}

	f := &Fetcher{
		Params:         params,
		client:         newHTTPClient(params.Timeout, params.AllowPrivate),
		registry:       map[domain.SourceKind]FetchFunc{},
		youtubeFeedURL: "https://www.youtube.com/feeds/videos.xml",
		nitterURL:      "https://nitter.net",
		twitrssURL:     "https://twitrss.me/twitter_user_to_rss/",
	}

	f.Register(domain.KindRSS, f.fetchRSS)
	f.Register(domain.KindWebsite, f.fetchWebsite)
	f.Register(domain.KindYouTube, f.fetchYouTube)
	f.Register(domain.KindReddit, f.fetchReddit)
	f.Register(domain.KindTwitter, f.fetchTwitter)
	f.Register(domain.KindFacebook, unsupported("facebook pages need graph api credentials"))
	f.Register(domain.KindInstagram, unsupported("instagram profiles need instagram api credentials"))
	return f
}

// Register adds or replaces the fetch function for a kind
func (f *Fetcher) Register(kind domain.SourceKind, fn FetchFunc) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.registry[kind] = fn
}

// Fetch retrieves items for the locator using the function registered for kind.
// Empty kind is detected from the locator, unknown kind falls back to website.
func (f *Fetcher) Fetch(ctx context.Context, locator string, kind domain.SourceKind) ([]domain.ContentItem, error) {
	if kind == "" {
		detected, err := DetectKind(locator)
		if err != nil {
			return nil, err
		}
		kind = detected
	}

	f.mu.RLock()
	fn, ok := f.registry[kind]
	if !ok {
		lgr.Printf("[DEBUG] no fetcher for kind %q, fetching %s as website", kind, locator)
		fn = f.registry[domain.KindWebsite]
	}
	f.mu.RUnlock()

	items, err := fn(ctx, locator)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Kind = kind
	}
	return items, nil
}

// get makes a GET request with browser headers, caller closes the body
func (f *Fetcher) get(ctx context.Context, rawURL, accept string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.UserAgent)
	addBrowserHeaders(req, accept)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code %d for %s", resp.StatusCode, rawURL)
	}
	return resp, nil
}

// newHTTPClient makes the client for outgoing requests, ssrf-safe unless private targets are allowed
func newHTTPClient(timeout time.Duration, allowPrivate bool) *http.Client {
	if allowPrivate {
		return &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}
	cfg := safeurl.GetConfigBuilder().
		SetTimeout(timeout).
		SetAllowedSchemes("http", "https").
		SetAllowedPorts(80, 443).
		Build()
	return safeurl.Client(cfg).Client
}

func unsupported(reason string) FetchFunc {
	return func(_ context.Context, locator string) ([]domain.ContentItem, error) {
		lgr.Printf("[WARN] can't poll %s, %s", locator, reason)
		return nil, fmt.Errorf("%s: %w", reason, domain.ErrUnsupportedSource)
	}
}
