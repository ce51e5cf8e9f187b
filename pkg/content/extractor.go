package content

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/markusmobius/go-trafilatura"
)

// Extractor pulls the main readable text out of a whole html page using trafilatura
type Extractor struct {
	opts trafilatura.Options
}

// NewExtractor creates a new content extractor
func NewExtractor() *Extractor {
	return &Extractor{
		opts: trafilatura.Options{
			EnableFallback:  true,
			ExcludeComments: true,
			ExcludeTables:   false,
			IncludeImages:   false,
			IncludeLinks:    false,
			Deduplicate:     true,
		},
	}
}

// Extract returns page title and main text of the html read from r
func (e *Extractor) Extract(r io.Reader, pageURL string) (title, text string, err error) {
	parsedURL, err := url.Parse(pageURL)
	if err != nil {
		return "", "", fmt.Errorf("parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return "", "", fmt.Errorf("invalid URL: %s", pageURL)
	}

	opts := e.opts
	opts.OriginalURL = parsedURL

	result, err := trafilatura.Extract(r, opts)
	if err != nil {
		return "", "", fmt.Errorf("extract content from %s: %w", pageURL, err)
	}
	if result == nil {
		return "", "", fmt.Errorf("no content extracted from %s", pageURL)
	}

	text = strings.TrimSpace(result.ContentText)
	if text == "" {
		return "", "", fmt.Errorf("no text content extracted from %s", pageURL)
	}
	return strings.TrimSpace(result.Metadata.Title), text, nil
}
