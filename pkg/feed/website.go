package feed

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-pkgz/lgr"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"

	"github.com/umputun/newsbot/pkg/domain"
)

const (
	minBlockText  = 100 // blocks with less text are navigation or teasers
	maxBlockText  = 500
	defaultTitle  = "Website Update"
	ellipsis      = "..."
	headingsQuery = "h1, h2, h3, h4, h5, h6"
)

// articleSelectors are tried in order, the first one matching anything wins
var articleSelectors = []string{
	"article",
	".article",
	".post",
	".entry",
	".content article",
	`[role="article"]`,
	".news-item",
	".blog-post",
}

var containerClassRe = regexp.MustCompile(`(?i)content|post|article|entry`)

// fetchWebsite scrapes article-like blocks from a generic page
func (f *Fetcher) fetchWebsite(ctx context.Context, pageURL string) ([]domain.ContentItem, error) {
	resp, err := f.get(ctx, pageURL, acceptPage)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", pageURL, err)
	}

	utf8Body, err := charset.NewReader(bytes.NewReader(raw), resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", pageURL, err)
	}
	root, err := html.Parse(utf8Body)
	if err != nil {
		return nil, fmt.Errorf("parse html %s: %w", pageURL, err)
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("parse url %s: %w", pageURL, err)
	}

	items := f.scrapeBlocks(goquery.NewDocumentFromNode(root), base)
	if len(items) > 0 {
		return items, nil
	}
	return f.extractPage(raw, pageURL), nil
}

// scrapeBlocks turns article-like blocks of the document into items
func (f *Fetcher) scrapeBlocks(doc *goquery.Document, base *url.URL) []domain.ContentItem {
	pageTitle := strings.TrimSpace(doc.Find("title").First().Text())
	if pageTitle == "" {
		pageTitle = defaultTitle
	}

	blocks := findBlocks(doc)
	if blocks.Length() > f.MaxPageItems {
		blocks = blocks.Slice(0, f.MaxPageItems)
	}

	var items []domain.ContentItem
	blocks.Each(func(i int, s *goquery.Selection) {
		text := collapseSpaces(s.Text())
		if len([]rune(text)) < minBlockText {
			return
		}

		title := collapseSpaces(s.Find(headingsQuery).First().Text())
		if title == "" {
			title = fmt.Sprintf("%s - Item %d", pageTitle, i+1)
		}

		link := base.String()
		if href, ok := s.Find("a[href]").First().Attr("href"); ok {
			if ref, err := url.Parse(strings.TrimSpace(href)); err == nil {
				link = base.ResolveReference(ref).String()
			}
		}

		items = append(items, domain.ContentItem{
			Title:   title,
			URL:     link,
			Content: truncate(text, maxBlockText),
			Kind:    domain.KindWebsite,
		})
	})
	return items
}

// findBlocks picks article selectors first, then content-like containers, then plain paragraphs
func findBlocks(doc *goquery.Document) *goquery.Selection {
	for _, sel := range articleSelectors {
		if found := doc.Find(sel); found.Length() > 0 {
			return found
		}
	}

	containers := doc.Find("div[class]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		class, _ := s.Attr("class")
		return containerClassRe.MatchString(class)
	})
	if containers.Length() > 0 {
		return containers
	}
	return doc.Find("p")
}

// extractPage runs the whole-page extractor when no usable blocks found, returns nothing on failure
func (f *Fetcher) extractPage(raw []byte, pageURL string) []domain.ContentItem {
	if f.Extractor == nil {
		lgr.Printf("[DEBUG] no article blocks on %s", pageURL)
		return nil
	}
	title, text, err := f.Extractor.Extract(bytes.NewReader(raw), pageURL)
	if err != nil {
		lgr.Printf("[DEBUG] no content extracted from %s, %v", pageURL, err)
		return nil
	}
	text = collapseSpaces(text)
	if len([]rune(text)) < minBlockText {
		return nil
	}
	if title == "" {
		title = defaultTitle
	}
	return []domain.ContentItem{{Title: title, URL: pageURL, Content: truncate(text, maxBlockText), Kind: domain.KindWebsite}}
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// truncate cuts s to max runes adding ellipsis
func truncate(s string, maxRunes int) string {
	r := []rune(s)
	if len(r) <= maxRunes {
		return s
	}
	return string(r[:maxRunes]) + ellipsis
}
