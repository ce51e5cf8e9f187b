package feed

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/umputun/newsbot/pkg/domain"
)

var feedPathRe = regexp.MustCompile(`(?i)\.(rss|xml)$|/feed|/rss|/atom`)

// socialHosts maps social network domains to their kinds, subdomains match too
var socialHosts = []struct {
	host string
	kind domain.SourceKind
}{
	{"twitter.com", domain.KindTwitter},
	{"x.com", domain.KindTwitter},
	{"facebook.com", domain.KindFacebook},
	{"fb.com", domain.KindFacebook},
	{"instagram.com", domain.KindInstagram},
	{"youtube.com", domain.KindYouTube},
	{"youtu.be", domain.KindYouTube},
	{"reddit.com", domain.KindReddit},
}

// DetectKind guesses the source kind from the locator without any network access
func DetectKind(locator string) (domain.SourceKind, error) {
	u, err := url.Parse(locator)
	if err != nil {
		return "", fmt.Errorf("invalid url %q: %w", locator, err)
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return "", fmt.Errorf("invalid url %q: no host", locator)
	}

	for _, s := range socialHosts {
		if host == s.host || strings.HasSuffix(host, "."+s.host) {
			return s.kind, nil
		}
	}

	if feedPathRe.MatchString(u.Path) {
		return domain.KindRSS, nil
	}
	return domain.KindWebsite, nil
}
