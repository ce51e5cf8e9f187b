package notify

import (
	"fmt"
	"html"
	"strings"

	"github.com/umputun/newsbot/pkg/domain"
)

// DefaultMaxMessageLength keeps messages under the telegram limit of 4096 characters
const DefaultMaxMessageLength = 4000

var kindEmoji = map[domain.SourceKind]string{
	domain.KindTwitter:   "🐦",
	domain.KindFacebook:  "📘",
	domain.KindInstagram: "📸",
	domain.KindRSS:       "📰",
	domain.KindWebsite:   "🌐",
	domain.KindYouTube:   "📺",
	domain.KindReddit:    "👽",
}

// Render formats an item as an html message. The body is shortened to keep the whole
// message within maxLen runes, title and link are always present.
func Render(item domain.ContentItem, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultMaxMessageLength
	}
	emoji, ok := kindEmoji[item.Kind]
	if !ok {
		emoji = "📄"
	}

	header := fmt.Sprintf("%s <b>%s</b>\n\n", emoji, html.EscapeString(strings.TrimSpace(item.Title)))
	footer := fmt.Sprintf("🔗 <a href=\"%s\">Read more</a>\n", html.EscapeString(item.URL))
	if item.Published != "" {
		footer += fmt.Sprintf("⏰ %s\n", html.EscapeString(item.Published))
	}

	body := ""
	if text := strings.TrimSpace(item.Content); text != "" {
		budget := maxLen - runeLen(header) - runeLen(footer) - 2 // body is followed by an empty line
		body = escapeTruncate(text, budget)
		if body != "" {
			body += "\n\n"
		}
	}

	msg := header + body + footer
	if runeLen(msg) > maxLen {
		msg = string([]rune(msg)[:maxLen])
	}
	return msg
}

// escapeTruncate html-escapes s and cuts it so the escaped result with ellipsis fits in budget runes.
// Entities are never split.
func escapeTruncate(s string, budget int) string {
	escaped := html.EscapeString(s)
	if runeLen(escaped) <= budget {
		return escaped
	}
	const ellipsis = "..."
	if budget <= len(ellipsis) {
		return ""
	}

	var sb strings.Builder
	used := 0
	for _, r := range s {
		part := html.EscapeString(string(r))
		n := runeLen(part)
		if used+n > budget-len(ellipsis) {
			break
		}
		sb.WriteString(part)
		used += n
	}
	return strings.TrimRight(sb.String(), " \n\t") + ellipsis
}

func runeLen(s string) int { return len([]rune(s)) }
