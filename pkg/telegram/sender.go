// Package telegram delivers rendered messages to subscribers via the Bot API
package telegram

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	tele "gopkg.in/telebot.v4"

	"github.com/umputun/newsbot/pkg/domain"
)

// Params defines sender settings
type Params struct {
	Token   string
	APIURL  string        // bot api endpoint, default https://api.telegram.org
	Timeout time.Duration // request timeout, default 30s
}

// Sender sends html messages to private chats. It doesn't poll for updates.
type Sender struct {
	bot *tele.Bot
}

// errors meaning the subscriber can't be reached anymore
var terminalErrors = []error{
	tele.ErrBlockedByUser,
	tele.ErrChatNotFound,
	tele.ErrUserIsDeactivated,
	tele.ErrKickedFromGroup,
}

var retryAfterRe = regexp.MustCompile(`retry after (\d+)`)

// NewSender makes a sender for the bot token. No api call is made here.
func NewSender(params Params) (*Sender, error) {
	if strings.TrimSpace(params.Token) == "" {
		return nil, errors.New("telegram token is empty")
	}
	if params.Timeout <= 0 {
		params.Timeout = 30 * time.Second
	}
	bot, err := tele.NewBot(tele.Settings{
		Token:   params.Token,
		URL:     params.APIURL,
		Client:  &http.Client{Timeout: params.Timeout},
		Offline: true,
	})
	if err != nil {
		return nil, fmt.Errorf("make telegram bot: %w", err)
	}
	return &Sender{bot: bot}, nil
}

// Send delivers text with html markup to the user's private chat.
// Failures are returned as *domain.DeliveryError.
func (s *Sender) Send(ctx context.Context, userID int64, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	opts := &tele.SendOptions{ParseMode: tele.ModeHTML}
	if _, err := s.bot.Send(&tele.Chat{ID: userID}, text, opts); err != nil {
		return classify(userID, err)
	}
	lgr.Printf("[DEBUG] message sent to %d, %d bytes", userID, len(text))
	return nil
}

func classify(userID int64, err error) *domain.DeliveryError {
	res := &domain.DeliveryError{UserID: userID, Err: err}
	for _, te := range terminalErrors {
		if errors.Is(err, te) {
			res.Terminal = true
			return res
		}
	}

	// telebot returns FloodError by value
	var flood tele.FloodError
	if errors.As(err, &flood) {
		res.RetryAfter = time.Duration(flood.RetryAfter) * time.Second
		return res
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "blocked"), strings.Contains(msg, "chat not found"),
		strings.Contains(msg, "user is deactivated"), strings.Contains(msg, "kicked"):
		res.Terminal = true
	case strings.Contains(msg, "retry after"), strings.Contains(msg, "(429)"):
		if m := retryAfterRe.FindStringSubmatch(msg); len(m) == 2 {
			if secs, convErr := strconv.Atoi(m[1]); convErr == nil {
				res.RetryAfter = time.Duration(secs) * time.Second
			}
		}
	}
	return res
}
