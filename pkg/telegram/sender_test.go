package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v4"

	"github.com/umputun/newsbot/pkg/domain"
)

type botAPI struct {
	mu       sync.Mutex
	requests []map[string]any
	paths    []string
	reply    func(chatID string) (int, string)
}

func newBotAPI(t *testing.T, reply func(chatID string) (int, string)) (*botAPI, *httptest.Server) {
	t.Helper()
	api := &botAPI{reply: reply}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		_ = json.NewDecoder(r.Body).Decode(&req)
		api.mu.Lock()
		api.requests = append(api.requests, req)
		api.paths = append(api.paths, r.URL.Path)
		api.mu.Unlock()

		code, body := api.reply(fmt.Sprint(req["chat_id"]))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)
	return api, ts
}

func okReply(chatID string) (int, string) {
	return http.StatusOK, fmt.Sprintf(`{"ok":true,"result":{"message_id":1,"date":1714564800,"chat":{"id":%s,"type":"private"},"text":"ok"}}`, chatID)
}

func TestNewSender(t *testing.T) {
	_, err := NewSender(Params{Token: "  "})
	require.Error(t, err)

	s, err := NewSender(Params{Token: "123:abc", APIURL: "http://127.0.0.1:1"})
	require.NoError(t, err, "offline bot makes no api calls")
	assert.NotNil(t, s.bot)
}

func TestSender_Send(t *testing.T) {
	api, ts := newBotAPI(t, okReply)
	s, err := NewSender(Params{Token: "123:abc", APIURL: ts.URL, Timeout: time.Second})
	require.NoError(t, err)

	err = s.Send(context.Background(), 100, "📰 <b>title</b>")
	require.NoError(t, err)

	require.Len(t, api.requests, 1)
	assert.Equal(t, "/bot123:abc/sendMessage", api.paths[0])
	assert.Equal(t, "100", fmt.Sprint(api.requests[0]["chat_id"]))
	assert.Equal(t, "📰 <b>title</b>", api.requests[0]["text"])
	assert.Equal(t, "HTML", api.requests[0]["parse_mode"])
}

func TestSender_SendErrors(t *testing.T) {
	tbl := []struct {
		name       string
		code       int
		body       string
		terminal   bool
		retryAfter time.Duration
	}{
		{name: "blocked", code: http.StatusForbidden,
			body: `{"ok":false,"error_code":403,"description":"Forbidden: bot was blocked by the user"}`, terminal: true},
		{name: "chat not found", code: http.StatusBadRequest,
			body: `{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`, terminal: true},
		{name: "deactivated", code: http.StatusForbidden,
			body: `{"ok":false,"error_code":403,"description":"Forbidden: user is deactivated"}`, terminal: true},
		{name: "flood", code: http.StatusTooManyRequests,
			body:       `{"ok":false,"error_code":429,"description":"Too Many Requests: retry after 7","parameters":{"retry_after":7}}`,
			retryAfter: 7 * time.Second},
		{name: "server error", code: http.StatusInternalServerError,
			body: `{"ok":false,"error_code":500,"description":"Internal Server Error"}`},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			_, ts := newBotAPI(t, func(string) (int, string) { return tt.code, tt.body })
			s, err := NewSender(Params{Token: "123:abc", APIURL: ts.URL})
			require.NoError(t, err)

			err = s.Send(context.Background(), 100, "text")
			require.Error(t, err)
			var de *domain.DeliveryError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, int64(100), de.UserID)
			assert.Equal(t, tt.terminal, de.Terminal)
			assert.Equal(t, tt.terminal, domain.IsTerminalDelivery(err))
			assert.Equal(t, tt.retryAfter, de.RetryAfter)
		})
	}
}

func TestSender_SendCancelled(t *testing.T) {
	api, ts := newBotAPI(t, okReply)
	s, err := NewSender(Params{Token: "123:abc", APIURL: ts.URL})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = s.Send(ctx, 100, "text")
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, api.requests)
}

func TestClassify(t *testing.T) {
	de := classify(1, errors.New("telegram: Forbidden: bot was kicked from the supergroup chat (403)"))
	assert.True(t, de.Terminal)

	de = classify(1, errors.New("telegram: Too Many Requests: retry after 12 (429)"))
	assert.False(t, de.Terminal)
	assert.Equal(t, 12*time.Second, de.RetryAfter)

	de = classify(1, errors.New("telegram: retry after 5 (429)"))
	assert.False(t, de.Terminal)
	assert.Equal(t, 5*time.Second, de.RetryAfter)

	de = classify(1, tele.FloodError{RetryAfter: 9})
	assert.False(t, de.Terminal)
	assert.Equal(t, 9*time.Second, de.RetryAfter)

	de = classify(1, errors.New("connection reset by peer"))
	assert.False(t, de.Terminal)
	assert.Zero(t, de.RetryAfter)
	assert.True(t, strings.Contains(de.Error(), "connection reset"))
}
