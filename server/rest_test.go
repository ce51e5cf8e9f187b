package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsbot/pkg/domain"
	"github.com/umputun/newsbot/server/mocks"
)

func serve(t *testing.T, srv *Server, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, httptest.NewRequest(method, path, http.NoBody))
	return w
}

func TestServer_statusHandler(t *testing.T) {
	scheduler := &mocks.SchedulerMock{IsRunningFunc: func() bool { return true }}
	srv := New(testConfig(":8080"), &mocks.DatabaseMock{}, scheduler, nil, "1.2.3", false)

	w := serve(t, srv, http.MethodGet, "/api/v1/status")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var status map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.Equal(t, "ok", status["status"])
	assert.Equal(t, "1.2.3", status["version"])
	assert.Equal(t, true, status["scheduler"])
	assert.NotEmpty(t, status["time"])
}

func TestServer_statsHandler(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		scheduler := &mocks.SchedulerMock{
			StatsFunc: func(ctx context.Context) (domain.Stats, error) {
				return domain.Stats{Running: true, IntervalSeconds: 300, TotalSources: 4, ActiveSources: 3,
					SourcesInErrorState: 1, TotalSubscriptions: 10, ActiveSubscriptions: 8}, nil
			},
		}
		srv := New(testConfig(":8080"), &mocks.DatabaseMock{}, scheduler, nil, "1.0.0", false)

		w := serve(t, srv, http.MethodGet, "/api/v1/stats")
		require.Equal(t, http.StatusOK, w.Code)
		var stats map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
		assert.Equal(t, map[string]interface{}{
			"running": true, "interval_seconds": 300.0, "total_sources": 4.0, "active_sources": 3.0,
			"sources_in_error_state": 1.0, "total_subscriptions": 10.0, "active_subscriptions": 8.0,
		}, stats)
	})

	t.Run("store error", func(t *testing.T) {
		scheduler := &mocks.SchedulerMock{
			StatsFunc: func(ctx context.Context) (domain.Stats, error) {
				return domain.Stats{}, errors.New("database is locked")
			},
		}
		srv := New(testConfig(":8080"), &mocks.DatabaseMock{}, scheduler, nil, "1.0.0", false)

		w := serve(t, srv, http.MethodGet, "/api/v1/stats")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"failed to get stats"}`, w.Body.String())
	})
}

func TestServer_listSourcesHandler(t *testing.T) {
	checked := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	db := &mocks.DatabaseMock{
		GetSourcesFunc: func(ctx context.Context, activeOnly bool) ([]domain.Source, error) {
			if activeOnly {
				return []domain.Source{{ID: 1, URL: "https://example.com/rss", Kind: domain.KindRSS, Active: true}}, nil
			}
			return []domain.Source{
				{ID: 1, URL: "https://example.com/rss", Kind: domain.KindRSS, Active: true},
				{ID: 2, URL: "https://example.com/news", Kind: domain.KindWebsite, ErrorCount: 10,
					LastChecked: &checked, LastError: "timeout"},
			}, nil
		},
	}
	srv := New(testConfig(":8080"), db, &mocks.SchedulerMock{}, nil, "1.0.0", false)

	w := serve(t, srv, http.MethodGet, "/api/v1/sources")
	require.Equal(t, http.StatusOK, w.Code)
	var all []sourceInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	require.Len(t, all, 2)
	assert.Equal(t, "website", all[1].Kind)
	assert.Equal(t, 10, all[1].ErrorCount)
	assert.Equal(t, "timeout", all[1].LastError)
	require.NotNil(t, all[1].LastChecked)
	assert.True(t, checked.Equal(*all[1].LastChecked))

	w = serve(t, srv, http.MethodGet, "/api/v1/sources?active=true")
	require.Equal(t, http.StatusOK, w.Code)
	var active []sourceInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &active))
	require.Len(t, active, 1)
	require.Len(t, db.GetSourcesCalls(), 2)
	assert.True(t, db.GetSourcesCalls()[1].ActiveOnly)
}

func TestServer_checkSourceHandler(t *testing.T) {
	src := &domain.Source{ID: 5, URL: "https://example.com/rss", Kind: domain.KindRSS, Active: true, CheckCount: 1}

	tbl := []struct {
		name       string
		path       string
		getErr     error
		checkRes   bool
		wantCode   int
		wantBody   string
		wantChecks int
	}{
		{name: "checked", path: "/api/v1/sources/5/check", checkRes: true, wantCode: http.StatusOK, wantChecks: 1},
		{name: "check failed", path: "/api/v1/sources/5/check", checkRes: false,
			wantCode: http.StatusInternalServerError, wantBody: `{"error":"check of source 5 failed"}`, wantChecks: 1},
		{name: "not found", path: "/api/v1/sources/5/check", getErr: fmt.Errorf("get source 5: %w", domain.ErrNotFound),
			wantCode: http.StatusNotFound, wantBody: `{"error":"source 5 not found"}`},
		{name: "store error", path: "/api/v1/sources/5/check", getErr: errors.New("disk I/O error"),
			wantCode: http.StatusInternalServerError, wantBody: `{"error":"failed to get source"}`},
		{name: "bad id", path: "/api/v1/sources/abc/check",
			wantCode: http.StatusBadRequest, wantBody: `{"error":"invalid source ID"}`},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			db := &mocks.DatabaseMock{
				GetSourceFunc: func(ctx context.Context, id int64) (*domain.Source, error) {
					if tt.getErr != nil {
						return nil, tt.getErr
					}
					return src, nil
				},
			}
			scheduler := &mocks.SchedulerMock{
				ForceCheckFunc: func(ctx context.Context, sourceID int64) bool {
					assert.Equal(t, int64(5), sourceID)
					return tt.checkRes
				},
			}
			srv := New(testConfig(":8080"), db, scheduler, nil, "1.0.0", false)

			w := serve(t, srv, http.MethodPost, tt.path)
			assert.Equal(t, tt.wantCode, w.Code)
			assert.Len(t, scheduler.ForceCheckCalls(), tt.wantChecks)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
				return
			}
			var resp struct {
				Checked bool       `json:"checked"`
				Source  sourceInfo `json:"source"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.True(t, resp.Checked)
			assert.Equal(t, int64(5), resp.Source.ID)
			assert.Equal(t, 1, resp.Source.CheckCount)
		})
	}
}

func TestRenderError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		want string
	}{
		{name: "with error", err: errors.New("boom"), code: http.StatusBadRequest, want: `{"error":"boom"}`},
		{name: "nil error", err: nil, code: http.StatusInternalServerError, want: `{"error":"unknown error"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			renderError(w, httptest.NewRequest(http.MethodGet, "/", http.NoBody), tt.err, tt.code)
			assert.Equal(t, tt.code, w.Code)
			assert.JSONEq(t, tt.want, w.Body.String())
		})
	}
}
