package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsbot/pkg/domain"
	"github.com/umputun/newsbot/pkg/notify"
	"github.com/umputun/newsbot/pkg/repository"
	"github.com/umputun/newsbot/pkg/scheduler"
)

var (
	_ scheduler.Store          = (*DataService)(nil)
	_ notify.SubscriptionStore = (*DataService)(nil)
)

func setupService(t *testing.T) *DataService {
	t.Helper()
	repos, err := repository.NewRepositories(context.Background(), repository.Config{DSN: ":memory:", MaxOpenConns: 1})
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })
	return NewDataService(repos)
}

func TestDataService_Sources(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	active := &domain.Source{URL: "https://example.com/rss", Kind: domain.KindRSS, Active: true}
	require.NoError(t, svc.sourceRepo.CreateSource(ctx, active))
	inactive := &domain.Source{URL: "https://example.com/news", Kind: domain.KindWebsite}
	require.NoError(t, svc.sourceRepo.CreateSource(ctx, inactive))

	got, err := svc.GetActiveSources(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, active.ID, got[0].ID)

	all, err := svc.GetSources(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	src, err := svc.GetSource(ctx, active.ID)
	require.NoError(t, err)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	src.ErrorCount = 2
	src.CheckCount = 5
	src.LastChecked = &now
	src.LastError = "timeout"
	require.NoError(t, svc.UpdateSourceCheck(ctx, src))

	src, err = svc.GetSource(ctx, active.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, src.ErrorCount)
	assert.Equal(t, 5, src.CheckCount)
	assert.Equal(t, "timeout", src.LastError)

	counts, err := svc.SourceCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.SourceCounts{Total: 2, Active: 1, InError: 1}, counts)

	_, err = svc.GetSource(ctx, 12345)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDataService_Subscriptions(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	src := &domain.Source{URL: "https://example.com/rss", Kind: domain.KindRSS, Active: true}
	require.NoError(t, svc.sourceRepo.CreateSource(ctx, src))
	sub := &domain.Subscription{UserID: 100, SourceID: src.ID, Active: true, NotificationEnabled: true}
	require.NoError(t, svc.subscriptionRepo.CreateSubscription(ctx, sub))

	subs, err := svc.GetNotifiableSubscriptions(ctx, src.ID)
	require.NoError(t, err)
	require.Len(t, subs, 1)

	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, svc.UpdateLastNotified(ctx, sub.ID, ts))
	subs, err = svc.GetNotifiableSubscriptions(ctx, src.ID)
	require.NoError(t, err)
	require.NotNil(t, subs[0].LastNotified)
	assert.True(t, ts.Equal(*subs[0].LastNotified))

	require.NoError(t, svc.SetSubscriptionActive(ctx, sub.ID, false))
	subs, err = svc.GetNotifiableSubscriptions(ctx, src.ID)
	require.NoError(t, err)
	assert.Empty(t, subs)

	counts, err := svc.SubscriptionCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.SubscriptionCounts{Total: 1, Active: 0}, counts)
}
