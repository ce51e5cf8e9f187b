package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsbot/pkg/domain"
)

func TestSourceRepository_CreateAndGet(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	src := &domain.Source{URL: "https://example.com/feed.xml", Kind: domain.KindRSS, Title: "Example", Active: true}
	require.NoError(t, repos.Source.CreateSource(ctx, src))
	assert.NotZero(t, src.ID)

	got, err := repos.Source.GetSource(ctx, src.ID)
	require.NoError(t, err)
	assert.Equal(t, src.URL, got.URL)
	assert.Equal(t, domain.KindRSS, got.Kind)
	assert.Equal(t, "Example", got.Title)
	assert.True(t, got.Active)
	assert.Zero(t, got.ErrorCount)
	assert.Zero(t, got.CheckCount)
	assert.Nil(t, got.LastChecked)
	assert.Nil(t, got.LastUpdated)

	t.Run("default kind", func(t *testing.T) {
		s := &domain.Source{URL: "https://example.com/news", Active: true}
		require.NoError(t, repos.Source.CreateSource(ctx, s))
		got, err := repos.Source.GetSource(ctx, s.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.KindWebsite, got.Kind)
	})

	t.Run("duplicate url", func(t *testing.T) {
		err := repos.Source.CreateSource(ctx, &domain.Source{URL: src.URL, Kind: domain.KindRSS})
		require.Error(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repos.Source.GetSource(ctx, 9999)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestSourceRepository_GetSources(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	for i, active := range []bool{true, false, true} {
		src := &domain.Source{URL: "https://example.com/" + string(rune('a'+i)), Kind: domain.KindRSS, Active: active}
		require.NoError(t, repos.Source.CreateSource(ctx, src))
	}

	all, err := repos.Source.GetSources(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	active, err := repos.Source.GetActiveSources(ctx)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "https://example.com/a", active[0].URL)
	assert.Equal(t, "https://example.com/c", active[1].URL)
}

func TestSourceRepository_UpdateSourceCheck(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	src := &domain.Source{URL: "https://example.com/feed.xml", Kind: domain.KindRSS, Active: true}
	require.NoError(t, repos.Source.CreateSource(ctx, src))

	checked := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	updated := checked.Add(-time.Minute)
	src.CheckCount = 7
	src.ErrorCount = 10
	src.Active = false
	src.LastChecked = &checked
	src.LastUpdated = &updated
	src.LastError = "timeout"
	require.NoError(t, repos.Source.UpdateSourceCheck(ctx, src))

	got, err := repos.Source.GetSource(ctx, src.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, got.CheckCount)
	assert.Equal(t, 10, got.ErrorCount)
	assert.False(t, got.Active)
	assert.Equal(t, "timeout", got.LastError)
	require.NotNil(t, got.LastChecked)
	require.NotNil(t, got.LastUpdated)
	assert.True(t, checked.Equal(*got.LastChecked), "last checked %v", got.LastChecked)
	assert.True(t, updated.Equal(*got.LastUpdated), "last updated %v", got.LastUpdated)

	active, err := repos.Source.GetActiveSources(ctx)
	require.NoError(t, err)
	assert.Empty(t, active, "deactivated source is excluded")
}

func TestSourceRepository_UpdateSourceCheckKeepsDisabled(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	src := &domain.Source{URL: "https://example.com/feed.xml", Kind: domain.KindRSS, Active: true}
	require.NoError(t, repos.Source.CreateSource(ctx, src))
	snapshot := *src // taken before the check started

	require.NoError(t, repos.Source.SetSourceActive(ctx, src.ID, false))

	checked := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	snapshot.CheckCount = 1
	snapshot.LastChecked = &checked
	require.NoError(t, repos.Source.UpdateSourceCheck(ctx, &snapshot))

	got, err := repos.Source.GetSource(ctx, src.ID)
	require.NoError(t, err)
	assert.False(t, got.Active, "check commit doesn't re-enable the source")
	assert.Equal(t, 1, got.CheckCount)
	require.NotNil(t, got.LastChecked)
	assert.True(t, checked.Equal(*got.LastChecked))
}

func TestSourceRepository_SetSourceActive(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	src := &domain.Source{URL: "https://example.com/feed.xml", Kind: domain.KindRSS, Active: true}
	require.NoError(t, repos.Source.CreateSource(ctx, src))
	src.ErrorCount = 10
	src.Active = false
	src.LastError = "boom"
	require.NoError(t, repos.Source.UpdateSourceCheck(ctx, src))

	require.NoError(t, repos.Source.SetSourceActive(ctx, src.ID, true))
	got, err := repos.Source.GetSource(ctx, src.ID)
	require.NoError(t, err)
	assert.True(t, got.Active)
	assert.Zero(t, got.ErrorCount)
	assert.Empty(t, got.LastError)

	require.ErrorIs(t, repos.Source.SetSourceActive(ctx, 12345, true), domain.ErrNotFound)
}

func TestSourceRepository_CountSources(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	counts, err := repos.Source.CountSources(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.SourceCounts{}, counts)

	sources := []*domain.Source{
		{URL: "https://a.example.com", Active: true},
		{URL: "https://b.example.com", Active: true},
		{URL: "https://c.example.com", Active: false},
	}
	for _, s := range sources {
		require.NoError(t, repos.Source.CreateSource(ctx, s))
	}
	sources[1].ErrorCount = 2
	require.NoError(t, repos.Source.UpdateSourceCheck(ctx, sources[1]))

	counts, err = repos.Source.CountSources(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.SourceCounts{Total: 3, Active: 2, InError: 1}, counts)
}
