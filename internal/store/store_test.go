package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTest(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordVisitAndStats(t *testing.T) {
	ctx := context.Background()
	s := openTest(t)
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

	visits := []Visit{
		{HashedIP: "aaaa", UserAgent: "ua", Path: "/", Timestamp: now.Add(-time.Hour)},
		{HashedIP: "aaaa", UserAgent: "ua", Path: "/projects", Timestamp: now.Add(-30 * time.Minute)},
		{HashedIP: "bbbb", UserAgent: "ua", Path: "/", Timestamp: now.AddDate(0, 0, -3)},
		{HashedIP: "cccc", UserAgent: "ua", Path: "/", Timestamp: now.AddDate(0, 0, -30)},
	}
	for _, v := range visits {
		require.NoError(t, s.RecordVisit(ctx, v))
	}

	stats, err := s.Stats(ctx, now)
	require.NoError(t, err)
	assert.EqualValues(t, 4, stats.TotalVisitors)
	assert.EqualValues(t, 3, stats.UniqueVisitors)
	assert.EqualValues(t, 2, stats.VisitorsToday)
	assert.EqualValues(t, 3, stats.VisitorsThisWeek)

	require.Len(t, stats.RecentVisitors, 4)
	assert.Equal(t, "/projects", stats.RecentVisitors[0].Path)
	assert.Equal(t, now.Add(-30*time.Minute), stats.RecentVisitors[0].Timestamp)
}

func TestRecordClickUpserts(t *testing.T) {
	ctx := context.Background()
	s := openTest(t)
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

	require.NoError(t, s.RecordClick(ctx, "demo", "art-gallery", "https://www.chalzart.in/", now))
	require.NoError(t, s.RecordClick(ctx, "demo", "art-gallery", "https://www.chalzart.in/", now))
	require.NoError(t, s.RecordClick(ctx, "post", "react-18", "https://pieces.app/x", now))

	links, err := s.Links(ctx, 10)
	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, "art-gallery", links[0].TargetID)
	assert.EqualValues(t, 2, links[0].Clicks)
	assert.Equal(t, now, links[0].CreatedAt)

	stats, err := s.Stats(ctx, now)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.TotalLinks)
	assert.EqualValues(t, 3, stats.TotalClicks)

	found, err := s.DeleteLink(ctx, "demo", "art-gallery")
	require.NoError(t, err)
	assert.True(t, found)

	found, err = s.DeleteLink(ctx, "demo", "art-gallery")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCleanup(t *testing.T) {
	ctx := context.Background()
	s := openTest(t)
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

	require.NoError(t, s.RecordVisit(ctx, Visit{HashedIP: "old", Timestamp: now.AddDate(-2, 0, 0)}))
	require.NoError(t, s.RecordVisit(ctx, Visit{HashedIP: "new", Timestamp: now}))

	n, err := s.Cleanup(ctx, now.AddDate(-1, 0, 0))
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	visits, err := s.Visitors(ctx, 10)
	require.NoError(t, err)
	require.Len(t, visits, 1)
	assert.Equal(t, "new", visits[0].HashedIP)
}

func TestStatsEmpty(t *testing.T) {
	s := openTest(t)
	stats, err := s.Stats(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalClicks)
	assert.Empty(t, stats.TopLinks)
	assert.Empty(t, stats.RecentVisitors)
}
