package cachemanager

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/vimtutor/internal/mocks"
)

type renderInput struct {
	LessonID string
	Width    int
}

func render(calls *int) func(context.Context, renderInput) (string, error) {
	return func(_ context.Context, in renderInput) (string, error) {
		*calls++
		return in.LessonID + " rendered", nil
	}
}

func TestReadThroughCache_Get_WithValueInCache(t *testing.T) {
	managerMock := mocks.NewMockCacheManager[string, string](t)
	managerMock.EXPECT().Get(mock.Anything, "1.1@80").Return("cached", true).Once()
	calls := 0

	c := NewReadThroughCache[string, string, renderInput](managerMock, render(&calls), time.Minute, false)

	got, err := c.Get(context.Background(), "1.1@80", renderInput{LessonID: "1.1"})
	require.NoError(t, err)
	require.Equal(t, "cached", got)
	require.Zero(t, calls)

	hits, misses := c.Stats()
	require.Equal(t, int64(1), hits)
	require.Zero(t, misses)
}

func TestReadThroughCache_Get_MissStoresValue(t *testing.T) {
	managerMock := mocks.NewMockCacheManager[string, string](t)
	managerMock.EXPECT().Get(mock.Anything, "2.1@60").Return("", false).Once()
	managerMock.EXPECT().Set(mock.Anything, "2.1@60", "2.1 rendered", time.Minute).Return().Once()
	calls := 0

	c := NewReadThroughCache[string, string, renderInput](managerMock, render(&calls), time.Minute, false)

	got, err := c.Get(context.Background(), "2.1@60", renderInput{LessonID: "2.1", Width: 60})
	require.NoError(t, err)
	require.Equal(t, "2.1 rendered", got)
	require.Equal(t, 1, calls)
}

func TestReadThroughCache_Get_ErrorNotCached(t *testing.T) {
	managerMock := mocks.NewMockCacheManager[string, string](t)
	managerMock.EXPECT().Get(mock.Anything, "k").Return("", false).Once()

	c := NewReadThroughCache[string, string, renderInput](
		managerMock,
		func(context.Context, renderInput) (string, error) { return "", errors.New("boom") },
		time.Minute,
		false,
	)

	_, err := c.Get(context.Background(), "k", renderInput{})
	require.EqualError(t, err, "boom")
}

func TestReadThroughCache_RefreshOnHit(t *testing.T) {
	managerMock := mocks.NewMockCacheManager[string, string](t)
	managerMock.EXPECT().GetWithRefresh(mock.Anything, "k", time.Hour).Return("", false).Once()
	managerMock.EXPECT().Set(mock.Anything, "k", "3.1 rendered", time.Hour).Return().Once()
	calls := 0

	c := NewReadThroughCache[string, string, renderInput](managerMock, render(&calls), time.Hour, true)

	got, err := c.Get(context.Background(), "k", renderInput{LessonID: "3.1"})
	require.NoError(t, err)
	require.Equal(t, "3.1 rendered", got)
}

func TestReadThroughCache_InvalidateResetsStats(t *testing.T) {
	managerMock := mocks.NewMockCacheManager[string, string](t)
	managerMock.EXPECT().Get(mock.Anything, "k").Return("", false).Once()
	managerMock.EXPECT().Set(mock.Anything, "k", " rendered", time.Minute).Return().Once()
	managerMock.EXPECT().Flush(mock.Anything).Return(nil).Once()
	calls := 0

	c := NewReadThroughCache[string, string, renderInput](managerMock, render(&calls), time.Minute, false)
	_, err := c.Get(context.Background(), "k", renderInput{})
	require.NoError(t, err)

	require.NoError(t, c.Invalidate(context.Background()))
	hits, misses := c.Stats()
	require.Zero(t, hits)
	require.Zero(t, misses)
}

func TestReadThroughCache_WithInMemoryManager(t *testing.T) {
	calls := 0
	c := NewReadThroughCache[string, string, renderInput](
		NewInMemoryCacheManager[string, string]("render", time.Minute, time.Minute),
		render(&calls),
		0,
		true,
	)

	ctx := context.Background()
	for range 3 {
		got, err := c.Get(ctx, "1.1@80", renderInput{LessonID: "1.1"})
		require.NoError(t, err)
		require.Equal(t, "1.1 rendered", got)
	}
	require.Equal(t, 1, calls)

	hits, misses := c.Stats()
	require.Equal(t, int64(2), hits)
	require.Equal(t, int64(1), misses)
}
