package cachemanager

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/mocks"
)

type sheetRequest struct {
	Slug string
}

func compileSheet(_ context.Context, in sheetRequest) (string, error) {
	return ".theme-" + in.Slug + " {}", nil
}

func TestReadThroughCache_Get_WithCacheDisabled(t *testing.T) {
	managerMock := mocks.NewMockCacheManager[string, string](t)

	rtc := NewReadThroughCache[string, string, sheetRequest](managerMock, compileSheet, true)

	css, err := rtc.Get(context.Background(), "global:meadow", sheetRequest{Slug: "meadow"}, time.Minute)
	require.NoError(t, err)
	require.Equal(t, ".theme-meadow {}", css)
}

func TestReadThroughCache_GetWithRefresh_WithCacheDisabled(t *testing.T) {
	managerMock := mocks.NewMockCacheManager[string, string](t)

	rtc := NewReadThroughCache[string, string, sheetRequest](managerMock, compileSheet, true)

	css, err := rtc.GetWithRefresh(context.Background(), "global:meadow", sheetRequest{Slug: "meadow"}, time.Minute)
	require.NoError(t, err)
	require.Equal(t, ".theme-meadow {}", css)
}

func TestReadThroughCache_Get_WithValueInCache(t *testing.T) {
	managerMock := mocks.NewMockCacheManager[string, string](t)
	managerMock.EXPECT().Get(mock.Anything, "global:meadow").Return("cached", true)

	rtc := NewReadThroughCache[string, string, sheetRequest](managerMock, compileSheet, false)

	css, err := rtc.Get(context.Background(), "global:meadow", sheetRequest{Slug: "meadow"}, time.Minute)
	require.NoError(t, err)
	require.Equal(t, "cached", css)
}

func TestReadThroughCache_Get_EmptyCache(t *testing.T) {
	managerMock := mocks.NewMockCacheManager[string, string](t)
	managerMock.EXPECT().Get(mock.Anything, "global:meadow").Return("", false)
	managerMock.EXPECT().Set(mock.Anything, "global:meadow", ".theme-meadow {}", time.Minute).Return()

	rtc := NewReadThroughCache[string, string, sheetRequest](managerMock, compileSheet, false)

	css, err := rtc.Get(context.Background(), "global:meadow", sheetRequest{Slug: "meadow"}, time.Minute)
	require.NoError(t, err)
	require.Equal(t, ".theme-meadow {}", css)
}

func TestReadThroughCache_Get_LoaderError(t *testing.T) {
	managerMock := mocks.NewMockCacheManager[string, string](t)
	managerMock.EXPECT().Get(mock.Anything, "global:meadow").Return("", false)

	rtc := NewReadThroughCache[string, string, sheetRequest](
		managerMock,
		func(context.Context, sheetRequest) (string, error) {
			return "", errors.New("compile failed")
		},
		false,
	)

	_, err := rtc.Get(context.Background(), "global:meadow", sheetRequest{Slug: "meadow"}, time.Minute)
	require.EqualError(t, err, "compile failed")
}

func TestReadThroughCache_GetWithRefresh_WithValueInCache(t *testing.T) {
	managerMock := mocks.NewMockCacheManager[string, string](t)
	managerMock.EXPECT().GetWithRefresh(mock.Anything, "global:meadow", time.Minute).Return("cached", true)

	rtc := NewReadThroughCache[string, string, sheetRequest](managerMock, compileSheet, false)

	css, err := rtc.GetWithRefresh(context.Background(), "global:meadow", sheetRequest{Slug: "meadow"}, time.Minute)
	require.NoError(t, err)
	require.Equal(t, "cached", css)
}

func TestReadThroughCache_GetWithRefresh_EmptyCache(t *testing.T) {
	managerMock := mocks.NewMockCacheManager[string, string](t)
	managerMock.EXPECT().GetWithRefresh(mock.Anything, "global:meadow", mock.Anything).Return("", false)
	managerMock.EXPECT().Set(mock.Anything, "global:meadow", ".theme-meadow {}", mock.Anything).Return()

	rtc := NewReadThroughCache[string, string, sheetRequest](managerMock, compileSheet, false)

	css, err := rtc.GetWithRefresh(context.Background(), "global:meadow", sheetRequest{Slug: "meadow"}, time.Minute)
	require.NoError(t, err)
	require.Equal(t, ".theme-meadow {}", css)
}

func TestReadThroughCache_GetWithRefresh_LoaderError(t *testing.T) {
	managerMock := mocks.NewMockCacheManager[string, string](t)
	managerMock.EXPECT().GetWithRefresh(mock.Anything, "global:meadow", mock.Anything).Return("", false)

	rtc := NewReadThroughCache[string, string, sheetRequest](
		managerMock,
		func(context.Context, sheetRequest) (string, error) {
			return "", errors.New("compile failed")
		},
		false,
	)

	_, err := rtc.GetWithRefresh(context.Background(), "global:meadow", sheetRequest{Slug: "meadow"}, time.Minute)
	require.Error(t, err)
}

func TestReadThroughCache_Invalidate(t *testing.T) {
	managerMock := mocks.NewMockCacheManager[string, string](t)
	managerMock.EXPECT().Flush(mock.Anything).Return(nil)

	rtc := NewReadThroughCache[string, string, sheetRequest](managerMock, compileSheet, false)
	require.NoError(t, rtc.Invalidate(context.Background()))
}

func TestReadThroughCache_WithInMemoryCache(t *testing.T) {
	calls := 0
	rtc := NewReadThroughCache[string, string, sheetRequest](
		NewInMemoryCacheManager[string, string]("css", DefaultExpiration, DefaultCleanupInterval),
		func(ctx context.Context, in sheetRequest) (string, error) {
			calls++
			return compileSheet(ctx, in)
		},
		false,
	)

	for range 3 {
		css, err := rtc.Get(context.Background(), "global:meadow", sheetRequest{Slug: "meadow"}, time.Minute)
		require.NoError(t, err)
		require.Equal(t, ".theme-meadow {}", css)
	}
	require.Equal(t, 1, calls)

	require.NoError(t, rtc.Invalidate(context.Background()))
	_, err := rtc.Get(context.Background(), "global:meadow", sheetRequest{Slug: "meadow"}, time.Minute)
	require.NoError(t, err)
	require.Equal(t, 2, calls)
}
