package snapshot

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "snapshots.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	clock := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}
	return s
}

func TestStore_SaveAndLatest(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	first, created, err := s.Save(ctx, "meadow", "global", ":root { --a: 1; }")
	require.NoError(t, err)
	require.True(t, created)
	require.Positive(t, first.ID)
	require.Equal(t, Digest(":root { --a: 1; }"), first.Digest)

	second, created, err := s.Save(ctx, "meadow", "global", ":root { --a: 2; }")
	require.NoError(t, err)
	require.True(t, created)
	require.Greater(t, second.ID, first.ID)

	latest, err := s.Latest(ctx, "meadow", "global")
	require.NoError(t, err)
	require.Equal(t, second.ID, latest.ID)
	require.Equal(t, ":root { --a: 2; }", latest.CSS)
	require.True(t, second.CreatedAt.Equal(latest.CreatedAt))
}

func TestStore_SaveUnchangedIsSkipped(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	first, _, err := s.Save(ctx, "meadow", "global", "a{}")
	require.NoError(t, err)

	again, created, err := s.Save(ctx, "meadow", "global", "a{}")
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, first.ID, again.ID)

	list, err := s.List(ctx, "meadow", 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestStore_SameCSSDifferentKind(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, _, err := s.Save(ctx, "meadow", "global", "a{}")
	require.NoError(t, err)
	_, created, err := s.Save(ctx, "meadow", "animation", "a{}")
	require.NoError(t, err)
	require.True(t, created, "kinds are tracked separately")
}

func TestStore_LatestMissing(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Latest(context.Background(), "meadow", "global")
	require.ErrorIs(t, err, ErrNoSnapshot)
	require.ErrorContains(t, err, "meadow (global)")
}

func TestStore_List(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	for _, css := range []string{"a", "b", "c"} {
		_, _, err := s.Save(ctx, "meadow", "global", css)
		require.NoError(t, err)
	}
	_, _, err := s.Save(ctx, "nordic-frost", "global", "x")
	require.NoError(t, err)

	all, err := s.List(ctx, "", 0)
	require.NoError(t, err)
	require.Len(t, all, 4)
	require.Equal(t, "nordic-frost", all[0].Slug, "newest first")
	require.Empty(t, all[0].CSS, "list omits css")

	meadow, err := s.List(ctx, "meadow", 2)
	require.NoError(t, err)
	require.Len(t, meadow, 2)
	require.Equal(t, Digest("c"), meadow[0].Digest)
	require.True(t, meadow[0].CreatedAt.After(meadow[1].CreatedAt))
}

func TestStore_Prune(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	for _, css := range []string{"a", "b", "c", "d"} {
		_, _, err := s.Save(ctx, "meadow", "global", css)
		require.NoError(t, err)
	}
	_, _, err := s.Save(ctx, "meadow", "animation", "z")
	require.NoError(t, err)

	n, err := s.Prune(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, int64(2), n)

	list, err := s.List(ctx, "meadow", 0)
	require.NoError(t, err)
	require.Len(t, list, 3)

	latest, err := s.Latest(ctx, "meadow", "global")
	require.NoError(t, err)
	require.Equal(t, "d", latest.CSS)

	n, err = s.Prune(ctx, 0)
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestStore_ReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "snapshots.db")

	s, err := Open(path)
	require.NoError(t, err)
	_, _, err = s.Save(ctx, "meadow", "vars", "{}")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()
	require.Equal(t, path, s.Path())

	latest, err := s.Latest(ctx, "meadow", "vars")
	require.NoError(t, err)
	require.Equal(t, "{}", latest.CSS)
}
