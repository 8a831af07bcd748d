package watcher_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/watcher"
)

func startWatcher(t *testing.T, dir string) <-chan struct{} {
	t.Helper()
	w, err := watcher.New(watcher.Config{Dir: dir, Debounce: 50 * time.Millisecond})
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	onChange, err := w.Start()
	require.NoError(t, err)
	return onChange
}

func expectSignal(t *testing.T, ch <-chan struct{}, msg string) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal(msg)
	}
}

func expectQuiet(t *testing.T, ch <-chan struct{}, msg string) {
	t.Helper()
	select {
	case <-ch:
		t.Fatal(msg)
	case <-time.After(150 * time.Millisecond):
	}
}

func TestWatcher_DebounceMultipleWrites(t *testing.T) {
	dir := t.TempDir()
	themePath := filepath.Join(dir, "ocean.yaml")
	require.NoError(t, os.WriteFile(themePath, []byte("name: Ocean\n"), 0644))

	onChange := startWatcher(t, dir)

	for i := 0; i < 10; i++ {
		require.NoError(t, os.WriteFile(themePath, []byte(fmt.Sprintf("name: Ocean %d\n", i)), 0644))
		time.Sleep(10 * time.Millisecond)
	}

	expectSignal(t, onChange, "expected notification but got timeout")
	expectQuiet(t, onChange, "unexpected second notification")
}

func TestWatcher_IgnoresNonThemeFiles(t *testing.T) {
	dir := t.TempDir()
	notes := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(notes, []byte("initial"), 0644))

	onChange := startWatcher(t, dir)

	require.NoError(t, os.WriteFile(notes, []byte("changed"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# themes"), 0644))

	expectQuiet(t, onChange, "should not notify for non-theme files")
}

func TestWatcher_NotifiesForEachThemeExtension(t *testing.T) {
	for _, name := range []string{"a.yaml", "b.yml", "c.json"} {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			onChange := startWatcher(t, dir)

			require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0644))
			expectSignal(t, onChange, "expected notification for "+name)
		})
	}
}

func TestWatcher_NotifiesOnRemove(t *testing.T) {
	dir := t.TempDir()
	themePath := filepath.Join(dir, "ocean.yaml")
	require.NoError(t, os.WriteFile(themePath, []byte("name: Ocean\n"), 0644))

	onChange := startWatcher(t, dir)

	require.NoError(t, os.Remove(themePath))
	expectSignal(t, onChange, "expected notification for removed theme")
}

func TestWatcher_WatchesNestedDirectories(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "clients")
	require.NoError(t, os.Mkdir(nested, 0755))

	onChange := startWatcher(t, dir)

	require.NoError(t, os.WriteFile(filepath.Join(nested, "acme.yaml"), []byte("name: Acme\n"), 0644))
	expectSignal(t, onChange, "expected notification for nested theme")
}

func TestWatcher_WatchesDirectoriesCreatedLater(t *testing.T) {
	dir := t.TempDir()
	onChange := startWatcher(t, dir)

	later := filepath.Join(dir, "later")
	require.NoError(t, os.Mkdir(later, 0755))
	expectQuiet(t, onChange, "creating a directory is not a theme change")

	require.NoError(t, os.WriteFile(filepath.Join(later, "acme.yml"), []byte("name: Acme\n"), 0644))
	expectSignal(t, onChange, "expected notification for theme in new directory")
}

func TestWatcher_StartMissingDir(t *testing.T) {
	w, err := watcher.New(watcher.Config{Dir: filepath.Join(t.TempDir(), "missing")})
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	_, err = w.Start()
	require.Error(t, err)
}

func TestWatcher_Stop(t *testing.T) {
	w, err := watcher.New(watcher.Config{Dir: t.TempDir(), Debounce: 50 * time.Millisecond})
	require.NoError(t, err)

	_, err = w.Start()
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		assert.NoError(t, w.Stop())
		assert.NoError(t, w.Stop(), "second Stop is a no-op")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("Stop() timed out - possible deadlock")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := watcher.DefaultConfig("/themes")

	assert.Equal(t, "/themes", cfg.Dir)
	assert.Equal(t, 300*time.Millisecond, cfg.Debounce)
}
