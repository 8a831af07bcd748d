package log

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLevelString(t *testing.T) {
	require.Equal(t, "DEBUG", LevelDebug.String())
	require.Equal(t, "INFO", LevelInfo.String())
	require.Equal(t, "WARN", LevelWarn.String())
	require.Equal(t, "ERROR", LevelError.String())
	require.Equal(t, "UNKNOWN", Level(42).String())
}

func TestInitWriter_FormatsEntries(t *testing.T) {
	var buf bytes.Buffer
	restore := InitWriter(&buf)
	defer restore()

	Warn(CatTokens, "unresolved reference", "token", "primary", "ref", "Moss")

	line := buf.String()
	require.True(t, strings.HasSuffix(line, "\n"))
	require.Contains(t, line, " [WARN] [tokens] unresolved reference token=primary ref=Moss")
}

func TestOddFieldCount(t *testing.T) {
	var buf bytes.Buffer
	defer InitWriter(&buf)()

	Info(CatCSS, "generated", "slug")

	require.Contains(t, buf.String(), "generated slug=<missing>")
}

func TestErrorErr(t *testing.T) {
	var buf bytes.Buffer
	defer InitWriter(&buf)()

	ErrorErr(CatServer, "write failed", errors.New("broken pipe"), "client", 3)
	ErrorErr(CatServer, "no error", nil)

	out := buf.String()
	require.Contains(t, out, "[ERROR] [server] write failed client=3 error=broken pipe")
	require.Contains(t, out, "no error error=<nil>")
}

func TestSetMinLevel(t *testing.T) {
	var buf bytes.Buffer
	defer InitWriter(&buf)()

	SetMinLevel(LevelWarn)
	Debug(CatCache, "hit")
	Info(CatCache, "miss")
	Error(CatCache, "flush failed")

	out := buf.String()
	require.NotContains(t, out, "hit")
	require.NotContains(t, out, "miss")
	require.Contains(t, out, "flush failed")
}

func TestSetEnabled(t *testing.T) {
	var buf bytes.Buffer
	defer InitWriter(&buf)()

	SetEnabled(false)
	Info(CatConfig, "hidden")
	SetEnabled(true)
	Info(CatConfig, "shown")

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")
}

func TestRestoreReinstallsPrevious(t *testing.T) {
	var outer, inner bytes.Buffer
	restoreOuter := InitWriter(&outer)
	defer restoreOuter()

	restoreInner := InitWriter(&inner)
	Info(CatUI, "first")
	restoreInner()
	Info(CatUI, "second")

	require.Contains(t, inner.String(), "first")
	require.NotContains(t, inner.String(), "second")
	require.Contains(t, outer.String(), "second")
}

func TestNewListener(t *testing.T) {
	var buf bytes.Buffer
	defer InitWriter(&buf)()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := NewListener(ctx)
	require.NotNil(t, events)

	Info(CatWatcher, "theme changed", "file", "meadow.yaml")

	select {
	case ev := <-events:
		require.Contains(t, ev.Payload, "[watcher] theme changed file=meadow.yaml")
	case <-time.After(time.Second):
		t.Fatal("no log event received")
	}
}

func TestUninitializedIsNoop(t *testing.T) {
	previous := current()
	setLogger(nil)
	defer setLogger(previous)

	require.NotPanics(t, func() {
		Info(CatRegistry, "dropped")
		SetEnabled(false)
		SetMinLevel(LevelError)
	})
	require.Nil(t, NewListener(context.Background()))
}

func TestInit_AppendsToFile(t *testing.T) {
	defer setLogger(current())
	path := filepath.Join(t.TempDir(), "debug.log")

	cleanup, err := Init(path)
	require.NoError(t, err)
	Info(CatConfig, "starting")
	cleanup()
	setLogger(nil)

	cleanup, err = Init(path)
	require.NoError(t, err)
	Info(CatConfig, "again")
	cleanup()
	setLogger(nil)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "starting")
	require.Contains(t, string(data), "again")
}
