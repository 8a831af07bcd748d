package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/presentation"
	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/pubsub"
	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/registry"
	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/service"
)

func newTestServer(t *testing.T) (*Server, *service.ThemeService, *httptest.Server) {
	t.Helper()

	themes, err := registry.LoadBuiltIn()
	require.NoError(t, err)

	svc := service.New(registry.New(themes...), service.Options{})
	t.Cleanup(svc.Close)

	srv := New(svc, Options{})
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return srv, svc, ts
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestThemes_List(t *testing.T) {
	_, _, ts := newTestServer(t)

	resp, body := get(t, ts.URL+"/api/themes")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var themes []presentation.ThemeSummaryDTO
	require.NoError(t, json.Unmarshal([]byte(body), &themes))
	require.Len(t, themes, 3)
	require.Equal(t, "ember-studio", themes[0].Slug)
	require.Equal(t, "theme-ember-studio", themes[0].RootClass)
	require.Nil(t, themes[2].Rating, "unrated themes rank last")
}

func TestTheme_Detail(t *testing.T) {
	_, _, ts := newTestServer(t)

	resp, body := get(t, ts.URL+"/api/themes/meadow")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var detail presentation.ThemeDetailDTO
	require.NoError(t, json.Unmarshal([]byte(body), &detail))
	require.Equal(t, "meadow", detail.Slug)
	require.Equal(t, "glow", detail.Preset)
	require.NotEmpty(t, detail.Colors)
}

func TestCSSRoutes(t *testing.T) {
	_, svc, ts := newTestServer(t)
	ctx := context.Background()

	global, err := svc.GlobalCSS(ctx, "nordic-frost")
	require.NoError(t, err)
	anim, err := svc.AnimationCSS(ctx, "nordic-frost")
	require.NoError(t, err)

	tests := []struct {
		path string
		want string
	}{
		{"/api/themes/nordic-frost/global.css", global},
		{"/api/themes/nordic-frost/animation.css", anim},
		{"/api/themes/nordic-frost/bundle.css", global + "\n" + anim},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, body := get(t, ts.URL+tt.path)
			require.Equal(t, http.StatusOK, resp.StatusCode)
			require.Equal(t, "text/css; charset=utf-8", resp.Header.Get("Content-Type"))
			require.Equal(t, "public, max-age=3600", resp.Header.Get("Cache-Control"))
			require.Equal(t, tt.want, body)
		})
	}
}

func TestVarsRoute(t *testing.T) {
	_, svc, ts := newTestServer(t)

	resp, body := get(t, ts.URL+"/api/themes/ember-studio/vars.json")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var vars map[string]string
	require.NoError(t, json.Unmarshal([]byte(body), &vars))

	want, err := svc.Vars(context.Background(), "ember-studio")
	require.NoError(t, err)
	require.Equal(t, map[string]string(want), vars)
}

func TestUnknownSlugIs404(t *testing.T) {
	_, _, ts := newTestServer(t)

	for _, path := range []string{
		"/api/themes/nope",
		"/api/themes/nope/global.css",
		"/api/themes/nope/animation.css",
		"/api/themes/nope/bundle.css",
		"/api/themes/nope/vars.json",
	} {
		resp, body := get(t, ts.URL+path)
		require.Equal(t, http.StatusNotFound, resp.StatusCode, path)
		require.Contains(t, body, "theme not found", path)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	_, _, ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/api/themes", "application/json", strings.NewReader("{}"))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	_, _, ts := newTestServer(t)

	resp, body := get(t, ts.URL+"/api/health")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, `{"status":"ok","themes":3}`, body)
}

func dialWS(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	resp.Body.Close()
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) Message {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg Message
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestWebsocket_HelloAndReloadBroadcast(t *testing.T) {
	srv, svc, ts := newTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go srv.forwardReloads(svc.Subscribe(ctx))

	conn := dialWS(t, ts)

	hello := readMessage(t, conn)
	require.Equal(t, MsgHello, hello.Type)
	require.Equal(t, 3, hello.Themes)
	_, err := uuid.Parse(hello.ClientID)
	require.NoError(t, err)
	require.Equal(t, 1, srv.Hub().Len())

	b, err := registry.ParseTheme([]byte("name: Only\ncolors: []\nfonts: []\n"))
	require.NoError(t, err)
	svc.Reload(ctx, registry.New(&registry.Theme{Brand: b}))

	msg := readMessage(t, conn)
	require.Equal(t, Message{Type: MsgThemesReloaded, Themes: 1}, msg)
}

func TestWebsocket_ClientDisconnectIsRemoved(t *testing.T) {
	srv, _, ts := newTestServer(t)

	conn := dialWS(t, ts)
	_ = readMessage(t, conn)
	require.Equal(t, 1, srv.Hub().Len())

	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool { return srv.Hub().Len() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestReloadMessage(t *testing.T) {
	ok := reloadMessage(pubsub.Event[service.ReloadEvent]{
		Type:    pubsub.ReloadedEvent,
		Payload: service.ReloadEvent{Themes: 4},
	})
	require.Equal(t, Message{Type: MsgThemesReloaded, Themes: 4}, ok)

	failed := reloadMessage(pubsub.Event[service.ReloadEvent]{
		Type:    pubsub.FailedEvent,
		Payload: service.ReloadEvent{Themes: 3, Err: errors.New("bad yaml")},
	})
	require.Equal(t, Message{Type: MsgReloadFailed, Themes: 3, Error: "bad yaml"}, failed)
}
