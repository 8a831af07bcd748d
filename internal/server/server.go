// Package server exposes compiled theme CSS over HTTP and pushes registry
// reloads to browsers over a websocket.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel/trace"

	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/log"
	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/presentation"
	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/pubsub"
	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/service"
	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/tracing"
)

const (
	DefaultListen   = ":8080"
	shutdownTimeout = 5 * time.Second
	cssCacheControl = "public, max-age=3600"
)

// Message types sent over /ws.
const (
	MsgHello          = "hello"
	MsgThemesReloaded = "themes-reloaded"
	MsgReloadFailed   = "reload-failed"
)

// Message is the JSON envelope sent to websocket clients.
type Message struct {
	Type     string `json:"type"`
	Themes   int    `json:"themes"`
	ClientID string `json:"client_id,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Options configures a Server.
type Options struct {
	Listen string
	Tracer trace.Tracer
	// CheckOrigin overrides the websocket origin check. The default accepts
	// every origin since the API is meant for local development.
	CheckOrigin func(r *http.Request) bool
}

// Server is the HTTP front end of a ThemeService.
type Server struct {
	svc      *service.ThemeService
	hub      *Hub
	opts     Options
	upgrader websocket.Upgrader
	handler  http.Handler
}

// New builds the routes for svc.
func New(svc *service.ThemeService, opts Options) *Server {
	if opts.Listen == "" {
		opts.Listen = DefaultListen
	}
	checkOrigin := opts.CheckOrigin
	if checkOrigin == nil {
		checkOrigin = func(*http.Request) bool { return true }
	}

	s := &Server{
		svc:  svc,
		hub:  NewHub(),
		opts: opts,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin,
		},
	}

	mux := http.NewServeMux()
	s.Register(mux)
	s.handler = tracing.Middleware(opts.Tracer)(mux)
	return s
}

// Register adds the API routes to mux.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/themes", s.handleThemes)
	mux.HandleFunc("GET /api/themes/{slug}", s.handleTheme)
	mux.HandleFunc("GET /api/themes/{slug}/global.css", s.cssHandler(s.svc.GlobalCSS))
	mux.HandleFunc("GET /api/themes/{slug}/animation.css", s.cssHandler(s.svc.AnimationCSS))
	mux.HandleFunc("GET /api/themes/{slug}/bundle.css", s.cssHandler(s.svc.Bundle))
	mux.HandleFunc("GET /api/themes/{slug}/vars.json", s.handleVars)
	mux.HandleFunc("GET /ws", s.handleWebsocket)
}

// Handler returns the root handler, wrapped in tracing middleware.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Hub returns the websocket hub.
func (s *Server) Hub() *Hub {
	return s.hub
}

// Run serves until ctx is cancelled, forwarding service reload events to
// websocket clients.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.opts.Listen,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go s.forwardReloads(s.svc.Subscribe(ctx))

	errCh := make(chan error, 1)
	go func() {
		log.Info(log.CatServer, "listening", "addr", s.opts.Listen)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.hub.CloseAll()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.ErrorErr(log.CatServer, "server shutdown", err)
		return err
	}
	return nil
}

// forwardReloads relays service events until the subscription closes.
func (s *Server) forwardReloads(events <-chan pubsub.Event[service.ReloadEvent]) {
	for ev := range events {
		s.hub.Broadcast(reloadMessage(ev))
	}
}

func reloadMessage(ev pubsub.Event[service.ReloadEvent]) Message {
	msg := Message{Type: MsgThemesReloaded, Themes: ev.Payload.Themes}
	if ev.Type == pubsub.FailedEvent {
		msg.Type = MsgReloadFailed
		if ev.Payload.Err != nil {
			msg.Error = ev.Payload.Err.Error()
		}
	}
	return msg
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "themes": s.svc.Registry().Len()})
}

func (s *Server) handleThemes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, presentation.FromThemes(s.svc.List()))
}

func (s *Server) handleTheme(w http.ResponseWriter, r *http.Request) {
	t, err := s.svc.Get(r.PathValue("slug"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, presentation.FromThemeDetail(t))
}

func (s *Server) cssHandler(generate func(context.Context, string) (string, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		css, err := generate(r.Context(), r.PathValue("slug"))
		if err != nil {
			writeError(w, err)
			return
		}
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		w.Header().Set("Cache-Control", cssCacheControl)
		_, _ = w.Write([]byte(css))
	}
}

func (s *Server) handleVars(w http.ResponseWriter, r *http.Request) {
	vars, err := s.svc.Vars(r.Context(), r.PathValue("slug"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vars)
}

func (s *Server) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		log.Warn(log.CatServer, "websocket upgrade failed", "error", err.Error())
		return
	}

	id := s.hub.Add(conn)
	if err := s.hub.Send(id, Message{Type: MsgHello, Themes: s.svc.Registry().Len(), ClientID: id}); err != nil {
		s.hub.Remove(id)
		return
	}

	// Read until the client goes away; incoming messages are ignored.
	go func() {
		defer s.hub.Remove(id)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.ErrorErr(log.CatServer, "encode response", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, service.ErrThemeNotFound) {
		status = http.StatusNotFound
	} else {
		log.ErrorErr(log.CatServer, "request failed", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
