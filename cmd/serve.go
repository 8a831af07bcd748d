package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/log"
	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/server"
	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/service"
	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/watcher"
)

var (
	serveListen  string
	serveNoWatch bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve theme CSS over HTTP with live reload",
	Long: `Serve every theme's stylesheets over HTTP:

  GET /api/health
  GET /api/themes
  GET /api/themes/{slug}
  GET /api/themes/{slug}/global.css
  GET /api/themes/{slug}/animation.css
  GET /api/themes/{slug}/bundle.css
  GET /api/themes/{slug}/vars.json
  GET /ws                             reload notifications

The themes directory is watched; edits rebuild the registry and connected
websocket clients receive a "themes-reloaded" message.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveListen, "listen", "l", "", "address to listen on (overrides server.listen)")
	serveCmd.Flags().BoolVar(&serveNoWatch, "no-watch", false, "do not reload when theme files change")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	svc, err := newService()
	if err != nil {
		return err
	}
	defer svc.Close()

	listen := cfg.Server.Listen
	if serveListen != "" {
		listen = serveListen
	}

	if cfg.Server.Watch && !serveNoWatch {
		if err := watchThemes(ctx, svc, themesDir()); err != nil {
			return err
		}
	}

	srv := server.New(svc, server.Options{Listen: listen, Tracer: provider.Tracer()})
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "serving %d themes on %s\n", svc.Registry().Len(), listen)
	return srv.Run(ctx)
}

// watchThemes refreshes svc whenever files under dir change, until ctx ends.
// A missing directory is not watched.
func watchThemes(ctx context.Context, svc *service.ThemeService, dir string) error {
	if dir == "" {
		return nil
	}
	w, err := watcher.New(watcher.DefaultConfig(dir))
	if err != nil {
		return err
	}
	changes, err := w.Start()
	if err != nil {
		_ = w.Stop()
		log.Warn(log.CatWatcher, "Not watching themes", "dir", dir, "error", err.Error())
		return nil
	}

	go func() {
		defer func() { _ = w.Stop() }()
		for {
			select {
			case <-ctx.Done():
				return
			case <-changes:
				if err := svc.Refresh(ctx); err != nil {
					log.ErrorErr(log.CatWatcher, "Theme reload failed", err, "dir", dir)
				}
			}
		}
	}()
	log.Info(log.CatWatcher, "Watching themes", "dir", dir)
	return nil
}
