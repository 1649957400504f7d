// Package portal wires the portal service command.
package portal

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	platformcmd "github.com/tidemark/bluecarbon/internal/platform/cmd"
	"github.com/tidemark/bluecarbon/internal/services/portal/app"
	"github.com/tidemark/bluecarbon/internal/services/portal/storage/sqlite"
	"github.com/tidemark/bluecarbon/internal/services/portal/web"
)

// Config holds portal command configuration.
type Config struct {
	Addr   string `env:"BLUECARBON_PORTAL_ADDR" envDefault:"localhost:8091"`
	DBPath string `env:"BLUECARBON_PORTAL_DB" envDefault:"portal.db"`
}

// ParseConfig parses environment defaults and flag overrides into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "The portal HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "The portal SQLite database path")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the portal web server and blocks until the context ends.
func Run(ctx context.Context, cfg Config) error {
	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServicePortal, func(ctx context.Context) error {
		store, err := sqlite.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open portal store: %w", err)
		}
		defer func() {
			if err := store.Close(); err != nil {
				log.Printf("close portal store: %v", err)
			}
		}()

		httpServer := &http.Server{
			Addr:              cfg.Addr,
			Handler:           web.NewHandler(app.New(store)),
			ReadHeaderTimeout: 5 * time.Second,
		}
		return serve(ctx, httpServer)
	})
}

func serve(ctx context.Context, httpServer *http.Server) error {
	serveErr := make(chan error, 1)
	log.Printf("portal listening on %s", httpServer.Addr)
	go func() {
		serveErr <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
