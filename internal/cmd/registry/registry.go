// Package registry wires the registry service command.
package registry

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	platformcmd "github.com/tidemark/bluecarbon/internal/platform/cmd"
	"github.com/tidemark/bluecarbon/internal/services/registry/app"
	"github.com/tidemark/bluecarbon/internal/services/registry/storage/sqlite"
	"github.com/tidemark/bluecarbon/internal/services/registry/web"
)

// Config holds registry command configuration.
type Config struct {
	Addr   string `env:"BLUECARBON_REGISTRY_ADDR" envDefault:"localhost:8090"`
	DBPath string `env:"BLUECARBON_REGISTRY_DB" envDefault:"registry.db"`
}

// ParseConfig parses environment defaults and flag overrides into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "The registry HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "The registry SQLite database path")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the registry web server and blocks until the context ends.
func Run(ctx context.Context, cfg Config) error {
	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceRegistry, func(ctx context.Context) error {
		store, err := sqlite.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open registry store: %w", err)
		}
		defer func() {
			if err := store.Close(); err != nil {
				log.Printf("close registry store: %v", err)
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
	log.Printf("registry listening on %s", httpServer.Addr)
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
