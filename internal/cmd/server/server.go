// Package server parses web service flags and launches the service.
package server

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"

	authservice "github.com/codexly-app/codexly/internal/auth/service"
	"github.com/codexly-app/codexly/internal/auth/session"
	notesservice "github.com/codexly-app/codexly/internal/notes/service"
	entrypoint "github.com/codexly-app/codexly/internal/platform/cmd"
	"github.com/codexly-app/codexly/internal/storage/sqlite"
	tasksservice "github.com/codexly-app/codexly/internal/tasks/service"
	"github.com/codexly-app/codexly/internal/web"
)

// Config holds server command configuration.
type Config struct {
	HTTPAddr      string `env:"HTTP_ADDR" envDefault:":8080"`
	DBPath        string `env:"DB_PATH" envDefault:"codexly.db"`
	SessionSecret string `env:"SESSION_SECRET"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "The HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "Path to the SQLite database file")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the web service and blocks until ctx is cancelled.
func Run(ctx context.Context, cfg Config) error {
	if strings.TrimSpace(cfg.SessionSecret) == "" {
		return errors.New("CODEXLY_SESSION_SECRET is required")
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceServer, func(ctx context.Context) error {
		store, err := sqlite.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open storage: %w", err)
		}
		defer func() {
			if err := store.Close(); err != nil {
				log.Printf("close storage: %v", err)
			}
		}()

		sessions, err := session.NewManager([]byte(cfg.SessionSecret), session.DefaultTTL)
		if err != nil {
			return fmt.Errorf("configure sessions: %w", err)
		}

		srv, err := web.NewServer(ctx, web.Config{
			HTTPAddr: cfg.HTTPAddr,
			Auth:     authservice.NewService(store, sessions),
			Tasks:    tasksservice.NewService(store),
			Notes:    notesservice.NewService(store),
		})
		if err != nil {
			return fmt.Errorf("configure web server: %w", err)
		}
		defer srv.Close()

		log.Printf("listening on %s", cfg.HTTPAddr)
		return srv.ListenAndServe(ctx)
	})
}
