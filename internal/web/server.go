// Package web hosts the browser-facing service.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	authservice "github.com/codexly-app/codexly/internal/auth/service"
	notesservice "github.com/codexly-app/codexly/internal/notes/service"
	"github.com/codexly-app/codexly/internal/platform/requestctx"
	"github.com/codexly-app/codexly/internal/platform/timeouts"
	tasksservice "github.com/codexly-app/codexly/internal/tasks/service"
	webapp "github.com/codexly-app/codexly/internal/web/app"
	module "github.com/codexly-app/codexly/internal/web/module"
	"github.com/codexly-app/codexly/internal/web/modules"
	"github.com/codexly-app/codexly/internal/web/platform/httpx"
	"github.com/codexly-app/codexly/internal/web/platform/sessioncookie"
	webstatic "github.com/codexly-app/codexly/internal/web/static"
)

// Config defines startup inputs for the web service.
type Config struct {
	HTTPAddr string
	Auth     *authservice.Service
	Tasks    *tasksservice.Service
	Notes    *notesservice.Service
}

// Server hosts the HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds a root handler from the default module registry groups.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.Auth == nil {
		return nil, errors.New("auth service is required")
	}
	if cfg.Tasks == nil {
		return nil, errors.New("tasks service is required")
	}
	if cfg.Notes == nil {
		return nil, errors.New("notes service is required")
	}

	deps := module.Dependencies{
		Auth:          cfg.Auth,
		Tasks:         cfg.Tasks,
		Notes:         cfg.Notes,
		ResolveUserID: resolveRequestUserID,
	}
	h, err := webapp.Compose(webapp.ComposeInput{
		Dependencies:     deps,
		AuthRequired:     func(r *http.Request) bool { return resolveRequestUserID(r) != "" },
		PublicModules:    modules.DefaultPublicModules(),
		ProtectedModules: modules.DefaultProtectedModules(),
	})
	if err != nil {
		return nil, err
	}

	rootMux := http.NewServeMux()
	rootMux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(webstatic.FS))))
	rootMux.Handle("/", h)
	return httpx.Chain(rootMux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		withSessionPrincipal(cfg.Auth),
		httpx.RequestLogger(log.Default()),
	), nil
}

func resolveRequestUserID(r *http.Request) string {
	if r == nil {
		return ""
	}
	return requestctx.UserIDFromContext(r.Context())
}

// withSessionPrincipal resolves the session cookie once per request and
// stores the acting user id on the context.
func withSessionPrincipal(auth *authservice.Service) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := sessioncookie.Read(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}
			userID, err := auth.ResolveUserID(r.Context(), token)
			if err != nil {
				// Stale cookies get cleared instead of lingering until expiry.
				sessioncookie.Clear(w, r)
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(requestctx.WithUserID(r.Context(), userID)))
		})
	}
}

// NewServer validates config and constructs a web server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose web handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown web http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve web http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
