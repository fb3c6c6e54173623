// Package module defines the contracts web modules implement to mount routes.
package module

import (
	"net/http"

	authservice "github.com/codexly-app/codexly/internal/auth/service"
	notesservice "github.com/codexly-app/codexly/internal/notes/service"
	tasksservice "github.com/codexly-app/codexly/internal/tasks/service"
)

// ResolveUserID resolves the acting user id for a request, or "" when the
// request carries no valid session.
type ResolveUserID func(*http.Request) string

// Dependencies carries the shared services every module may draw on.
type Dependencies struct {
	Auth          *authservice.Service
	Tasks         *tasksservice.Service
	Notes         *notesservice.Service
	ResolveUserID ResolveUserID
}

// Mount describes where a module's handler attaches to the root mux.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module is the mountable unit of the web surface.
type Module interface {
	ID() string
	Mount(Dependencies) (Mount, error)
}
