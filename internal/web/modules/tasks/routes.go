// Package tasks serves the authenticated task list surface.
package tasks

import (
	"net/http"

	module "github.com/codexly-app/codexly/internal/web/module"
	"github.com/codexly-app/codexly/internal/web/routepath"
)

// Module provides authenticated task routes.
type Module struct{}

// New returns a tasks module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "tasks" }

// Mount wires task route handlers.
func (m Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	h := handlers{deps: deps}
	mux.HandleFunc(http.MethodGet+" "+routepath.Tasks+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodPost+" "+routepath.Tasks+"{$}", h.handleCreate)
	mux.HandleFunc(http.MethodGet+" "+routepath.Tasks+"{taskID}/edit", h.handleEditForm)
	mux.HandleFunc(http.MethodPost+" "+routepath.Tasks+"{taskID}", h.handleUpdate)
	mux.HandleFunc(http.MethodPost+" "+routepath.Tasks+"{taskID}/toggle", h.handleToggle)
	mux.HandleFunc(http.MethodPost+" "+routepath.Tasks+"{taskID}/delete", h.handleDelete)
	return module.Mount{Prefix: routepath.Tasks, Handler: mux}, nil
}
