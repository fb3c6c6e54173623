// Package notes serves the authenticated notebook surface.
package notes

import (
	"net/http"

	module "github.com/codexly-app/codexly/internal/web/module"
	"github.com/codexly-app/codexly/internal/web/routepath"
)

// Module provides authenticated note routes.
type Module struct{}

// New returns a notes module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "notes" }

// Mount wires note route handlers.
func (m Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	h := handlers{deps: deps}
	mux.HandleFunc(http.MethodGet+" "+routepath.Notes+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodPost+" "+routepath.Notes+"{$}", h.handleCreate)
	mux.HandleFunc(http.MethodGet+" "+routepath.Notes+"{noteID}", h.handleEditForm)
	mux.HandleFunc(http.MethodPost+" "+routepath.Notes+"{noteID}", h.handleUpdate)
	mux.HandleFunc(http.MethodPost+" "+routepath.Notes+"{noteID}/delete", h.handleDelete)
	return module.Mount{Prefix: routepath.Notes, Handler: mux}, nil
}
