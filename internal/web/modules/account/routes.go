// Package account serves the sign-up, sign-in, and sign-out flows.
package account

import (
	"net/http"

	module "github.com/codexly-app/codexly/internal/web/module"
	"github.com/codexly-app/codexly/internal/web/routepath"
)

// Module provides the unauthenticated account routes.
type Module struct{}

// New returns an account module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "account" }

// Mount wires account route handlers.
func (m Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	h := handlers{deps: deps}
	mux.HandleFunc(http.MethodGet+" "+routepath.SignUp, h.handleSignUpForm)
	mux.HandleFunc(http.MethodPost+" "+routepath.SignUp, h.handleSignUp)
	mux.HandleFunc(http.MethodGet+" "+routepath.SignIn, h.handleSignInForm)
	mux.HandleFunc(http.MethodPost+" "+routepath.SignIn, h.handleSignIn)
	mux.HandleFunc(http.MethodPost+" "+routepath.SignOut, h.handleSignOut)
	return module.Mount{Prefix: routepath.AccountPrefix, Handler: mux}, nil
}
