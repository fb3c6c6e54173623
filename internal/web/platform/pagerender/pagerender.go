// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/codexly-app/codexly/internal/web/platform/httpx"
	"github.com/codexly-app/codexly/internal/web/templates"
)

// Page describes a module page response.
type Page struct {
	Title      string
	StatusCode int
	SignedIn   bool
	Fragment   templ.Component
}

// WritePage renders a page fragment inside the shared application shell.
func WritePage(w http.ResponseWriter, r *http.Request, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = templ.NopComponent
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	ctx := templ.WithChildren(httpx.RequestContext(r), fragment)
	return templates.Layout(page.Title, page.SignedIn).Render(ctx, w)
}
