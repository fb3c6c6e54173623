package public

import (
	"net/http"

	module "github.com/codexly-app/codexly/internal/web/module"
	"github.com/codexly-app/codexly/internal/web/platform/pagerender"
	"github.com/codexly-app/codexly/internal/web/routepath"
	"github.com/codexly-app/codexly/internal/web/templates"
)

type handlers struct {
	deps module.Dependencies
}

// handleHome shows the landing page, or jumps straight to the task list for
// signed-in visitors.
func (h handlers) handleHome(w http.ResponseWriter, r *http.Request) {
	if h.deps.ResolveUserID != nil && h.deps.ResolveUserID(r) != "" {
		http.Redirect(w, r, routepath.Tasks, http.StatusFound)
		return
	}
	_ = pagerender.WritePage(w, r, pagerender.Page{
		Title:    "Welcome",
		Fragment: templates.Home(),
	})
}

func (handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
