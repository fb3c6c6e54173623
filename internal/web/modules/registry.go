package modules

import (
	"github.com/codexly-app/codexly/internal/web/modules/account"
	"github.com/codexly-app/codexly/internal/web/modules/notes"
	"github.com/codexly-app/codexly/internal/web/modules/public"
	"github.com/codexly-app/codexly/internal/web/modules/tasks"
)

// DefaultPublicModules returns the modules mounted without authentication.
func DefaultPublicModules() []Module {
	return []Module{
		public.New(),
		account.New(),
	}
}

// DefaultProtectedModules returns the modules mounted behind a session.
func DefaultProtectedModules() []Module {
	return []Module{
		tasks.New(),
		notes.New(),
	}
}
