// Package weberror renders shared error responses for web modules.
package weberror

import (
	"errors"
	"net/http"

	apperrors "github.com/codexly-app/codexly/internal/platform/errors"
	"github.com/codexly-app/codexly/internal/web/platform/pagerender"
	"github.com/codexly-app/codexly/internal/web/templates"
)

// PublicMessage resolves a user-safe message for an error.
//
// Typed application errors carry messages written for end users; anything
// else falls back to the status text so internals never leak.
func PublicMessage(err error) string {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	return http.StatusText(statusCode)
}

// WriteError renders an error page with the status mapped from err.
func WriteError(w http.ResponseWriter, r *http.Request, err error, signedIn bool) {
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	WriteStatus(w, r, statusCode, PublicMessage(err), signedIn)
}

// WriteStatus renders an error page for an explicit status code.
func WriteStatus(w http.ResponseWriter, r *http.Request, statusCode int, message string, signedIn bool) {
	if w == nil {
		return
	}
	if message == "" {
		message = http.StatusText(statusCode)
	}
	renderErr := pagerender.WritePage(w, r, pagerender.Page{
		Title:      http.StatusText(statusCode),
		StatusCode: statusCode,
		SignedIn:   signedIn,
		Fragment:   templates.ErrorState(statusCode, message),
	})
	if renderErr != nil {
		http.Error(w, message, statusCode)
	}
}
