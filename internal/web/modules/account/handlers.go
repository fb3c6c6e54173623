package account

import (
	"errors"
	"net/http"
	"strings"

	module "github.com/codexly-app/codexly/internal/web/module"
	"github.com/codexly-app/codexly/internal/web/platform/pagerender"
	"github.com/codexly-app/codexly/internal/web/platform/sessioncookie"
	"github.com/codexly-app/codexly/internal/web/platform/weberror"
	"github.com/codexly-app/codexly/internal/web/routepath"
	"github.com/codexly-app/codexly/internal/web/templates"

	apperrors "github.com/codexly-app/codexly/internal/platform/errors"
)

type handlers struct {
	deps module.Dependencies
}

func (h handlers) handleSignUpForm(w http.ResponseWriter, r *http.Request) {
	_ = pagerender.WritePage(w, r, pagerender.Page{
		Title:    "Sign up",
		Fragment: templates.SignUpForm("", ""),
	})
}

func (h handlers) handleSignUp(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		weberror.WriteStatus(w, r, http.StatusBadRequest, "", false)
		return
	}
	email := strings.TrimSpace(r.PostFormValue("email"))
	password := r.PostFormValue("password")
	confirm := r.PostFormValue("confirm")

	_, token, err := h.deps.Auth.SignUp(r.Context(), email, password, confirm)
	if err != nil {
		h.rerenderSignUp(w, r, email, err)
		return
	}
	sessioncookie.Write(w, r, token)
	http.Redirect(w, r, routepath.Tasks, http.StatusFound)
}

// rerenderSignUp shows the form again with a message for expected failures
// and an error page for everything else.
func (h handlers) rerenderSignUp(w http.ResponseWriter, r *http.Request, email string, err error) {
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) || appErr.Code.HTTPStatus() >= http.StatusInternalServerError {
		weberror.WriteError(w, r, err, false)
		return
	}
	_ = pagerender.WritePage(w, r, pagerender.Page{
		Title:      "Sign up",
		StatusCode: appErr.Code.HTTPStatus(),
		Fragment:   templates.SignUpForm(email, weberror.PublicMessage(err)),
	})
}

func (h handlers) handleSignInForm(w http.ResponseWriter, r *http.Request) {
	_ = pagerender.WritePage(w, r, pagerender.Page{
		Title:    "Sign in",
		Fragment: templates.SignInForm("", ""),
	})
}

func (h handlers) handleSignIn(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		weberror.WriteStatus(w, r, http.StatusBadRequest, "", false)
		return
	}
	email := strings.TrimSpace(r.PostFormValue("email"))
	password := r.PostFormValue("password")

	_, token, err := h.deps.Auth.SignIn(r.Context(), email, password)
	if err != nil {
		var appErr *apperrors.Error
		if !errors.As(err, &appErr) || appErr.Code.HTTPStatus() >= http.StatusInternalServerError {
			weberror.WriteError(w, r, err, false)
			return
		}
		_ = pagerender.WritePage(w, r, pagerender.Page{
			Title:      "Sign in",
			StatusCode: appErr.Code.HTTPStatus(),
			Fragment:   templates.SignInForm(email, weberror.PublicMessage(err)),
		})
		return
	}
	sessioncookie.Write(w, r, token)
	http.Redirect(w, r, routepath.Tasks, http.StatusFound)
}

func (h handlers) handleSignOut(w http.ResponseWriter, r *http.Request) {
	sessioncookie.Clear(w, r)
	http.Redirect(w, r, routepath.Root, http.StatusFound)
}
