// Package templates renders the browser-facing pages as templ components.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/codexly-app/codexly/internal/web/routepath"
)

// Layout wraps page content in the shared application shell.
//
// The page body is supplied as templ children so modules compose their
// fragment with templ.WithChildren.
func Layout(title string, signedIn bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s · Codexly</title>
<link rel="stylesheet" href="/static/app.css">
</head>
<body>
<header class="site-header">
<a class="brand" href="%s">Codexly</a>
<nav>`, templ.EscapeString(title), routepath.Root); err != nil {
			return err
		}
		if signedIn {
			if _, err := fmt.Fprintf(w, `<a href="%s">Tasks</a>
<a href="%s">Notes</a>
<form class="inline" method="post" action="%s"><button type="submit">Sign out</button></form>`,
				routepath.Tasks, routepath.Notes, routepath.SignOut); err != nil {
				return err
			}
		} else {
			if _, err := fmt.Fprintf(w, `<a href="%s">Sign in</a>
<a href="%s">Sign up</a>`, routepath.SignIn, routepath.SignUp); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</nav>
</header>
<main>
`); err != nil {
			return err
		}
		if err := templ.GetChildren(ctx).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `
</main>
</body>
</html>
`)
		return err
	})
}

// FormError renders an inline validation message, or nothing when empty.
func FormError(message string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if message == "" {
			return nil
		}
		_, err := fmt.Fprintf(w, `<p class="form-error" role="alert">%s</p>`, templ.EscapeString(message))
		return err
	})
}

// ErrorState renders the shared error page body for an HTTP status.
func ErrorState(statusCode int, message string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<section class="error-state">
<h1>%d</h1>
<p>%s</p>
<p><a href="%s">Back to home</a></p>
</section>`, statusCode, templ.EscapeString(message), routepath.Root)
		return err
	})
}
