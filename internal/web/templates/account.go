package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/codexly-app/codexly/internal/web/routepath"
)

// SignInForm renders the sign-in page body.
func SignInForm(email, errorMessage string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section class="auth-form">
<h1>Sign in</h1>
`); err != nil {
			return err
		}
		if err := FormError(errorMessage).Render(ctx, w); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, `<form method="post" action="%s">
<label>Email <input type="email" name="email" value="%s" required autofocus></label>
<label>Password <input type="password" name="password" required></label>
<button type="submit">Sign in</button>
</form>
<p>No account yet? <a href="%s">Sign up</a></p>
</section>`, routepath.SignIn, templ.EscapeString(email), routepath.SignUp)
		return err
	})
}

// SignUpForm renders the registration page body.
func SignUpForm(email, errorMessage string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section class="auth-form">
<h1>Sign up</h1>
`); err != nil {
			return err
		}
		if err := FormError(errorMessage).Render(ctx, w); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, `<form method="post" action="%s">
<label>Email <input type="email" name="email" value="%s" required autofocus></label>
<label>Password <input type="password" name="password" required minlength="8"></label>
<label>Confirm password <input type="password" name="confirm" required minlength="8"></label>
<button type="submit">Sign up</button>
</form>
<p>Already registered? <a href="%s">Sign in</a></p>
</section>`, routepath.SignUp, templ.EscapeString(email), routepath.SignIn)
		return err
	})
}
