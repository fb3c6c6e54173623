package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/codexly-app/codexly/internal/web/routepath"
)

// Home renders the public landing page body.
func Home() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<section class="hero">
<h1>Your tasks and notes, in one place</h1>
<p>Codexly keeps a private task list and notebook for every account.</p>
<p>
<a class="button" href="%s">Create an account</a>
<a href="%s">Sign in</a>
</p>
</section>`, routepath.SignUp, routepath.SignIn)
		return err
	})
}
