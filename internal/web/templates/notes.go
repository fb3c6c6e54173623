package templates

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/a-h/templ"
	notedomain "github.com/codexly-app/codexly/internal/notes/domain"
	"github.com/codexly-app/codexly/internal/web/routepath"
)

// NoteList renders the note index body, most recently updated first.
func NoteList(notes []notedomain.Note, errorMessage string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section class="notes">
<h1>Notes</h1>
`); err != nil {
			return err
		}
		if err := FormError(errorMessage).Render(ctx, w); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `<form method="post" action="%s" class="note-create">
<input type="text" name="title" placeholder="Title (optional)">
<textarea name="body" placeholder="Write something"></textarea>
<button type="submit">Add note</button>
</form>
`, routepath.Notes); err != nil {
			return err
		}
		if len(notes) == 0 {
			_, err := io.WriteString(w, `<p class="empty">No notes yet.</p>
</section>`)
			return err
		}
		if _, err := io.WriteString(w, "<ul class=\"note-list\">\n"); err != nil {
			return err
		}
		for _, note := range notes {
			if _, err := fmt.Fprintf(w, `<li class="note">
<a href="%s">%s</a>
<time datetime="%s">%s</time>
<form class="inline" method="post" action="%s"><button type="submit">Delete</button></form>
</li>
`,
				routepath.AppNote(note.ID),
				templ.EscapeString(note.Title),
				note.UpdatedAt.Format(time.RFC3339),
				note.UpdatedAt.Format("Jan 2, 2006 15:04"),
				routepath.AppNoteDelete(note.ID),
			); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</ul>
</section>`)
		return err
	})
}

// NoteEdit renders the edit form for one note.
func NoteEdit(note notedomain.Note, errorMessage string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section class="note-edit">
<h1>Edit note</h1>
`); err != nil {
			return err
		}
		if err := FormError(errorMessage).Render(ctx, w); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, `<form method="post" action="%s">
<label>Title <input type="text" name="title" value="%s"></label>
<label>Body <textarea name="body">%s</textarea></label>
<button type="submit">Save</button>
<a href="%s">Cancel</a>
</form>
</section>`,
			routepath.AppNote(note.ID),
			templ.EscapeString(note.Title),
			templ.EscapeString(note.Body),
			routepath.Notes,
		)
		return err
	})
}
