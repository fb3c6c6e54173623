package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	taskdomain "github.com/codexly-app/codexly/internal/tasks/domain"
	"github.com/codexly-app/codexly/internal/web/routepath"
)

// TaskList renders the task index body: a create form followed by the
// owner's tasks in creation order.
func TaskList(tasks []taskdomain.Task, errorMessage string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section class="tasks">
<h1>Tasks</h1>
`); err != nil {
			return err
		}
		if err := FormError(errorMessage).Render(ctx, w); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `<form method="post" action="%s" class="task-create">
<input type="text" name="title" placeholder="What needs doing?" required>
<input type="text" name="description" placeholder="Details (optional)">
<button type="submit">Add task</button>
</form>
`, routepath.Tasks); err != nil {
			return err
		}
		if len(tasks) == 0 {
			if _, err := io.WriteString(w, `<p class="empty">Nothing yet. Add your first task above.</p>
</section>`); err != nil {
				return err
			}
			return nil
		}
		if _, err := io.WriteString(w, "<ul class=\"task-list\">\n"); err != nil {
			return err
		}
		for _, task := range tasks {
			if err := taskItem(task).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</ul>
</section>`)
		return err
	})
}

func taskItem(task taskdomain.Task) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		class := "task"
		toggleLabel := "Done"
		if task.IsDone {
			class = "task done"
			toggleLabel = "Undo"
		}
		_, err := fmt.Fprintf(w, `<li class="%s">
<span class="title">%s</span>
<span class="description">%s</span>
<form class="inline" method="post" action="%s"><button type="submit">%s</button></form>
<a href="%s">Edit</a>
<form class="inline" method="post" action="%s"><button type="submit">Delete</button></form>
</li>
`,
			class,
			templ.EscapeString(task.Title),
			templ.EscapeString(task.Description),
			routepath.AppTaskToggle(task.ID),
			toggleLabel,
			routepath.AppTask(task.ID)+"/edit",
			routepath.AppTaskDelete(task.ID),
		)
		return err
	})
}

// TaskEdit renders the edit form for one task.
func TaskEdit(task taskdomain.Task, errorMessage string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section class="task-edit">
<h1>Edit task</h1>
`); err != nil {
			return err
		}
		if err := FormError(errorMessage).Render(ctx, w); err != nil {
			return err
		}
		checked := ""
		if task.IsDone {
			checked = " checked"
		}
		_, err := fmt.Fprintf(w, `<form method="post" action="%s">
<label>Title <input type="text" name="title" value="%s" required></label>
<label>Description <input type="text" name="description" value="%s"></label>
<label class="checkbox"><input type="checkbox" name="is_done"%s> Done</label>
<button type="submit">Save</button>
<a href="%s">Cancel</a>
</form>
</section>`,
			routepath.AppTask(task.ID),
			templ.EscapeString(task.Title),
			templ.EscapeString(task.Description),
			checked,
			routepath.Tasks,
		)
		return err
	})
}
