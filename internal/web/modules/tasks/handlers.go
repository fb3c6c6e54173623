package tasks

import (
	"net/http"
	"strings"

	taskdomain "github.com/codexly-app/codexly/internal/tasks/domain"
	tasksservice "github.com/codexly-app/codexly/internal/tasks/service"
	module "github.com/codexly-app/codexly/internal/web/module"
	"github.com/codexly-app/codexly/internal/web/platform/pagerender"
	"github.com/codexly-app/codexly/internal/web/platform/weberror"
	"github.com/codexly-app/codexly/internal/web/routepath"
	"github.com/codexly-app/codexly/internal/web/templates"
)

type handlers struct {
	deps module.Dependencies
}

func (h handlers) userID(r *http.Request) string {
	if h.deps.ResolveUserID == nil {
		return ""
	}
	return h.deps.ResolveUserID(r)
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	userID := h.userID(r)
	tasks, err := h.deps.Tasks.ListForOwner(r.Context(), userID)
	if err != nil {
		weberror.WriteError(w, r, err, true)
		return
	}
	_ = pagerender.WritePage(w, r, pagerender.Page{
		Title:    "Tasks",
		SignedIn: true,
		Fragment: templates.TaskList(tasks, ""),
	})
}

func (h handlers) handleCreate(w http.ResponseWriter, r *http.Request) {
	userID := h.userID(r)
	if err := r.ParseForm(); err != nil {
		weberror.WriteStatus(w, r, http.StatusBadRequest, "", true)
		return
	}
	input := taskdomain.CreateTaskInput{
		Title:       strings.TrimSpace(r.PostFormValue("title")),
		Description: strings.TrimSpace(r.PostFormValue("description")),
	}
	if err := taskdomain.ValidateTitle(input.Title); err != nil {
		h.rerenderIndex(w, r, userID, weberror.PublicMessage(err))
		return
	}
	if _, err := h.deps.Tasks.Create(r.Context(), userID, input); err != nil {
		weberror.WriteError(w, r, err, true)
		return
	}
	http.Redirect(w, r, routepath.Tasks, http.StatusSeeOther)
}

// rerenderIndex shows the list again with an inline validation message.
func (h handlers) rerenderIndex(w http.ResponseWriter, r *http.Request, userID, message string) {
	tasks, err := h.deps.Tasks.ListForOwner(r.Context(), userID)
	if err != nil {
		weberror.WriteError(w, r, err, true)
		return
	}
	_ = pagerender.WritePage(w, r, pagerender.Page{
		Title:      "Tasks",
		StatusCode: http.StatusBadRequest,
		SignedIn:   true,
		Fragment:   templates.TaskList(tasks, message),
	})
}

func (h handlers) handleEditForm(w http.ResponseWriter, r *http.Request) {
	userID := h.userID(r)
	taskID := strings.TrimSpace(r.PathValue("taskID"))

	task, err := h.deps.Tasks.GetByID(r.Context(), taskID)
	if err != nil {
		weberror.WriteError(w, r, err, true)
		return
	}
	if task.OwnerID != userID {
		weberror.WriteError(w, r, tasksservice.ErrDenied, true)
		return
	}
	_ = pagerender.WritePage(w, r, pagerender.Page{
		Title:    "Edit task",
		SignedIn: true,
		Fragment: templates.TaskEdit(task, ""),
	})
}

func (h handlers) handleUpdate(w http.ResponseWriter, r *http.Request) {
	userID := h.userID(r)
	taskID := strings.TrimSpace(r.PathValue("taskID"))
	if err := r.ParseForm(); err != nil {
		weberror.WriteStatus(w, r, http.StatusBadRequest, "", true)
		return
	}
	input := tasksservice.UpdateTaskInput{
		Title:       strings.TrimSpace(r.PostFormValue("title")),
		Description: strings.TrimSpace(r.PostFormValue("description")),
		IsDone:      r.PostFormValue("is_done") != "",
	}
	if err := taskdomain.ValidateTitle(input.Title); err != nil {
		task, getErr := h.deps.Tasks.GetByID(r.Context(), taskID)
		if getErr != nil {
			weberror.WriteError(w, r, getErr, true)
			return
		}
		if task.OwnerID != userID {
			weberror.WriteError(w, r, tasksservice.ErrDenied, true)
			return
		}
		_ = pagerender.WritePage(w, r, pagerender.Page{
			Title:      "Edit task",
			StatusCode: http.StatusBadRequest,
			SignedIn:   true,
			Fragment:   templates.TaskEdit(task, weberror.PublicMessage(err)),
		})
		return
	}
	if _, err := h.deps.Tasks.Update(r.Context(), taskID, userID, input); err != nil {
		weberror.WriteError(w, r, err, true)
		return
	}
	http.Redirect(w, r, routepath.Tasks, http.StatusSeeOther)
}

func (h handlers) handleToggle(w http.ResponseWriter, r *http.Request) {
	userID := h.userID(r)
	taskID := strings.TrimSpace(r.PathValue("taskID"))
	if _, err := h.deps.Tasks.ToggleDone(r.Context(), taskID, userID); err != nil {
		weberror.WriteError(w, r, err, true)
		return
	}
	http.Redirect(w, r, routepath.Tasks, http.StatusSeeOther)
}

func (h handlers) handleDelete(w http.ResponseWriter, r *http.Request) {
	userID := h.userID(r)
	taskID := strings.TrimSpace(r.PathValue("taskID"))
	if err := h.deps.Tasks.Delete(r.Context(), taskID, userID); err != nil {
		weberror.WriteError(w, r, err, true)
		return
	}
	http.Redirect(w, r, routepath.Tasks, http.StatusSeeOther)
}
