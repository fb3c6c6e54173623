package notes

import (
	"net/http"
	"strings"

	notedomain "github.com/codexly-app/codexly/internal/notes/domain"
	notesservice "github.com/codexly-app/codexly/internal/notes/service"
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
	notes, err := h.deps.Notes.ListForOwner(r.Context(), userID)
	if err != nil {
		weberror.WriteError(w, r, err, true)
		return
	}
	_ = pagerender.WritePage(w, r, pagerender.Page{
		Title:    "Notes",
		SignedIn: true,
		Fragment: templates.NoteList(notes, ""),
	})
}

func (h handlers) handleCreate(w http.ResponseWriter, r *http.Request) {
	userID := h.userID(r)
	if err := r.ParseForm(); err != nil {
		weberror.WriteStatus(w, r, http.StatusBadRequest, "", true)
		return
	}
	input := notedomain.CreateNoteInput{
		Title: strings.TrimSpace(r.PostFormValue("title")),
		Body:  r.PostFormValue("body"),
	}
	note, err := h.deps.Notes.Create(r.Context(), userID, input)
	if err != nil {
		weberror.WriteError(w, r, err, true)
		return
	}
	http.Redirect(w, r, routepath.AppNote(note.ID), http.StatusSeeOther)
}

func (h handlers) handleEditForm(w http.ResponseWriter, r *http.Request) {
	userID := h.userID(r)
	noteID := strings.TrimSpace(r.PathValue("noteID"))

	note, err := h.deps.Notes.GetByID(r.Context(), noteID)
	if err != nil {
		weberror.WriteError(w, r, err, true)
		return
	}
	if note.OwnerID != userID {
		weberror.WriteError(w, r, notesservice.ErrDenied, true)
		return
	}
	_ = pagerender.WritePage(w, r, pagerender.Page{
		Title:    note.Title,
		SignedIn: true,
		Fragment: templates.NoteEdit(note, ""),
	})
}

func (h handlers) handleUpdate(w http.ResponseWriter, r *http.Request) {
	userID := h.userID(r)
	noteID := strings.TrimSpace(r.PathValue("noteID"))
	if err := r.ParseForm(); err != nil {
		weberror.WriteStatus(w, r, http.StatusBadRequest, "", true)
		return
	}
	input := notesservice.UpdateNoteInput{
		Title: strings.TrimSpace(r.PostFormValue("title")),
		Body:  r.PostFormValue("body"),
	}
	if _, err := h.deps.Notes.Update(r.Context(), noteID, userID, input); err != nil {
		weberror.WriteError(w, r, err, true)
		return
	}
	http.Redirect(w, r, routepath.Notes, http.StatusSeeOther)
}

func (h handlers) handleDelete(w http.ResponseWriter, r *http.Request) {
	userID := h.userID(r)
	noteID := strings.TrimSpace(r.PathValue("noteID"))
	if err := h.deps.Notes.Delete(r.Context(), noteID, userID); err != nil {
		weberror.WriteError(w, r, err, true)
		return
	}
	http.Redirect(w, r, routepath.Notes, http.StatusSeeOther)
}
