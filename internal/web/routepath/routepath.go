// Package routepath centralizes browser-facing route constants and builders.
package routepath

// Top-level public routes.
const (
	Root   = "/"
	Health = "/up"
)

// AccountPrefix groups the unauthenticated account flows.
const AccountPrefix = "/account/"

// Account routes.
const (
	SignIn  = "/account/signin"
	SignUp  = "/account/signup"
	SignOut = "/account/signout"
)

// AppPrefix guards every authenticated route group.
const AppPrefix = "/app/"

// Authenticated route group prefixes.
const (
	Tasks = "/app/tasks/"
	Notes = "/app/notes/"
)

// AppTask returns the canonical URL for one task.
func AppTask(taskID string) string {
	return Tasks + taskID
}

// AppTaskToggle returns the completion-toggle URL for one task.
func AppTaskToggle(taskID string) string {
	return Tasks + taskID + "/toggle"
}

// AppTaskDelete returns the delete URL for one task.
func AppTaskDelete(taskID string) string {
	return Tasks + taskID + "/delete"
}

// AppNote returns the canonical URL for one note.
func AppNote(noteID string) string {
	return Notes + noteID
}

// AppNoteDelete returns the delete URL for one note.
func AppNoteDelete(noteID string) string {
	return Notes + noteID + "/delete"
}
