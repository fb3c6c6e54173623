// Package storage defines the persistence contracts for Codexly records.
//
// Services depend only on these interfaces; no engine is assumed. Mutations
// on owned records are owner-conditional single operations so that an
// ownership check and its write cannot be split by a concurrent request.
package storage

import (
	"context"

	notedomain "github.com/codexly-app/codexly/internal/notes/domain"
	"github.com/codexly-app/codexly/internal/platform/errors"
	taskdomain "github.com/codexly-app/codexly/internal/tasks/domain"
	"github.com/codexly-app/codexly/internal/auth/user"
)

// ErrNotFound indicates a requested record is missing, or that an
// owner-conditional mutation matched no row (absent or owned by another
// user; stores cannot and do not distinguish the two).
var ErrNotFound = errors.New(errors.CodeNotFound, "record not found")

// ErrEmailTaken indicates a sign-up with an email that is already registered.
var ErrEmailTaken = errors.New(errors.CodeUserEmailTaken, "email is already registered")

// UserStore persists account identity records.
type UserStore interface {
	PutUser(ctx context.Context, u user.User) error
	GetUser(ctx context.Context, userID string) (user.User, error)
	GetUserByEmail(ctx context.Context, email string) (user.User, error)
}

// TaskStore persists task records.
//
// GetTask is deliberately not owner-scoped: services check ownership on the
// result so a denial can be audited as "absent" or "wrong owner" while the
// caller sees a single outcome. The *Owned mutations are atomic and guarded
// by both id and owner; they return ErrNotFound when no row matched.
type TaskStore interface {
	PutTask(ctx context.Context, task taskdomain.Task) (taskdomain.Task, error)
	GetTask(ctx context.Context, taskID string) (taskdomain.Task, error)
	ListTasksForOwner(ctx context.Context, ownerID string) ([]taskdomain.Task, error)
	UpdateTaskOwned(ctx context.Context, task taskdomain.Task) error
	ToggleTaskOwned(ctx context.Context, taskID, ownerID string) (taskdomain.Task, error)
	DeleteTaskOwned(ctx context.Context, taskID, ownerID string) error
}

// NoteStore persists note records under the same ownership contract as
// TaskStore.
type NoteStore interface {
	PutNote(ctx context.Context, note notedomain.Note) error
	GetNote(ctx context.Context, noteID string) (notedomain.Note, error)
	ListNotesForOwner(ctx context.Context, ownerID string) ([]notedomain.Note, error)
	UpdateNoteOwned(ctx context.Context, note notedomain.Note) error
	DeleteNoteOwned(ctx context.Context, noteID, ownerID string) error
}
