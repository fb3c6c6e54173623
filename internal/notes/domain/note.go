// Package domain defines the Note entity and its lifecycle rules.
package domain

import (
	"strings"
	"time"

	apperrors "github.com/codexly-app/codexly/internal/platform/errors"
	"github.com/codexly-app/codexly/internal/platform/id"
)

// DefaultTitle is used when a note is created or updated with a blank title.
const DefaultTitle = "Untitled"

// Note is a free-form text entry owned by exactly one user.
//
// UpdatedAt strictly increases across successful mutations; the service layer
// clamps the clock so back-to-back writes within one millisecond still move
// it forward.
type Note struct {
	ID        string
	OwnerID   string
	Title     string
	Body      string
	UpdatedAt time.Time
}

// CreateNoteInput describes the caller-supplied fields for a new note.
type CreateNoteInput struct {
	Title string
	Body  string
}

// CreateNote builds a new note for ownerID. A blank title defaults to
// "Untitled"; a missing body is an empty string, never an error.
func CreateNote(ownerID string, input CreateNoteInput, now func() time.Time, idGenerator func() (string, error)) (Note, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}

	noteID, err := idGenerator()
	if err != nil {
		return Note{}, apperrors.Wrap(apperrors.CodeUnknown, "generate note id", err)
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		title = DefaultTitle
	}

	return Note{
		ID:        noteID,
		OwnerID:   ownerID,
		Title:     title,
		Body:      input.Body,
		UpdatedAt: now().UTC().Truncate(time.Millisecond),
	}, nil
}
