// Package domain defines the Task entity and its lifecycle rules.
package domain

import (
	"strings"
	"time"

	apperrors "github.com/codexly-app/codexly/internal/platform/errors"
	"github.com/codexly-app/codexly/internal/platform/id"
)

// ErrEmptyTitle indicates a task title with no visible characters. Title
// validation is a presentation concern; handlers check it before calling the
// task service, which itself never rejects input.
var ErrEmptyTitle = apperrors.New(apperrors.CodeTaskTitleEmpty, "task title is required")

// Task is a single to-do item owned by exactly one user.
//
// OwnerID is assigned at creation and never reassigned. Seq records creation
// order for listing; identifiers themselves are random and carry no order.
type Task struct {
	ID          string
	OwnerID     string
	Title       string
	Description string
	IsDone      bool
	Seq         int64
	CreatedAt   time.Time
}

// CreateTaskInput describes the caller-supplied fields for a new task.
type CreateTaskInput struct {
	Title       string
	Description string
}

// ValidateTitle enforces the non-empty title rule handlers apply before
// delegating to the service.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	return nil
}

// CreateTask builds a new task for ownerID with kind defaults applied:
// IsDone false and an empty description when none is given. Missing optional
// fields are never an error.
func CreateTask(ownerID string, input CreateTaskInput, now func() time.Time, idGenerator func() (string, error)) (Task, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}

	taskID, err := idGenerator()
	if err != nil {
		return Task{}, apperrors.Wrap(apperrors.CodeUnknown, "generate task id", err)
	}

	return Task{
		ID:          taskID,
		OwnerID:     ownerID,
		Title:       input.Title,
		Description: input.Description,
		IsDone:      false,
		CreatedAt:   now().UTC().Truncate(time.Millisecond),
	}, nil
}
