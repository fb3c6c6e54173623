// Package service implements the ownership-scoped task operations.
package service

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/codexly-app/codexly/internal/platform/errors"
	"github.com/codexly-app/codexly/internal/platform/id"
	"github.com/codexly-app/codexly/internal/storage"
	"github.com/codexly-app/codexly/internal/tasks/domain"
)

// ErrDenied is the single denial outcome for mutations on tasks the caller
// does not own, including tasks that do not exist. Merging the two prevents
// probing for other users' task identifiers.
var ErrDenied = apperrors.New(apperrors.CodeOwnershipDenied, "task does not exist or belongs to another user")

const tracerName = "codexly/tasks"

// Service mediates all access to task records, enforcing that every read and
// mutation is scoped to the acting user's identity.
type Service struct {
	store       storage.TaskStore
	clock       func() time.Time
	idGenerator func() (string, error)
	tracer      trace.Tracer
}

// NewService creates a task Service with default dependencies.
func NewService(store storage.TaskStore) *Service {
	return &Service{
		store:       store,
		clock:       time.Now,
		idGenerator: id.NewID,
		tracer:      otel.Tracer(tracerName),
	}
}

// WithClock overrides the service clock; intended for tests.
func (s *Service) WithClock(clock func() time.Time) *Service {
	if clock != nil {
		s.clock = clock
	}
	return s
}

// WithIDGenerator overrides id generation; intended for tests.
func (s *Service) WithIDGenerator(idGenerator func() (string, error)) *Service {
	if idGenerator != nil {
		s.idGenerator = idGenerator
	}
	return s
}

// ListForOwner returns the caller's tasks in creation order. Owners with no
// tasks get an empty slice, never an error.
func (s *Service) ListForOwner(ctx context.Context, ownerID string) ([]domain.Task, error) {
	tasks, err := s.store.ListTasksForOwner(ctx, ownerID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeUnknown, "list tasks", err)
	}
	return tasks, nil
}

// GetByID returns a task by identifier without checking ownership.
//
// Callers must verify ownership before acting on the result; the identifier
// alone proves nothing. Routing uses this to produce a 404 for identifiers
// that do not exist at all.
func (s *Service) GetByID(ctx context.Context, taskID string) (domain.Task, error) {
	task, err := s.store.GetTask(ctx, taskID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return domain.Task{}, storage.ErrNotFound
		}
		return domain.Task{}, apperrors.Wrap(apperrors.CodeUnknown, "get task", err)
	}
	return task, nil
}

// Create persists a new task owned by ownerID. Optional fields default; the
// service performs no title validation, which is the handlers' concern.
func (s *Service) Create(ctx context.Context, ownerID string, input domain.CreateTaskInput) (domain.Task, error) {
	task, err := domain.CreateTask(ownerID, input, s.clock, s.idGenerator)
	if err != nil {
		return domain.Task{}, err
	}
	created, err := s.store.PutTask(ctx, task)
	if err != nil {
		return domain.Task{}, apperrors.Wrap(apperrors.CodeUnknown, "persist task", err)
	}
	return created, nil
}

// UpdateTaskInput carries the full replacement fields for an update.
type UpdateTaskInput struct {
	Title       string
	Description string
	IsDone      bool
}

// Update overwrites the task's fields when it exists and belongs to ownerID;
// otherwise it returns ErrDenied without touching the record.
func (s *Service) Update(ctx context.Context, taskID, ownerID string, input UpdateTaskInput) (domain.Task, error) {
	ctx, span := s.tracer.Start(ctx, "tasks.Update")
	defer span.End()

	task, err := s.authorize(ctx, span, taskID, ownerID)
	if err != nil {
		return domain.Task{}, err
	}

	task.Title = input.Title
	task.Description = input.Description
	task.IsDone = input.IsDone
	if err := s.store.UpdateTaskOwned(ctx, task); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// Deleted between the audit read and the conditional write.
			return domain.Task{}, ErrDenied
		}
		return domain.Task{}, apperrors.Wrap(apperrors.CodeUnknown, "update task", err)
	}
	return task, nil
}

// Delete permanently removes the task when it exists and belongs to ownerID.
// A repeated delete of the same identifier yields ErrDenied, never a silent
// success.
func (s *Service) Delete(ctx context.Context, taskID, ownerID string) error {
	ctx, span := s.tracer.Start(ctx, "tasks.Delete")
	defer span.End()

	if _, err := s.authorize(ctx, span, taskID, ownerID); err != nil {
		return err
	}
	if err := s.store.DeleteTaskOwned(ctx, taskID, ownerID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrDenied
		}
		return apperrors.Wrap(apperrors.CodeUnknown, "delete task", err)
	}
	return nil
}

// ToggleDone flips the completion flag in a single atomic store operation,
// so two racing toggles on the same task serialize instead of losing one.
func (s *Service) ToggleDone(ctx context.Context, taskID, ownerID string) (domain.Task, error) {
	ctx, span := s.tracer.Start(ctx, "tasks.ToggleDone")
	defer span.End()

	if _, err := s.authorize(ctx, span, taskID, ownerID); err != nil {
		return domain.Task{}, err
	}
	task, err := s.store.ToggleTaskOwned(ctx, taskID, ownerID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return domain.Task{}, ErrDenied
		}
		return domain.Task{}, apperrors.Wrap(apperrors.CodeUnknown, "toggle task", err)
	}
	return task, nil
}

// authorize resolves the merged denial outcome while recording the real
// reason on the span for audit. The caller still sees only ErrDenied.
func (s *Service) authorize(ctx context.Context, span trace.Span, taskID, ownerID string) (domain.Task, error) {
	task, err := s.store.GetTask(ctx, taskID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			span.SetAttributes(attribute.String("denial.reason", "not_found"))
			return domain.Task{}, ErrDenied
		}
		return domain.Task{}, apperrors.Wrap(apperrors.CodeUnknown, "get task", err)
	}
	if task.OwnerID != ownerID {
		span.SetAttributes(attribute.String("denial.reason", "wrong_owner"))
		return domain.Task{}, ErrDenied
	}
	return task, nil
}
