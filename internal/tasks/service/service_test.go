package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/codexly-app/codexly/internal/storage"
	"github.com/codexly-app/codexly/internal/tasks/domain"
)

// fakeTaskStore implements storage.TaskStore in memory with the same
// owner-conditional semantics as the sqlite store.
type fakeTaskStore struct {
	tasks   map[string]domain.Task
	nextSeq int64
	failAll error
}

func newFakeTaskStore() *fakeTaskStore {
	return &fakeTaskStore{tasks: make(map[string]domain.Task)}
}

func (f *fakeTaskStore) PutTask(_ context.Context, task domain.Task) (domain.Task, error) {
	if f.failAll != nil {
		return domain.Task{}, f.failAll
	}
	f.nextSeq++
	task.Seq = f.nextSeq
	f.tasks[task.ID] = task
	return task, nil
}

func (f *fakeTaskStore) GetTask(_ context.Context, taskID string) (domain.Task, error) {
	if f.failAll != nil {
		return domain.Task{}, f.failAll
	}
	task, ok := f.tasks[taskID]
	if !ok {
		return domain.Task{}, storage.ErrNotFound
	}
	return task, nil
}

func (f *fakeTaskStore) ListTasksForOwner(_ context.Context, ownerID string) ([]domain.Task, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	out := []domain.Task{}
	for _, task := range f.tasks {
		if task.OwnerID == ownerID {
			out = append(out, task)
		}
	}
	for i := range out {
		for j := i + 1; j < len(out); j++ {
			if out[j].Seq < out[i].Seq {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}

func (f *fakeTaskStore) UpdateTaskOwned(_ context.Context, task domain.Task) error {
	existing, ok := f.tasks[task.ID]
	if !ok || existing.OwnerID != task.OwnerID {
		return storage.ErrNotFound
	}
	task.Seq = existing.Seq
	task.CreatedAt = existing.CreatedAt
	f.tasks[task.ID] = task
	return nil
}

func (f *fakeTaskStore) ToggleTaskOwned(_ context.Context, taskID, ownerID string) (domain.Task, error) {
	existing, ok := f.tasks[taskID]
	if !ok || existing.OwnerID != ownerID {
		return domain.Task{}, storage.ErrNotFound
	}
	existing.IsDone = !existing.IsDone
	f.tasks[taskID] = existing
	return existing, nil
}

func (f *fakeTaskStore) DeleteTaskOwned(_ context.Context, taskID, ownerID string) error {
	existing, ok := f.tasks[taskID]
	if !ok || existing.OwnerID != ownerID {
		return storage.ErrNotFound
	}
	delete(f.tasks, taskID)
	return nil
}

func newTestService(store storage.TaskStore) *Service {
	counter := 0
	return NewService(store).
		WithClock(func() time.Time {
			return time.Date(2026, time.March, 3, 8, 0, 0, 0, time.UTC)
		}).
		WithIDGenerator(func() (string, error) {
			counter++
			return string(rune('a'+counter-1)) + "-task", nil
		})
}

func TestCreateThenListForOwner(t *testing.T) {
	t.Parallel()

	store := newFakeTaskStore()
	svc := newTestService(store)

	created, err := svc.Create(context.Background(), "u1", domain.CreateTaskInput{Title: "Buy milk"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.IsDone {
		t.Fatal("expected new task to start not done")
	}

	tasks, err := svc.ListForOwner(context.Background(), "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	if tasks[0].Title != "Buy milk" {
		t.Fatalf("title = %q, want %q", tasks[0].Title, "Buy milk")
	}
	if tasks[0].IsDone {
		t.Fatal("expected IsDone false")
	}
}

func TestListForOwnerScopedAndOrdered(t *testing.T) {
	t.Parallel()

	store := newFakeTaskStore()
	svc := newTestService(store)
	ctx := context.Background()

	// Interleave creation across owners.
	if _, err := svc.Create(ctx, "u1", domain.CreateTaskInput{Title: "first"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(ctx, "u2", domain.CreateTaskInput{Title: "other"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(ctx, "u1", domain.CreateTaskInput{Title: "second"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	tasks, err := svc.ListForOwner(ctx, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks for u1, got %d", len(tasks))
	}
	if tasks[0].Title != "first" || tasks[1].Title != "second" {
		t.Fatalf("unexpected order: %q, %q", tasks[0].Title, tasks[1].Title)
	}
	for _, task := range tasks {
		if task.OwnerID != "u1" {
			t.Fatalf("leaked task owned by %q", task.OwnerID)
		}
	}
}

func TestListForOwnerEmpty(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFakeTaskStore())
	tasks, err := svc.ListForOwner(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tasks) != 0 {
		t.Fatalf("expected empty list, got %d", len(tasks))
	}
}

func TestUpdateByWrongOwnerDenied(t *testing.T) {
	t.Parallel()

	store := newFakeTaskStore()
	svc := newTestService(store)
	ctx := context.Background()

	created, err := svc.Create(ctx, "u1", domain.CreateTaskInput{Title: "mine"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = svc.Update(ctx, created.ID, "u2", UpdateTaskInput{Title: "stolen"})
	if !errors.Is(err, ErrDenied) {
		t.Fatalf("expected ErrDenied, got %v", err)
	}

	// The record must be untouched.
	got, err := svc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "mine" {
		t.Fatalf("title = %q, want %q", got.Title, "mine")
	}
}

func TestUpdateMissingTaskDenied(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFakeTaskStore())
	_, err := svc.Update(context.Background(), "no-such-task", "u1", UpdateTaskInput{Title: "x"})
	if !errors.Is(err, ErrDenied) {
		t.Fatalf("expected ErrDenied, got %v", err)
	}
}

func TestUpdateOverwritesFields(t *testing.T) {
	t.Parallel()

	store := newFakeTaskStore()
	svc := newTestService(store)
	ctx := context.Background()

	created, err := svc.Create(ctx, "u1", domain.CreateTaskInput{Title: "before", Description: "old"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(ctx, created.ID, "u1", UpdateTaskInput{Title: "after", Description: "new", IsDone: true})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "after" || updated.Description != "new" || !updated.IsDone {
		t.Fatalf("unexpected task %+v", updated)
	}
}

func TestDeleteByWrongOwnerDeniedAndPreserved(t *testing.T) {
	t.Parallel()

	store := newFakeTaskStore()
	svc := newTestService(store)
	ctx := context.Background()

	created, err := svc.Create(ctx, "u1", domain.CreateTaskInput{Title: "keep me"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(ctx, created.ID, "u2"); !errors.Is(err, ErrDenied) {
		t.Fatalf("expected ErrDenied, got %v", err)
	}

	tasks, err := svc.ListForOwner(ctx, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != created.ID {
		t.Fatalf("expected u1 to still own the task, got %+v", tasks)
	}
}

func TestDeleteIdempotence(t *testing.T) {
	t.Parallel()

	store := newFakeTaskStore()
	svc := newTestService(store)
	ctx := context.Background()

	created, err := svc.Create(ctx, "u1", domain.CreateTaskInput{Title: "one shot"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(ctx, created.ID, "u1"); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := svc.Delete(ctx, created.ID, "u1"); !errors.Is(err, ErrDenied) {
		t.Fatalf("expected ErrDenied on second delete, got %v", err)
	}

	tasks, err := svc.ListForOwner(ctx, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tasks) != 0 {
		t.Fatalf("expected no tasks after delete, got %d", len(tasks))
	}
}

func TestToggleDoneRoundTrip(t *testing.T) {
	t.Parallel()

	store := newFakeTaskStore()
	svc := newTestService(store)
	ctx := context.Background()

	created, err := svc.Create(ctx, "u1", domain.CreateTaskInput{Title: "flip me"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	toggled, err := svc.ToggleDone(ctx, created.ID, "u1")
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !toggled.IsDone {
		t.Fatal("expected IsDone true after first toggle")
	}

	toggled, err = svc.ToggleDone(ctx, created.ID, "u1")
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if toggled.IsDone {
		t.Fatal("expected IsDone false after second toggle")
	}
}

func TestToggleDoneWrongOwnerDenied(t *testing.T) {
	t.Parallel()

	store := newFakeTaskStore()
	svc := newTestService(store)
	ctx := context.Background()

	created, err := svc.Create(ctx, "u1", domain.CreateTaskInput{Title: "mine"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.ToggleDone(ctx, created.ID, "u2"); !errors.Is(err, ErrDenied) {
		t.Fatalf("expected ErrDenied, got %v", err)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFakeTaskStore())
	_, err := svc.GetByID(context.Background(), "ghost")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStoreFailurePropagates(t *testing.T) {
	t.Parallel()

	store := newFakeTaskStore()
	store.failAll = errors.New("connection lost")
	svc := newTestService(store)

	if _, err := svc.ListForOwner(context.Background(), "u1"); err == nil {
		t.Fatal("expected error when store fails")
	}
	if _, err := svc.Create(context.Background(), "u1", domain.CreateTaskInput{Title: "x"}); err == nil {
		t.Fatal("expected error when store fails")
	}
}
