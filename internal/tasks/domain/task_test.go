package domain

import (
	"errors"
	"testing"
	"time"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func stubID(value string) func() (string, error) {
	return func() (string, error) { return value, nil }
}

func TestCreateTaskDefaults(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)
	task, err := CreateTask("user-1", CreateTaskInput{Title: "Buy milk"}, fixedClock(now), stubID("task-1"))
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	if task.ID != "task-1" {
		t.Fatalf("id = %q, want %q", task.ID, "task-1")
	}
	if task.OwnerID != "user-1" {
		t.Fatalf("owner = %q, want %q", task.OwnerID, "user-1")
	}
	if task.IsDone {
		t.Fatal("expected new task to start not done")
	}
	if task.Description != "" {
		t.Fatalf("description = %q, want empty", task.Description)
	}
	if !task.CreatedAt.Equal(now) {
		t.Fatalf("created_at = %v, want %v", task.CreatedAt, now)
	}
}

func TestCreateTaskIDGeneratorError(t *testing.T) {
	t.Parallel()

	boom := errors.New("entropy exhausted")
	_, err := CreateTask("user-1", CreateTaskInput{Title: "x"}, nil, func() (string, error) {
		return "", boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected id generator error, got %v", err)
	}
}

func TestValidateTitle(t *testing.T) {
	t.Parallel()

	if err := ValidateTitle("Buy milk"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateTitle("   "); !errors.Is(err, ErrEmptyTitle) {
		t.Fatalf("expected ErrEmptyTitle, got %v", err)
	}
	if err := ValidateTitle(""); !errors.Is(err, ErrEmptyTitle) {
		t.Fatalf("expected ErrEmptyTitle, got %v", err)
	}
}
