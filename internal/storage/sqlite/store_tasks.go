package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/codexly-app/codexly/internal/storage"
	taskdomain "github.com/codexly-app/codexly/internal/tasks/domain"
)

const taskColumns = `id, user_id, title, description, is_done, seq, created_at`

// PutTask inserts a task, assigning the next position in creation order.
//
// The seq subquery runs inside the INSERT so two concurrent creates cannot
// observe the same maximum.
func (s *Store) PutTask(ctx context.Context, task taskdomain.Task) (taskdomain.Task, error) {
	if s == nil || s.sqlDB == nil {
		return taskdomain.Task{}, fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(task.ID) == "" {
		return taskdomain.Task{}, fmt.Errorf("task id is required")
	}
	if strings.TrimSpace(task.OwnerID) == "" {
		return taskdomain.Task{}, fmt.Errorf("task owner is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`INSERT INTO tasks (id, user_id, title, description, is_done, seq, created_at)
		 VALUES (?, ?, ?, ?, ?, COALESCE((SELECT MAX(seq) FROM tasks), 0) + 1, ?)
		 RETURNING seq`,
		task.ID,
		task.OwnerID,
		task.Title,
		task.Description,
		boolToInt(task.IsDone),
		toMillis(task.CreatedAt),
	)
	if err := row.Scan(&task.Seq); err != nil {
		return taskdomain.Task{}, fmt.Errorf("put task: %w", err)
	}
	return task, nil
}

// GetTask loads a task by id regardless of owner. Callers enforce ownership.
func (s *Store) GetTask(ctx context.Context, taskID string) (taskdomain.Task, error) {
	if s == nil || s.sqlDB == nil {
		return taskdomain.Task{}, fmt.Errorf("storage is not configured")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = ?`,
		taskID,
	)
	return scanTask(row.Scan)
}

// ListTasksForOwner returns the owner's tasks in creation order.
func (s *Store) ListTasksForOwner(ctx context.Context, ownerID string) ([]taskdomain.Task, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE user_id = ? ORDER BY seq ASC`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []taskdomain.Task
	for rows.Next() {
		task, err := scanTask(rows.Scan)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// UpdateTaskOwned rewrites a task's mutable fields when id and owner both
// match. No matched row reports storage.ErrNotFound.
func (s *Store) UpdateTaskOwned(ctx context.Context, task taskdomain.Task) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`UPDATE tasks
		 SET title = ?, description = ?, is_done = ?
		 WHERE id = ? AND user_id = ?`,
		task.Title,
		task.Description,
		boolToInt(task.IsDone),
		task.ID,
		task.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return requireMatchedRow(result, "update task")
}

// ToggleTaskOwned flips is_done in place and returns the updated record.
//
// The flip happens inside the UPDATE, never as read-modify-write, so two
// concurrent toggles cannot cancel each other out.
func (s *Store) ToggleTaskOwned(ctx context.Context, taskID, ownerID string) (taskdomain.Task, error) {
	if s == nil || s.sqlDB == nil {
		return taskdomain.Task{}, fmt.Errorf("storage is not configured")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`UPDATE tasks
		 SET is_done = NOT is_done
		 WHERE id = ? AND user_id = ?
		 RETURNING `+taskColumns,
		taskID,
		ownerID,
	)
	task, err := scanTask(row.Scan)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return taskdomain.Task{}, storage.ErrNotFound
		}
		return taskdomain.Task{}, fmt.Errorf("toggle task: %w", err)
	}
	return task, nil
}

// DeleteTaskOwned removes a task when id and owner both match.
func (s *Store) DeleteTaskOwned(ctx context.Context, taskID, ownerID string) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`DELETE FROM tasks WHERE id = ? AND user_id = ?`,
		taskID,
		ownerID,
	)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return requireMatchedRow(result, "delete task")
}

func scanTask(scan func(dest ...any) error) (taskdomain.Task, error) {
	var task taskdomain.Task
	var isDone int64
	var createdAt int64
	if err := scan(
		&task.ID,
		&task.OwnerID,
		&task.Title,
		&task.Description,
		&isDone,
		&task.Seq,
		&createdAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return taskdomain.Task{}, storage.ErrNotFound
		}
		return taskdomain.Task{}, fmt.Errorf("scan task: %w", err)
	}
	task.IsDone = isDone != 0
	task.CreatedAt = fromMillis(createdAt)
	return task, nil
}

func requireMatchedRow(result sql.Result, operation string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", operation, err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}
