package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	notedomain "github.com/codexly-app/codexly/internal/notes/domain"
	"github.com/codexly-app/codexly/internal/storage"
)

const noteColumns = `id, user_id, title, body, updated_at`

// PutNote inserts a note record.
func (s *Store) PutNote(ctx context.Context, note notedomain.Note) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(note.ID) == "" {
		return fmt.Errorf("note id is required")
	}
	if strings.TrimSpace(note.OwnerID) == "" {
		return fmt.Errorf("note owner is required")
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO notes (id, user_id, title, body, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		note.ID,
		note.OwnerID,
		note.Title,
		note.Body,
		toMillis(note.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("put note: %w", err)
	}
	return nil
}

// GetNote loads a note by id regardless of owner. Callers enforce ownership.
func (s *Store) GetNote(ctx context.Context, noteID string) (notedomain.Note, error) {
	if s == nil || s.sqlDB == nil {
		return notedomain.Note{}, fmt.Errorf("storage is not configured")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT `+noteColumns+` FROM notes WHERE id = ?`,
		noteID,
	)
	return scanNote(row.Scan)
}

// ListNotesForOwner returns the owner's notes, most recently updated first.
func (s *Store) ListNotesForOwner(ctx context.Context, ownerID string) ([]notedomain.Note, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT `+noteColumns+` FROM notes WHERE user_id = ? ORDER BY updated_at DESC, id ASC`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	var notes []notedomain.Note
	for rows.Next() {
		note, err := scanNote(rows.Scan)
		if err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

// UpdateNoteOwned rewrites a note's mutable fields when id and owner both
// match. No matched row reports storage.ErrNotFound.
func (s *Store) UpdateNoteOwned(ctx context.Context, note notedomain.Note) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`UPDATE notes
		 SET title = ?, body = ?, updated_at = ?
		 WHERE id = ? AND user_id = ?`,
		note.Title,
		note.Body,
		toMillis(note.UpdatedAt),
		note.ID,
		note.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("update note: %w", err)
	}
	return requireMatchedRow(result, "update note")
}

// DeleteNoteOwned removes a note when id and owner both match.
func (s *Store) DeleteNoteOwned(ctx context.Context, noteID, ownerID string) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`DELETE FROM notes WHERE id = ? AND user_id = ?`,
		noteID,
		ownerID,
	)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	return requireMatchedRow(result, "delete note")
}

func scanNote(scan func(dest ...any) error) (notedomain.Note, error) {
	var note notedomain.Note
	var updatedAt int64
	if err := scan(
		&note.ID,
		&note.OwnerID,
		&note.Title,
		&note.Body,
		&updatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return notedomain.Note{}, storage.ErrNotFound
		}
		return notedomain.Note{}, fmt.Errorf("scan note: %w", err)
	}
	note.UpdatedAt = fromMillis(updatedAt)
	return note, nil
}
