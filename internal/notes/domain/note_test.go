package domain

import (
	"testing"
	"time"
)

func TestCreateNoteDefaultsBlankTitle(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	note, err := CreateNote("user-2", CreateNoteInput{Title: "   "}, func() time.Time { return now }, func() (string, error) {
		return "note-1", nil
	})
	if err != nil {
		t.Fatalf("create note: %v", err)
	}
	if note.Title != DefaultTitle {
		t.Fatalf("title = %q, want %q", note.Title, DefaultTitle)
	}
	if note.Body != "" {
		t.Fatalf("body = %q, want empty", note.Body)
	}
	if !note.UpdatedAt.Equal(now) {
		t.Fatalf("updated_at = %v, want %v", note.UpdatedAt, now)
	}
}

func TestCreateNoteKeepsGivenTitle(t *testing.T) {
	t.Parallel()

	note, err := CreateNote("user-2", CreateNoteInput{Title: "Groceries", Body: "milk"}, nil, func() (string, error) {
		return "note-2", nil
	})
	if err != nil {
		t.Fatalf("create note: %v", err)
	}
	if note.Title != "Groceries" {
		t.Fatalf("title = %q, want %q", note.Title, "Groceries")
	}
	if note.Body != "milk" {
		t.Fatalf("body = %q, want %q", note.Body, "milk")
	}
	if note.OwnerID != "user-2" {
		t.Fatalf("owner = %q, want %q", note.OwnerID, "user-2")
	}
}
