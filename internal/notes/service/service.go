// Package service implements the ownership-scoped note operations.
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/codexly-app/codexly/internal/notes/domain"
	apperrors "github.com/codexly-app/codexly/internal/platform/errors"
	"github.com/codexly-app/codexly/internal/platform/id"
	"github.com/codexly-app/codexly/internal/storage"
)

// ErrDenied is the single denial outcome for mutations on notes the caller
// does not own, including notes that do not exist.
var ErrDenied = apperrors.New(apperrors.CodeOwnershipDenied, "note does not exist or belongs to another user")

const tracerName = "codexly/notes"

// Service mediates all access to note records, enforcing that every read and
// mutation is scoped to the acting user's identity.
type Service struct {
	store       storage.NoteStore
	clock       func() time.Time
	idGenerator func() (string, error)
	tracer      trace.Tracer
}

// NewService creates a note Service with default dependencies.
func NewService(store storage.NoteStore) *Service {
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

// ListForOwner returns the caller's notes, most recently modified first.
// Owners with no notes get an empty slice, never an error.
func (s *Service) ListForOwner(ctx context.Context, ownerID string) ([]domain.Note, error) {
	notes, err := s.store.ListNotesForOwner(ctx, ownerID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeUnknown, "list notes", err)
	}
	return notes, nil
}

// GetByID returns a note by identifier without checking ownership; callers
// must verify ownership before acting on the result.
func (s *Service) GetByID(ctx context.Context, noteID string) (domain.Note, error) {
	note, err := s.store.GetNote(ctx, noteID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return domain.Note{}, storage.ErrNotFound
		}
		return domain.Note{}, apperrors.Wrap(apperrors.CodeUnknown, "get note", err)
	}
	return note, nil
}

// Create persists a new note owned by ownerID. A blank title becomes
// "Untitled"; missing fields are never an error.
func (s *Service) Create(ctx context.Context, ownerID string, input domain.CreateNoteInput) (domain.Note, error) {
	note, err := domain.CreateNote(ownerID, input, s.clock, s.idGenerator)
	if err != nil {
		return domain.Note{}, err
	}
	if err := s.store.PutNote(ctx, note); err != nil {
		return domain.Note{}, apperrors.Wrap(apperrors.CodeUnknown, "persist note", err)
	}
	return note, nil
}

// UpdateNoteInput carries the replacement fields for an update.
type UpdateNoteInput struct {
	Title string
	Body  string
}

// Update overwrites the note's fields and refreshes its last-modified
// instant when the note exists and belongs to ownerID; otherwise it returns
// ErrDenied without touching the record.
//
// The refreshed instant is clamped to strictly after the previous one, so
// consecutive updates inside the same millisecond still move it forward.
func (s *Service) Update(ctx context.Context, noteID, ownerID string, input UpdateNoteInput) (domain.Note, error) {
	ctx, span := s.tracer.Start(ctx, "notes.Update")
	defer span.End()

	note, err := s.authorize(ctx, span, noteID, ownerID)
	if err != nil {
		return domain.Note{}, err
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		title = domain.DefaultTitle
	}
	note.Title = title
	note.Body = input.Body
	note.UpdatedAt = s.nextUpdatedAt(note.UpdatedAt)

	if err := s.store.UpdateNoteOwned(ctx, note); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return domain.Note{}, ErrDenied
		}
		return domain.Note{}, apperrors.Wrap(apperrors.CodeUnknown, "update note", err)
	}
	return note, nil
}

// Delete permanently removes the note when it exists and belongs to ownerID.
// A repeated delete of the same identifier yields ErrDenied.
func (s *Service) Delete(ctx context.Context, noteID, ownerID string) error {
	ctx, span := s.tracer.Start(ctx, "notes.Delete")
	defer span.End()

	if _, err := s.authorize(ctx, span, noteID, ownerID); err != nil {
		return err
	}
	if err := s.store.DeleteNoteOwned(ctx, noteID, ownerID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrDenied
		}
		return apperrors.Wrap(apperrors.CodeUnknown, "delete note", err)
	}
	return nil
}

func (s *Service) nextUpdatedAt(previous time.Time) time.Time {
	next := s.clock().UTC().Truncate(time.Millisecond)
	if !next.After(previous) {
		next = previous.Add(time.Millisecond)
	}
	return next
}

func (s *Service) authorize(ctx context.Context, span trace.Span, noteID, ownerID string) (domain.Note, error) {
	note, err := s.store.GetNote(ctx, noteID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			span.SetAttributes(attribute.String("denial.reason", "not_found"))
			return domain.Note{}, ErrDenied
		}
		return domain.Note{}, apperrors.Wrap(apperrors.CodeUnknown, "get note", err)
	}
	if note.OwnerID != ownerID {
		span.SetAttributes(attribute.String("denial.reason", "wrong_owner"))
		return domain.Note{}, ErrDenied
	}
	return note, nil
}
