package store

import (
	"context"

	"github.com/notekeeper/notes-api/internal/domain"
)

// NoteStore defines the interface for note data persistence.
// Every method issues exactly one database round-trip.
type NoteStore interface {
	// Create saves a new note and fills in the generated ID.
	// Returns validation errors from the domain Note if data is invalid.
	Create(ctx context.Context, note *domain.Note) error

	// GetByID retrieves a note by its unique ID.
	// Returns ErrNoteNotFound if the note does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Note, error)

	// List returns all notes in insertion order.
	List(ctx context.Context) ([]domain.Note, error)

	// Update overwrites the title and contents of an existing note.
	// The creation timestamp is left untouched.
	// Returns ErrNoteNotFound if the note does not exist.
	Update(ctx context.Context, note *domain.Note) error

	// Delete removes a note by its ID.
	// Returns ErrNoteNotFound if the note does not exist.
	Delete(ctx context.Context, id int64) error
}
