package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/notekeeper/notes-api/internal/domain"
	"github.com/notekeeper/notes-api/internal/platform/logger"
	"github.com/notekeeper/notes-api/internal/store"
)

// NoteStore implements the store.NoteStore interface using a PostgreSQL
// database as the storage backend. Each method maps to a single query;
// statement-level atomicity is all the concurrency control there is.
type NoteStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewNoteStore creates a new PostgreSQL implementation of the NoteStore
// interface. If logger is nil, the default logger is used.
func NewNoteStore(db store.DBTX, log *slog.Logger) *NoteStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &NoteStore{
		db:     db,
		logger: log.With(slog.String("component", "note_store")),
	}
}

var _ store.NoteStore = (*NoteStore)(nil)

// Create implements store.NoteStore.Create.
func (s *NoteStore) Create(ctx context.Context, note *domain.Note) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := note.Validate(); err != nil {
		log.Warn("note validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO notes (title, contents, created)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query, note.Title, note.Contents, note.CreatedAt).
		Scan(&note.ID)
	if err != nil {
		log.Error("failed to create note", slog.String("error", err.Error()))
		return MapError(err)
	}

	log.Info("note created", slog.Int64("note_id", note.ID))
	return nil
}

// GetByID implements store.NoteStore.GetByID.
// Returns store.ErrNoteNotFound if the note does not exist.
func (s *NoteStore) GetByID(ctx context.Context, id int64) (*domain.Note, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, contents, created
		FROM notes
		WHERE id = $1
	`
	var note domain.Note
	err := s.db.QueryRowContext(ctx, query, id).
		Scan(&note.ID, &note.Title, &note.Contents, &note.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNoteNotFound
		}
		log.Error("failed to get note",
			slog.String("error", err.Error()),
			slog.Int64("note_id", id))
		return nil, MapError(err)
	}

	return &note, nil
}

// List implements store.NoteStore.List.
// Notes come back in insertion order so listings are deterministic.
func (s *NoteStore) List(ctx context.Context) ([]domain.Note, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, contents, created
		FROM notes
		ORDER BY id
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list notes", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer rows.Close()

	notes := []domain.Note{}
	for rows.Next() {
		var note domain.Note
		if err := rows.Scan(&note.ID, &note.Title, &note.Contents, &note.CreatedAt); err != nil {
			log.Error("failed to scan note row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return notes, nil
}

// Update implements store.NoteStore.Update.
// Only title and contents change; the creation timestamp stays as it was.
// Returns store.ErrNoteNotFound if the note does not exist.
func (s *NoteStore) Update(ctx context.Context, note *domain.Note) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := note.Validate(); err != nil {
		log.Warn("note validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("note_id", note.ID))
		return err
	}

	query := `
		UPDATE notes
		SET title = $1, contents = $2
		WHERE id = $3
		RETURNING created
	`
	// RETURNING hands back the untouched creation timestamp so callers
	// see the full row after the update.
	err := s.db.QueryRowContext(ctx, query, note.Title, note.Contents, note.ID).
		Scan(&note.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return store.ErrNoteNotFound
		}
		log.Error("failed to update note",
			slog.String("error", err.Error()),
			slog.Int64("note_id", note.ID))
		return MapError(err)
	}

	log.Info("note updated", slog.Int64("note_id", note.ID))
	return nil
}

// Delete implements store.NoteStore.Delete.
// Returns store.ErrNoteNotFound if the note does not exist.
func (s *NoteStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM notes WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete note",
			slog.String("error", err.Error()),
			slog.Int64("note_id", id))
		return MapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return MapError(err)
	}
	if affected == 0 {
		return store.ErrNoteNotFound
	}

	log.Info("note deleted", slog.Int64("note_id", id))
	return nil
}
