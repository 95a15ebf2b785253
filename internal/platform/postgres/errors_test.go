package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/notekeeper/notes-api/internal/store"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{
			name:    "nil error",
			err:     nil,
			wantErr: nil,
		},
		{
			name:    "no rows maps to not found",
			err:     sql.ErrNoRows,
			wantErr: store.ErrNotFound,
		},
		{
			name:    "wrapped no rows maps to not found",
			err:     fmt.Errorf("querying: %w", sql.ErrNoRows),
			wantErr: store.ErrNotFound,
		},
		{
			name:    "unique violation maps to duplicate",
			err:     &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"},
			wantErr: store.ErrDuplicate,
		},
		{
			name:    "foreign key violation maps to invalid entity",
			err:     &pgconn.PgError{Code: "23503", ConstraintName: "notes_user_fk"},
			wantErr: store.ErrInvalidEntity,
		},
		{
			name:    "not null violation maps to invalid entity",
			err:     &pgconn.PgError{Code: "23502"},
			wantErr: store.ErrInvalidEntity,
		},
		{
			name:    "check violation maps to invalid entity",
			err:     &pgconn.PgError{Code: "23514"},
			wantErr: store.ErrInvalidEntity,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mapped := MapError(tt.err)

			if tt.wantErr == nil {
				assert.NoError(t, mapped)
				return
			}
			assert.ErrorIs(t, mapped, tt.wantErr)
		})
	}

	t.Run("unknown errors pass through unchanged", func(t *testing.T) {
		t.Parallel()
		original := errors.New("connection reset")
		assert.Equal(t, original, MapError(original))
	})
}

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("other")))
	assert.False(t, IsUniqueViolation(nil))
}
