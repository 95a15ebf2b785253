package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notekeeper/notes-api/internal/api"
	"github.com/notekeeper/notes-api/internal/domain"
	"github.com/notekeeper/notes-api/internal/mocks"
)

// newNoteRouter mounts a NoteHandler the way the real router does, so
// chi URL parameters resolve in tests.
func newNoteRouter(notes *mocks.MockNoteStore) http.Handler {
	handler := api.NewNoteHandler(notes)

	r := chi.NewRouter()
	r.Route("/api/notes", func(r chi.Router) {
		r.Get("/", handler.List)
		r.Post("/", handler.Create)
		r.Get("/{id}", handler.Get)
		r.Put("/{id}", handler.Update)
		r.Delete("/{id}", handler.Delete)
	})
	return r
}

func seedNote(t *testing.T, notes *mocks.MockNoteStore, title, contents string) *domain.Note {
	t.Helper()
	note, err := domain.NewNote(title, contents)
	require.NoError(t, err)
	require.NoError(t, notes.Create(context.Background(), note))
	return note
}

func TestNoteHandler_List(t *testing.T) {
	t.Parallel()

	t.Run("empty store returns empty array", func(t *testing.T) {
		t.Parallel()

		router := newNoteRouter(mocks.NewMockNoteStore())
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/notes", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("notes come back in insertion order", func(t *testing.T) {
		t.Parallel()

		notes := mocks.NewMockNoteStore()
		seedNote(t, notes, "first", "one")
		seedNote(t, notes, "second", "two")
		seedNote(t, notes, "third", "three")

		router := newNoteRouter(notes)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/notes", nil))

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp []api.NoteResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp, 3)
		assert.Equal(t, []int64{1, 2, 3}, []int64{resp[0].ID, resp[1].ID, resp[2].ID})
		assert.Equal(t, "first", resp[0].Title)
		assert.Equal(t, "third", resp[2].Title)
	})

	t.Run("store failure is a 500", func(t *testing.T) {
		t.Parallel()

		notes := mocks.NewMockNoteStore()
		notes.Err = assert.AnError

		router := newNoteRouter(notes)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/notes", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
	})
}

func TestNoteHandler_Get(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		path           string
		expectedStatus int
	}{
		{"existing note", "/api/notes/1", http.StatusOK},
		{"unknown id", "/api/notes/99", http.StatusNotFound},
		{"non-numeric id", "/api/notes/abc", http.StatusBadRequest},
		{"negative id", "/api/notes/-1", http.StatusBadRequest},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			notes := mocks.NewMockNoteStore()
			created := seedNote(t, notes, "T", "C")

			router := newNoteRouter(notes)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))

			assert.Equal(t, tc.expectedStatus, rec.Code)
			if tc.expectedStatus == http.StatusOK {
				var resp api.NoteResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, created.ID, resp.ID)
				assert.Equal(t, "T", resp.Title)
				assert.Equal(t, "C", resp.Contents)
				assert.False(t, resp.CreatedAt.IsZero())
			}
		})
	}
}

func TestNoteHandler_Create(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:           "valid note",
			body:           `{"title":"T","contents":"C"}`,
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp api.NoteResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, int64(1), resp.ID)
				assert.Equal(t, "T", resp.Title)
				assert.Equal(t, "C", resp.Contents)
				assert.False(t, resp.CreatedAt.IsZero())
			},
		},
		{
			name:           "missing title",
			body:           `{"contents":"C"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing contents",
			body:           `{"title":"T"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed JSON",
			body:           `{`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			router := newNoteRouter(mocks.NewMockNoteStore())
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/notes", strings.NewReader(tc.body)))

			assert.Equal(t, tc.expectedStatus, rec.Code)
			if tc.checkResponse != nil {
				tc.checkResponse(t, rec)
			}
		})
	}
}

func TestNoteHandler_Update(t *testing.T) {
	t.Parallel()

	t.Run("updates title and contents, keeps creation time", func(t *testing.T) {
		t.Parallel()

		notes := mocks.NewMockNoteStore()
		created := seedNote(t, notes, "old title", "old contents")

		router := newNoteRouter(notes)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(
			http.MethodPut, "/api/notes/1",
			strings.NewReader(`{"title":"new title","contents":"new contents"}`)))

		require.Equal(t, http.StatusOK, rec.Code)

		var resp api.NoteResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, created.ID, resp.ID)
		assert.Equal(t, "new title", resp.Title)
		assert.Equal(t, "new contents", resp.Contents)
		assert.Equal(t, created.CreatedAt, resp.CreatedAt)

		stored, err := notes.GetByID(context.Background(), created.ID)
		require.NoError(t, err)
		assert.Equal(t, "new title", stored.Title)
		assert.Equal(t, created.CreatedAt, stored.CreatedAt)
	})

	t.Run("unknown id is a 404", func(t *testing.T) {
		t.Parallel()

		router := newNoteRouter(mocks.NewMockNoteStore())
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(
			http.MethodPut, "/api/notes/42",
			strings.NewReader(`{"title":"T","contents":"C"}`)))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("empty title is a 400", func(t *testing.T) {
		t.Parallel()

		notes := mocks.NewMockNoteStore()
		seedNote(t, notes, "T", "C")

		router := newNoteRouter(notes)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(
			http.MethodPut, "/api/notes/1",
			strings.NewReader(`{"title":"","contents":"C"}`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestNoteHandler_Delete(t *testing.T) {
	t.Parallel()

	t.Run("removes the note", func(t *testing.T) {
		t.Parallel()

		notes := mocks.NewMockNoteStore()
		created := seedNote(t, notes, "T", "C")

		router := newNoteRouter(notes)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/notes/1", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Note deleted"}`, rec.Body.String())

		_, err := notes.GetByID(context.Background(), created.ID)
		assert.Error(t, err)
	})

	t.Run("deleting twice is a 404", func(t *testing.T) {
		t.Parallel()

		notes := mocks.NewMockNoteStore()
		seedNote(t, notes, "T", "C")

		router := newNoteRouter(notes)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/notes/1", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/notes/1", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("non-numeric id is a 400", func(t *testing.T) {
		t.Parallel()

		router := newNoteRouter(mocks.NewMockNoteStore())
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/notes/abc", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
