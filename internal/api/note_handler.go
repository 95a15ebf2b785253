package api

import (
	"net/http"

	"github.com/notekeeper/notes-api/internal/api/shared"
	"github.com/notekeeper/notes-api/internal/domain"
	"github.com/notekeeper/notes-api/internal/platform/logger"
	"github.com/notekeeper/notes-api/internal/store"
)

// NoteHandler handles note CRUD requests. All routes it serves sit behind
// the authentication middleware, so requests reaching it always carry an
// authenticated user ID in the context.
type NoteHandler struct {
	notes store.NoteStore
}

// NewNoteHandler creates a new NoteHandler with the given dependencies.
func NewNoteHandler(notes store.NoteStore) *NoteHandler {
	return &NoteHandler{notes: notes}
}

// List handles GET /api/notes.
func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	notes, err := h.notes.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to list notes", err)
		return
	}

	responses := make([]NoteResponse, 0, len(notes))
	for i := range notes {
		responses = append(responses, noteToResponse(&notes[i]))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// Get handles GET /api/notes/{id}.
func (h *NoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	note, err := h.notes.GetByID(r.Context(), id)
	if err != nil {
		h.respondStoreError(w, r, err, "Failed to get note")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, noteToResponse(note))
}

// Create handles POST /api/notes.
func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req NoteRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	note, err := domain.NewNote(req.Title, req.Contents)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	if err := h.notes.Create(r.Context(), note); err != nil {
		h.respondStoreError(w, r, err, "Failed to create note")
		return
	}

	log := logger.FromContext(r.Context())
	log.Info("note created", "note_id", note.ID)

	shared.RespondWithJSON(w, r, http.StatusCreated, noteToResponse(note))
}

// Update handles PUT /api/notes/{id}.
func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	var req NoteRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	note := &domain.Note{
		ID:       id,
		Title:    req.Title,
		Contents: req.Contents,
	}

	if err := h.notes.Update(r.Context(), note); err != nil {
		h.respondStoreError(w, r, err, "Failed to update note")
		return
	}

	log := logger.FromContext(r.Context())
	log.Info("note updated", "note_id", note.ID)

	shared.RespondWithJSON(w, r, http.StatusOK, noteToResponse(note))
}

// Delete handles DELETE /api/notes/{id}.
func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	if err := h.notes.Delete(r.Context(), id); err != nil {
		h.respondStoreError(w, r, err, "Failed to delete note")
		return
	}

	log := logger.FromContext(r.Context())
	log.Info("note deleted", "note_id", id)

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "Note deleted"})
}

// respondStoreError translates store-layer failures into client responses,
// logging only the unexpected ones.
func (h *NoteHandler) respondStoreError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status := MapErrorToStatusCode(err)
	if status == http.StatusInternalServerError {
		shared.RespondWithErrorAndLog(w, r, status, fallback, err)
		return
	}
	shared.RespondWithError(w, r, status, GetSafeErrorMessage(err))
}
