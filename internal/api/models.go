package api

import (
	"time"

	"github.com/notekeeper/notes-api/internal/domain"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=1,max=64"`
	Password string `json:"password" validate:"required,min=1,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required,min=1"`
	Password string `json:"password" validate:"required,min=1"`
}

// RegisterResponse defines the successful response for registration.
type RegisterResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// LoginResponse defines the successful response for login.
type LoginResponse struct {
	Token string `json:"token"`
}

// NoteRequest defines the payload for creating or updating a note.
type NoteRequest struct {
	Title    string `json:"title"    validate:"required,min=1"`
	Contents string `json:"contents" validate:"required,min=1"`
}

// NoteResponse represents a note as returned by the API.
type NoteResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Contents  string    `json:"contents"`
	CreatedAt time.Time `json:"created_at"`
}

// MessageResponse carries a human-readable acknowledgment.
type MessageResponse struct {
	Message string `json:"message"`
}

// noteToResponse converts a domain.Note to its API representation.
func noteToResponse(note *domain.Note) NoteResponse {
	return NoteResponse{
		ID:        note.ID,
		Title:     note.Title,
		Contents:  note.Contents,
		CreatedAt: note.CreatedAt,
	}
}
