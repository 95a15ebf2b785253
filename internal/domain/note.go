package domain

import "time"

// Note is the single resource type this service manages. The creation
// timestamp is assigned by the server once and never changes on update.
type Note struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Contents  string    `json:"contents"`
	CreatedAt time.Time `json:"created_at"`
}

// NewNote creates a new Note with the given title and contents, stamping
// it with the current UTC time. Returns an error if validation fails.
func NewNote(title, contents string) (*Note, error) {
	note := &Note{
		Title:     title,
		Contents:  contents,
		CreatedAt: time.Now().UTC(),
	}

	if err := note.Validate(); err != nil {
		return nil, err
	}

	return note, nil
}

// Validate checks the invariant that a note always has a non-empty
// title and non-empty contents.
func (n *Note) Validate() error {
	if n.Title == "" {
		return ErrEmptyTitle
	}
	if n.Contents == "" {
		return ErrEmptyContents
	}
	return nil
}
