package mocks

import (
	"context"
	"sync"

	"github.com/notekeeper/notes-api/internal/domain"
	"github.com/notekeeper/notes-api/internal/store"
)

// MockNoteStore is an in-memory implementation of store.NoteStore that
// preserves insertion order for List.
type MockNoteStore struct {
	mu     sync.Mutex
	nextID int64
	notes  []domain.Note

	// Err, when set, is returned by every method.
	Err error
}

var _ store.NoteStore = (*MockNoteStore)(nil)

// NewMockNoteStore creates an empty MockNoteStore.
func NewMockNoteStore() *MockNoteStore {
	return &MockNoteStore{}
}

// Create implements store.NoteStore.
func (m *MockNoteStore) Create(ctx context.Context, note *domain.Note) error {
	if m.Err != nil {
		return m.Err
	}
	if err := note.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	note.ID = m.nextID
	m.notes = append(m.notes, *note)
	return nil
}

// GetByID implements store.NoteStore.
func (m *MockNoteStore) GetByID(ctx context.Context, id int64) (*domain.Note, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, n := range m.notes {
		if n.ID == id {
			copied := n
			return &copied, nil
		}
	}
	return nil, store.ErrNoteNotFound
}

// List implements store.NoteStore.
func (m *MockNoteStore) List(ctx context.Context) ([]domain.Note, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]domain.Note, len(m.notes))
	copy(out, m.notes)
	return out, nil
}

// Update implements store.NoteStore.
func (m *MockNoteStore) Update(ctx context.Context, note *domain.Note) error {
	if m.Err != nil {
		return m.Err
	}
	if err := note.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.notes {
		if m.notes[i].ID == note.ID {
			m.notes[i].Title = note.Title
			m.notes[i].Contents = note.Contents
			note.CreatedAt = m.notes[i].CreatedAt
			return nil
		}
	}
	return store.ErrNoteNotFound
}

// Delete implements store.NoteStore.
func (m *MockNoteStore) Delete(ctx context.Context, id int64) error {
	if m.Err != nil {
		return m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.notes {
		if m.notes[i].ID == id {
			m.notes = append(m.notes[:i], m.notes[i+1:]...)
			return nil
		}
	}
	return store.ErrNoteNotFound
}
