package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/notekeeper/notes-api/internal/domain"
	"github.com/notekeeper/notes-api/internal/store"
)

// MockUserStore is an in-memory implementation of store.UserStore.
// IDs are assigned sequentially starting at 1, matching the database's
// serial column behavior.
type MockUserStore struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]*domain.User

	// Err, when set, is returned by every method.
	Err error
}

var _ store.UserStore = (*MockUserStore)(nil)

// NewMockUserStore creates an empty MockUserStore.
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{users: make(map[string]*domain.User)}
}

// Create implements store.UserStore.
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.Err != nil {
		return m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.users[user.Username]; exists {
		return fmt.Errorf("%w: %q", store.ErrUsernameExists, user.Username)
	}

	m.nextID++
	user.ID = m.nextID
	stored := *user
	m.users[user.Username] = &stored
	return nil
}

// GetByID implements store.UserStore.
func (m *MockUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// GetByUsername implements store.UserStore.
func (m *MockUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[username]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}
