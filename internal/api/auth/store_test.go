package auth

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/shopmesh/auth-service/internal/db"
)

// memStore is an in-memory UserStore for tests. Like the production
// store, the insert itself is the uniqueness check: CreateUser holds
// the lock across check and write, so concurrent registrations for
// the same email cannot both succeed.
type memStore struct {
	mu    sync.Mutex
	users map[string]db.User
}

func newMemStore() *memStore {
	return &memStore{users: make(map[string]db.User)}
}

func (m *memStore) CreateUser(email, passwordHash string, profile db.Profile) (uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.users[email]; exists {
		return uuid.Nil, ErrDuplicateIdentity
	}

	id := uuid.New()
	m.users[email] = db.User{
		ID:           id,
		Email:        email,
		PasswordHash: passwordHash,
		Profile:      profile,
		CreatedAt:    time.Now(),
	}
	return id, nil
}

func (m *memStore) GetUserByEmail(email string) (*db.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[email]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (m *memStore) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.users)
}
