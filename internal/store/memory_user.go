package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-fin-tracker/models"
)

// memoryUserRepository is an in-process [UserRepository] used when the DSN is
// "memory://" and in tests. Data lives only as long as the process.
type memoryUserRepository struct {
	mu      sync.RWMutex
	nextID  int64
	users   map[int64]models.User
	byEmail map[string]int64
	now     func() time.Time
}

// NewMemoryUserRepository returns an empty in-memory [UserRepository].
func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{
		users:   make(map[int64]models.User),
		byEmail: make(map[string]int64),
		now:     time.Now,
	}
}

func (m *memoryUserRepository) CreateUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, taken := m.byEmail[user.Email]; taken {
		return models.User{}, ErrEmailAlreadyExists
	}

	m.nextID++
	user.UserID = m.nextID
	user.CreatedAt = m.now().UTC()

	m.users[user.UserID] = user
	m.byEmail[user.Email] = user.UserID
	return user, nil
}

func (m *memoryUserRepository) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.byEmail[email]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}
	return m.users[id], nil
}

func (m *memoryUserRepository) FindUserByID(_ context.Context, userID int64) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[userID]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}
	return user, nil
}

func (m *memoryUserRepository) UpdateName(_ context.Context, userID int64, name string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[userID]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}
	user.Name = name
	m.users[userID] = user
	return user, nil
}

func (m *memoryUserRepository) UpdatePasswordHash(_ context.Context, userID int64, passwordHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[userID]
	if !ok {
		return ErrNoUserWasFound
	}
	user.PasswordHash = passwordHash
	m.users[userID] = user
	return nil
}
