package session

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/filebox/internal/client/models"
)

// MemoryStore is a non-durable Store used in tests and anywhere session
// persistence across runs is not wanted.
type MemoryStore struct {
	mu   sync.Mutex
	sess models.Session
	set  bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Get(_ context.Context) (models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.set {
		return models.Session{}, nil
	}
	return m.sess, nil
}

func (m *MemoryStore) Set(_ context.Context, token, username string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sess = models.Session{Token: token, Username: username}
	m.set = true
	return nil
}

func (m *MemoryStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sess = models.Session{}
	m.set = false
	return nil
}

func (m *MemoryStore) IsAuthenticated(ctx context.Context) (bool, error) {
	sess, err := m.Get(ctx)
	if err != nil {
		return false, err
	}
	return sess.IsAuthenticated(), nil
}
