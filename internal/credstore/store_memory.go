package credstore

import (
	"context"
	"sync"

	id "passgate/pkg/domain"
)

// InMemoryStore keeps credentials in a map. Used by tests and dev wiring.
type InMemoryStore struct {
	mu     sync.RWMutex
	hashes map[id.UserID]string
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		hashes: make(map[id.UserID]string),
	}
}

func (s *InMemoryStore) Set(ctx context.Context, userID id.UserID, password string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	encoded, err := hashPassword(password)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.hashes[userID] = encoded
	return nil
}

func (s *InMemoryStore) Verify(ctx context.Context, userID id.UserID, password string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.RLock()
	encoded, ok := s.hashes[userID]
	s.mu.RUnlock()
	if !ok {
		return false, ErrNotFound
	}
	return verifyPassword(password, encoded)
}

func (s *InMemoryStore) VerifyAndSet(ctx context.Context, userID id.UserID, oldPassword, newPassword string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	encoded, ok := s.hashes[userID]
	if !ok {
		return false, ErrNotFound
	}
	match, err := verifyPassword(oldPassword, encoded)
	if err != nil {
		return false, err
	}
	if !match {
		return false, nil
	}

	fresh, err := hashPassword(newPassword)
	if err != nil {
		return false, err
	}
	s.hashes[userID] = fresh
	return true, nil
}
