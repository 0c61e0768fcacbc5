package resettoken

import (
	"context"
	"sync"
	"time"

	id "passgate/pkg/domain"
	dErrors "passgate/pkg/domain-errors"
	"passgate/pkg/platform/sentinel"
)

type memoryEntry struct {
	userID    id.UserID
	expiresAt time.Time
}

// InMemoryStore holds pending tokens in a map. Expired entries are dropped
// lazily on Consume.
type InMemoryStore struct {
	mu      sync.Mutex
	pending map[id.ResetTokenID]memoryEntry
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		pending: make(map[id.ResetTokenID]memoryEntry),
	}
}

func (s *InMemoryStore) Save(ctx context.Context, tokenID id.ResetTokenID, userID id.UserID, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[tokenID] = memoryEntry{
		userID:    userID,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

func (s *InMemoryStore) Consume(ctx context.Context, tokenID id.ResetTokenID) (id.UserID, error) {
	if err := ctx.Err(); err != nil {
		return id.UserID{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.pending[tokenID]
	if !ok {
		return id.UserID{}, dErrors.Wrap(sentinel.ErrNotFound, dErrors.CodeNotFound, "reset token not found")
	}
	delete(s.pending, tokenID)

	if time.Now().After(entry.expiresAt) {
		return id.UserID{}, dErrors.Wrap(sentinel.ErrExpired, dErrors.CodeUnauthorized, "reset token expired")
	}
	return entry.userID, nil
}
