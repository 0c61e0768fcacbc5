// Package directory resolves accounts to their identity view and backend
// configuration. The engine itself never looks up accounts; the transport
// layer resolves the handle here and passes it in.
package directory

import (
	"context"
	"sync"

	"passgate/internal/password"
	id "passgate/pkg/domain"
	dErrors "passgate/pkg/domain-errors"
	"passgate/pkg/platform/sentinel"
)

// Entry pairs an identity with the backend serving it.
type Entry struct {
	Identity password.Identity
	Backend  password.BackendConfig
}

// Directory looks up the entry for a user.
type Directory interface {
	Lookup(ctx context.Context, userID id.UserID) (Entry, error)
}

// MemoryDirectory is a map-backed Directory for tests and dev wiring.
type MemoryDirectory struct {
	mu      sync.RWMutex
	entries map[id.UserID]Entry
}

func NewMemoryDirectory() *MemoryDirectory {
	return &MemoryDirectory{
		entries: make(map[id.UserID]Entry),
	}
}

func (d *MemoryDirectory) Add(entry Entry) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.entries[entry.Identity.ID] = entry
}

func (d *MemoryDirectory) Lookup(_ context.Context, userID id.UserID) (Entry, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	entry, ok := d.entries[userID]
	if !ok {
		return Entry{}, dErrors.Wrap(sentinel.ErrNotFound, dErrors.CodeNotFound, "unknown user")
	}
	return entry, nil
}
