// Package audit captures append-only records of credential mutations. The
// publisher writes through a Store so tests and deployments can swap sinks.
package audit

import (
	"context"
	"time"
)

// Store is the append-only persistence behind the publisher.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListByUser(ctx context.Context, userID string) ([]Event, error)
}

// Publisher captures structured audit events.
type Publisher struct {
	store Store
}

func NewPublisher(store Store) *Publisher {
	return &Publisher{store: store}
}

func (p *Publisher) Emit(ctx context.Context, event Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	return p.store.Append(ctx, event)
}

func (p *Publisher) List(ctx context.Context, userID string) ([]Event, error) {
	return p.store.ListByUser(ctx, userID)
}
