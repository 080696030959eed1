package messaging

import (
	"context"
	"sync"
)

// InMemoryQueue records published events in memory. Used by tests and
// by local mode, where no broker is running.
type InMemoryQueue struct {
	mu     sync.Mutex
	events []ExchangeRecordedPayload
}

func NewInMemoryQueue() *InMemoryQueue {
	return &InMemoryQueue{}
}

func (q *InMemoryQueue) PublishExchangeRecorded(ctx context.Context, payload ExchangeRecordedPayload) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.events = append(q.events, payload)
	return nil
}

func (q *InMemoryQueue) Events() []ExchangeRecordedPayload {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]ExchangeRecordedPayload(nil), q.events...)
}

func (q *InMemoryQueue) Close() {}
