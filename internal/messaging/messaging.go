package messaging

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	// Recorded exchanges are consumed offline to build fine-tuning
	// datasets; the broker is fed best effort and never blocks a chat
	// response.
	ExchangeQueue   = "chat_exchange_queue"
	RetryDelay      = 5 * time.Second
	MaxConnectRetry = 5
)

type ExchangeRecordedPayload struct {
	ExchangeID uuid.UUID
	UserID     string
	Category   string
	RecordedAt time.Time
}

type Publisher interface {
	PublishExchangeRecorded(ctx context.Context, payload ExchangeRecordedPayload) error

	Close()
}
