package messaging

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPublishExchangeRecordedWithoutConnection(t *testing.T) {
	// A publisher whose channel was torn down (as during a reconnect) must
	// report an error, never dereference the nil channel.
	p := &RabbitMQPublisher{url: "amqp://localhost:5672"}

	err := p.PublishExchangeRecorded(context.Background(), ExchangeRecordedPayload{
		ExchangeID: uuid.New(),
		UserID:     "user-1",
		Category:   "general",
		RecordedAt: time.Now().UTC(),
	})
	assert.ErrorContains(t, err, "rabbitmq connection is closed")
}
