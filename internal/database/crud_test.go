package database

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, GetMigrator(db).Migrate())
	return db
}

func TestChatExchangeRoundTrip(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	exchange := &ChatExchange{
		ID:        uuid.New(),
		UserID:    "user-1",
		Message:   "What is 2+2?",
		Response:  "The answer is 4.",
		Category:  "question",
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, CreateChatExchange(ctx, db, exchange))

	got, err := GetChatExchange(ctx, db, exchange.ID)
	require.NoError(t, err)
	assert.Equal(t, exchange.Message, got.Message)
	assert.Equal(t, exchange.Response, got.Response)
	assert.Equal(t, exchange.Category, got.Category)
}

func TestGetUserExchangesOrderAndLimit(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, CreateChatExchange(ctx, db, &ChatExchange{
			ID:        uuid.New(),
			UserID:    "user-1",
			Message:   "msg",
			Response:  "resp",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}
	require.NoError(t, CreateChatExchange(ctx, db, &ChatExchange{
		ID:        uuid.New(),
		UserID:    "someone-else",
		Message:   "other",
		Response:  "resp",
		CreatedAt: base,
	}))

	exchanges, err := GetUserExchanges(ctx, db, "user-1", 3)
	require.NoError(t, err)
	require.Len(t, exchanges, 3)
	// Newest first.
	assert.True(t, exchanges[0].CreatedAt.After(exchanges[1].CreatedAt))
	assert.True(t, exchanges[1].CreatedAt.After(exchanges[2].CreatedAt))
	for _, e := range exchanges {
		assert.Equal(t, "user-1", e.UserID)
	}
}
