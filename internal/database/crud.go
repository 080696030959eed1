package database

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SQLite only supports one writer at a time, so we need a lock
// whenever we write to the database
var dbMutex sync.Mutex

func CreateChatExchange(ctx context.Context, db *gorm.DB, exchange *ChatExchange) error {
	dbMutex.Lock()
	defer dbMutex.Unlock()
	return db.WithContext(ctx).Create(exchange).Error
}

// GetUserExchanges returns the user's most recent exchanges, newest
// first.
func GetUserExchanges(ctx context.Context, db *gorm.DB, userID string, limit int) ([]ChatExchange, error) {
	query := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var exchanges []ChatExchange
	err := query.Find(&exchanges).Error
	return exchanges, err
}

func GetChatExchange(ctx context.Context, db *gorm.DB, id uuid.UUID) (ChatExchange, error) {
	var exchange ChatExchange
	err := db.WithContext(ctx).First(&exchange, "id = ?", id).Error
	return exchange, err
}
