package database

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ChatExchange is the authoritative record of one chat turn. Exactly
// one row is created per successful pipeline run; the document store
// holds a denormalized mirror keyed by this row's id.
type ChatExchange struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID   string    `gorm:"index;not null"`
	Message  string
	Response string
	Category string `gorm:"size:20"`

	// [{"name":"…","mime_type":"…","size_bytes":…},…]; metadata only,
	// attachment bytes are never stored.
	Attachments datatypes.JSON `gorm:"type:jsonb"`

	CreatedAt time.Time `gorm:"index"`
}
