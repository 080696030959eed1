package docstore

import (
	"context"
	"sync"
	"time"

	"github.com/BadrRibzat/llm-model/pkg/api"
)

// ChatDocument is the denormalized archival copy of a chat exchange.
// The relational row id travels in django_id; the collection predates
// this backend and the legacy field name is kept so existing documents
// stay queryable alongside new ones.
type ChatDocument struct {
	UserID       string                  `bson:"user_id"`
	Message      string                  `bson:"message"`
	Response     string                  `bson:"response"`
	Artifacts    []api.Artifact          `bson:"artifacts"`
	Attachments  []api.AttachmentSummary `bson:"attachments"`
	Timestamp    time.Time               `bson:"timestamp"`
	RelationalID string                  `bson:"django_id"`
}

// Store archives chat documents. Writes are best effort from the
// pipeline's point of view: the caller logs and continues on error.
type Store interface {
	InsertExchange(ctx context.Context, doc ChatDocument) error

	Close(ctx context.Context) error
}

// InMemoryStore keeps documents in a slice. Used by tests and by local
// mode, where no document database is running.
type InMemoryStore struct {
	mu   sync.Mutex
	docs []ChatDocument
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) InsertExchange(ctx context.Context, doc ChatDocument) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs = append(s.docs, doc)
	return nil
}

func (s *InMemoryStore) Documents() []ChatDocument {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]ChatDocument(nil), s.docs...)
}

func (s *InMemoryStore) Close(ctx context.Context) error { return nil }
