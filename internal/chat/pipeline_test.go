package chat

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/BadrRibzat/llm-model/internal/database"
	"github.com/BadrRibzat/llm-model/internal/docstore"
	"github.com/BadrRibzat/llm-model/internal/messaging"
)

type scriptedResponder struct {
	lastPrompt string
	reply      string
	echoPrompt bool
}

func (r *scriptedResponder) Generate(ctx context.Context, prompt string) string {
	r.lastPrompt = prompt
	if r.echoPrompt {
		return prompt + " " + r.reply
	}
	return r.reply
}

type failingStore struct{}

func (failingStore) InsertExchange(ctx context.Context, doc docstore.ChatDocument) error {
	return errors.New("document store is down")
}

func (failingStore) Close(ctx context.Context) error { return nil }

func newPipelineDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.GetMigrator(db).Migrate())
	return db
}

func TestPipelinePersistsToBothStores(t *testing.T) {
	db := newPipelineDB(t)
	docs := docstore.NewInMemoryStore()
	queue := messaging.NewInMemoryQueue()
	responder := &scriptedResponder{reply: "The answer is 4, a classic result of arithmetic"}

	pipeline := NewPipeline(db, docs, responder, queue)

	result, err := pipeline.Handle(context.Background(), "user-1", "What is 2+2?", nil)
	require.NoError(t, err)
	assert.NotEmpty(t, result.Response)

	exchanges, err := database.GetUserExchanges(context.Background(), db, "user-1", 0)
	require.NoError(t, err)
	require.Len(t, exchanges, 1)
	assert.Equal(t, "What is 2+2?", exchanges[0].Message)
	assert.Equal(t, result.Response, exchanges[0].Response)
	assert.Equal(t, "question", exchanges[0].Category)

	documents := docs.Documents()
	require.Len(t, documents, 1)
	assert.Equal(t, exchanges[0].ID.String(), documents[0].RelationalID)
	assert.Equal(t, result.Response, documents[0].Response)

	events := queue.Events()
	require.Len(t, events, 1)
	assert.Equal(t, exchanges[0].ID, events[0].ExchangeID)
	assert.Equal(t, "question", events[0].Category)
}

func TestPipelineToleratesDocumentStoreFailure(t *testing.T) {
	db := newPipelineDB(t)
	responder := &scriptedResponder{reply: "Here is a perfectly fine reply for you"}

	pipeline := NewPipeline(db, failingStore{}, responder, messaging.NewInMemoryQueue())

	result, err := pipeline.Handle(context.Background(), "user-1", "hello there friend", nil)
	require.NoError(t, err, "document store failure must not surface to the caller")
	assert.NotEmpty(t, result.Response)

	// The authoritative record still exists.
	exchanges, err := database.GetUserExchanges(context.Background(), db, "user-1", 0)
	require.NoError(t, err)
	assert.Len(t, exchanges, 1)
}

func TestPipelineRejectsEmptyMessageWithoutAttachments(t *testing.T) {
	db := newPipelineDB(t)
	pipeline := NewPipeline(db, docstore.NewInMemoryStore(), &scriptedResponder{reply: "x"}, messaging.NewInMemoryQueue())

	_, err := pipeline.Handle(context.Background(), "user-1", "   ", nil)
	require.ErrorIs(t, err, ErrEmptyMessage)

	// Nothing persisted on validation failure.
	exchanges, err := database.GetUserExchanges(context.Background(), db, "user-1", 0)
	require.NoError(t, err)
	assert.Empty(t, exchanges)
}

func TestPipelineAllowsEmptyMessageWithAttachment(t *testing.T) {
	db := newPipelineDB(t)
	docs := docstore.NewInMemoryStore()
	responder := &scriptedResponder{reply: "Your notes mention a deadline next week"}

	pipeline := NewPipeline(db, docs, responder, messaging.NewInMemoryQueue())

	att := Attachment{
		Name:     "notes.txt",
		MimeType: "text/plain",
		Size:     20,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader("deadline is next week")), nil
		},
	}

	result, err := pipeline.Handle(context.Background(), "user-1", "", []Attachment{att})
	require.NoError(t, err)

	assert.Contains(t, responder.lastPrompt, "Attached files:")
	assert.Contains(t, responder.lastPrompt, "deadline is next week")
	require.Len(t, result.Attachments, 1)
	assert.Equal(t, "notes.txt", result.Attachments[0].Name)
	assert.Equal(t, int64(20), result.Attachments[0].SizeBytes)
}

func TestPipelineCleansEchoedPrompt(t *testing.T) {
	db := newPipelineDB(t)
	responder := &scriptedResponder{reply: "Paris, and it has been for centuries", echoPrompt: true}

	pipeline := NewPipeline(db, docstore.NewInMemoryStore(), responder, messaging.NewInMemoryQueue())

	result, err := pipeline.Handle(context.Background(), "user-1", "what is the capital of france", nil)
	require.NoError(t, err)

	assert.NotContains(t, result.Response, "User:")
	assert.NotContains(t, result.Response, "Assistant:")
	assert.Contains(t, result.Response, "Paris")
}

func TestPipelineExtractsArtifactsFromResponse(t *testing.T) {
	db := newPipelineDB(t)
	responder := &scriptedResponder{reply: "Try this ```python\nprint(2 + 2)\n``` and tell me"}

	pipeline := NewPipeline(db, docstore.NewInMemoryStore(), responder, messaging.NewInMemoryQueue())

	result, err := pipeline.Handle(context.Background(), "user-1", "show me some python code", nil)
	require.NoError(t, err)

	require.Len(t, result.Artifacts, 1)
	assert.Equal(t, "python", result.Artifacts[0].Language)
	assert.Equal(t, "print(2 + 2)", result.Artifacts[0].Content)
}
