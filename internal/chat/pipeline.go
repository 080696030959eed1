package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/BadrRibzat/llm-model/internal/core"
	"github.com/BadrRibzat/llm-model/internal/database"
	"github.com/BadrRibzat/llm-model/internal/docstore"
	"github.com/BadrRibzat/llm-model/internal/messaging"
	"github.com/BadrRibzat/llm-model/internal/prompt"
	"github.com/BadrRibzat/llm-model/pkg/api"
)

// ErrEmptyMessage is returned when a request carries neither a message
// nor attachments; with attachments present an empty message is fine
// because the attachment content still feeds the prompt.
var ErrEmptyMessage = errors.New("message is required when no files are attached")

// Responder produces a reply for an already-built prompt. Generation
// failures are degraded inside the implementation, so Responder never
// returns an error.
type Responder interface {
	Generate(ctx context.Context, prompt string) string
}

// Pipeline runs one chat exchange end to end: classify, build the
// prompt, generate, clean, extract artifacts, then persist. The
// relational row is the system of record and its write must succeed;
// the document mirror and the recorded-exchange event are best effort.
type Pipeline struct {
	db        *gorm.DB
	documents docstore.Store
	responder Responder
	publisher messaging.Publisher
}

func NewPipeline(db *gorm.DB, documents docstore.Store, responder Responder, publisher messaging.Publisher) *Pipeline {
	return &Pipeline{
		db:        db,
		documents: documents,
		responder: responder,
		publisher: publisher,
	}
}

type Result struct {
	Response    string
	Artifacts   []api.Artifact
	Attachments []api.AttachmentSummary
}

func (p *Pipeline) Handle(ctx context.Context, userID, message string, attachments []Attachment) (Result, error) {
	if strings.TrimSpace(message) == "" && len(attachments) == 0 {
		return Result{}, ErrEmptyMessage
	}

	summaries := make([]string, len(attachments))
	refs := make([]api.AttachmentSummary, len(attachments))
	for i, att := range attachments {
		summaries[i] = Summarize(att)
		refs[i] = api.AttachmentSummary{Name: att.Name, MimeType: att.MimeType, SizeBytes: att.Size}
	}

	category := prompt.Classify(message)
	enhanced := prompt.BuildPrompt(message, summaries, category)

	raw := p.responder.Generate(ctx, enhanced)
	response := core.CleanResponse(raw, enhanced, message)
	artifacts := core.ExtractArtifacts(response)

	attachmentsJSON, err := json.Marshal(refs)
	if err != nil {
		return Result{}, fmt.Errorf("marshaling attachment metadata: %w", err)
	}

	exchange := &database.ChatExchange{
		ID:          uuid.New(),
		UserID:      userID,
		Message:     message,
		Response:    response,
		Category:    string(category),
		Attachments: datatypes.JSON(attachmentsJSON),
		CreatedAt:   time.Now().UTC(),
	}
	if err := database.CreateChatExchange(ctx, p.db, exchange); err != nil {
		return Result{}, fmt.Errorf("saving chat exchange: %w", err)
	}

	// The document mirror references the relational row, so it can
	// only be written after the row is committed. Its failure is
	// tolerated: the user already has an audited reply.
	doc := docstore.ChatDocument{
		UserID:       userID,
		Message:      message,
		Response:     response,
		Artifacts:    artifacts,
		Attachments:  refs,
		Timestamp:    exchange.CreatedAt,
		RelationalID: exchange.ID.String(),
	}
	if err := p.documents.InsertExchange(ctx, doc); err != nil {
		slog.Error("failed to archive chat document", "exchange_id", exchange.ID, "error", err)
	}

	if err := p.publisher.PublishExchangeRecorded(ctx, messaging.ExchangeRecordedPayload{
		ExchangeID: exchange.ID,
		UserID:     userID,
		Category:   string(category),
		RecordedAt: exchange.CreatedAt,
	}); err != nil {
		slog.Error("failed to publish exchange recorded event", "exchange_id", exchange.ID, "error", err)
	}

	return Result{
		Response:    response,
		Artifacts:   artifacts,
		Attachments: refs,
	}, nil
}
