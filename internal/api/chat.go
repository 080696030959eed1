package api

import (
	"errors"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"github.com/BadrRibzat/llm-model/internal/chat"
	"github.com/BadrRibzat/llm-model/internal/database"
	"github.com/BadrRibzat/llm-model/pkg/api"
)

const (
	// Multipart file parts must be keyed with this prefix; other parts
	// are ignored.
	filePartPrefix = "file_"

	maxUploadBytes = 32 << 20
)

type ChatService struct {
	db       *gorm.DB
	pipeline *chat.Pipeline
}

func NewChatService(db *gorm.DB, pipeline *chat.Pipeline) *ChatService {
	return &ChatService{db: db, pipeline: pipeline}
}

func (s *ChatService) AddRoutes(r chi.Router) {
	r.Post("/chat", RestHandler(s.PostChat))
	r.Get("/chat/history", RestHandler(s.GetHistory))
}

func (s *ChatService) PostChat(r *http.Request) (any, error) {
	userID, err := requestUser(r)
	if err != nil {
		return nil, err
	}

	message, attachments, err := parseChatRequest(r)
	if err != nil {
		return nil, err
	}

	result, err := s.pipeline.Handle(r.Context(), userID, message, attachments)
	if errors.Is(err, chat.ErrEmptyMessage) {
		return nil, CodedError(http.StatusBadRequest, err)
	}
	if err != nil {
		return nil, CodedErrorf(http.StatusInternalServerError, "unable to record chat exchange: %v", err)
	}

	return api.ChatResponse{
		Response:    result.Response,
		Artifacts:   result.Artifacts,
		Attachments: result.Attachments,
	}, nil
}

func (s *ChatService) GetHistory(r *http.Request) (any, error) {
	userID, err := requestUser(r)
	if err != nil {
		return nil, err
	}

	params, err := ParseRequestQueryParams[api.ChatHistoryQuery](r)
	if err != nil {
		return nil, err
	}
	limit := params.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	exchanges, err := database.GetUserExchanges(r.Context(), s.db, userID, limit)
	if err != nil {
		return nil, err
	}

	items := make([]api.ChatHistoryItem, 0, len(exchanges))
	for _, e := range exchanges {
		items = append(items, api.ChatHistoryItem{
			ID:        e.ID.String(),
			Message:   e.Message,
			Response:  e.Response,
			Category:  e.Category,
			Timestamp: e.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	return items, nil
}

// requestUser reads the identity installed by the fronting auth layer.
func requestUser(r *http.Request) (string, error) {
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		return "", CodedErrorf(http.StatusUnauthorized, "missing user identity")
	}
	return userID, nil
}

func parseChatRequest(r *http.Request) (string, []chat.Attachment, error) {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		req, err := ParseRequest[api.ChatRequest](r)
		if err != nil {
			return "", nil, err
		}
		return req.Message, nil, nil
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return "", nil, CodedErrorf(http.StatusBadRequest, "unable to parse multipart form")
	}

	message := r.FormValue("message")

	// Map iteration order is random; sort the part keys so attachments
	// enter the prompt in a stable order.
	keys := make([]string, 0, len(r.MultipartForm.File))
	for key := range r.MultipartForm.File {
		if strings.HasPrefix(key, filePartPrefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	var attachments []chat.Attachment
	for _, key := range keys {
		for _, header := range r.MultipartForm.File[key] {
			header := header
			attachments = append(attachments, chat.Attachment{
				Name:     header.Filename,
				MimeType: header.Header.Get("Content-Type"),
				Size:     header.Size,
				Open: func() (io.ReadCloser, error) {
					return header.Open()
				},
			})
		}
	}

	return message, attachments, nil
}
