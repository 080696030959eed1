package api

// Artifact is a structured block of content (currently always code)
// pulled out of a generated response. Artifacts are embedded in the
// archived chat document and returned to the caller; they are never
// stored as standalone rows.
type Artifact struct {
	Type     string `json:"type" bson:"type"`
	Language string `json:"language" bson:"language"`
	Content  string `json:"content" bson:"content"`
	Filename string `json:"filename" bson:"filename"`
}

// AttachmentSummary describes an uploaded file by metadata only. Raw
// attachment bytes are folded into the prompt and then discarded.
type AttachmentSummary struct {
	Name      string `json:"name" bson:"name"`
	MimeType  string `json:"mime_type" bson:"mime_type"`
	SizeBytes int64  `json:"size_bytes" bson:"size_bytes"`
}

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Response    string              `json:"response"`
	Artifacts   []Artifact          `json:"artifacts"`
	Attachments []AttachmentSummary `json:"attachments"`
}

type ChatHistoryQuery struct {
	Limit int `schema:"limit"`
}

type ChatHistoryItem struct {
	ID        string `json:"id"`
	Message   string `json:"message"`
	Response  string `json:"response"`
	Category  string `json:"category"`
	Timestamp string `json:"timestamp"`
}
