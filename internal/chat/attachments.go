package chat

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Attachment carries one uploaded file through the pipeline. Open is
// called at most once, during summarization; the bytes are folded into
// the prompt and never persisted.
type Attachment struct {
	Name     string
	MimeType string
	Size     int64
	Open     func() (io.ReadCloser, error)
}

// Attachment content larger than this is cut off before it reaches the
// prompt.
const maxSummaryBytes = 64 * 1024

// Summarize produces the prompt-facing description of an attachment.
// Textual files contribute their decoded content; everything else is
// described by metadata. A read failure becomes an inline error note
// rather than aborting the whole request.
func Summarize(att Attachment) string {
	if !isTextual(att.MimeType) {
		return fmt.Sprintf("File uploaded: %s (%s, %d bytes)", att.Name, att.MimeType, att.Size)
	}

	rc, err := att.Open()
	if err != nil {
		return fmt.Sprintf("Error reading %s: %v", att.Name, err)
	}
	defer rc.Close()

	content, err := io.ReadAll(io.LimitReader(rc, maxSummaryBytes))
	if err != nil {
		return fmt.Sprintf("Error reading %s: %v", att.Name, err)
	}
	if !utf8.Valid(content) {
		return fmt.Sprintf("Error reading %s: file is not valid UTF-8 text", att.Name)
	}

	return strings.TrimSpace(string(content))
}

func isTextual(mimeType string) bool {
	mimeType, _, _ = strings.Cut(mimeType, ";")
	mimeType = strings.TrimSpace(strings.ToLower(mimeType))

	if strings.HasPrefix(mimeType, "text/") {
		return true
	}
	switch mimeType {
	case "application/json", "application/x-yaml", "application/xml":
		return true
	}
	return false
}
