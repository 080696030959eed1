package prompt

import (
	"fmt"
	"strings"
)

const attachmentHeader = "Attached files:"

// BuildPrompt wraps the user message in the conversational frame for the
// given category. Attachment summaries, when present, are appended to the
// message under a fixed header before framing so the model sees file
// content as part of the user turn.
func BuildPrompt(message string, attachmentSummaries []string, category Category) string {
	body := message
	if len(attachmentSummaries) > 0 {
		body = strings.TrimRight(body, "\n")
		body += "\n\n" + attachmentHeader + "\n" + strings.Join(attachmentSummaries, "\n")
	}

	return fmt.Sprintf("User: %s\n%s", body, leadInFor(category))
}
