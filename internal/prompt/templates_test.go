package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPromptFramesMessage(t *testing.T) {
	got := BuildPrompt("fix my loop", nil, CategoryCode)

	assert.True(t, strings.HasPrefix(got, "User: fix my loop\n"))
	assert.True(t, strings.HasSuffix(got, "I can help you with coding. Here's what you need:"))
}

func TestBuildPromptGeneralLeadIn(t *testing.T) {
	got := BuildPrompt("hello there", nil, CategoryGeneral)

	assert.Equal(t, "User: hello there\nAssistant:", got)
}

func TestBuildPromptAppendsAttachments(t *testing.T) {
	summaries := []string{"notes about the meeting", "File uploaded: logo.png (image/png, 2048 bytes)"}

	got := BuildPrompt("what do you make of these", summaries, CategoryQuestion)

	assert.Contains(t, got, "Attached files:\nnotes about the meeting\nFile uploaded: logo.png (image/png, 2048 bytes)")
	// Attachment block belongs to the user turn, before the lead-in.
	assert.Less(t, strings.Index(got, "Attached files:"), strings.Index(got, "Here's what I know:"))
}

func TestBuildPromptNoAttachmentHeaderWithoutAttachments(t *testing.T) {
	got := BuildPrompt("plain message", nil, CategoryGeneral)

	assert.NotContains(t, got, "Attached files:")
}
