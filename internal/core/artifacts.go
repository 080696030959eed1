package core

import (
	"regexp"
	"strings"

	"github.com/BadrRibzat/llm-model/pkg/api"
)

var (
	fencedBlockRegex = regexp.MustCompile("(?s)```([a-zA-Z0-9_+#.-]*)[ \t]*\n?(.*?)```")
	inlineCodeRegex  = regexp.MustCompile("`([^`\n]+)`")
)

// Inline spans at or under this trimmed length are treated as prose
// emphasis rather than code worth extracting.
const inlineCodeMinLength = 10

// ExtractArtifacts pulls code out of a response in two passes: fenced
// blocks first, then inline spans over the text that remains once the
// fenced blocks are cut out. The second pass therefore can never
// re-match content inside a fence. Output order is all fenced
// artifacts in text order, then all inline artifacts in text order.
func ExtractArtifacts(text string) []api.Artifact {
	var artifacts []api.Artifact

	for _, m := range fencedBlockRegex.FindAllStringSubmatch(text, -1) {
		language := strings.ToLower(strings.TrimSpace(m[1]))
		if language == "" {
			language = "text"
		}

		filename := "code." + language
		if language == "text" {
			filename = "code.txt"
		}

		artifacts = append(artifacts, api.Artifact{
			Type:     "code",
			Language: language,
			Content:  strings.TrimSpace(m[2]),
			Filename: filename,
		})
	}

	// Replace each fence with a newline rather than cutting it out, so
	// the inline pass cannot match a span spliced together from text on
	// opposite sides of a removed block.
	remainder := fencedBlockRegex.ReplaceAllString(text, "\n")
	for _, m := range inlineCodeRegex.FindAllStringSubmatch(remainder, -1) {
		content := strings.TrimSpace(m[1])
		if len(content) <= inlineCodeMinLength {
			continue
		}

		artifacts = append(artifacts, api.Artifact{
			Type:     "code",
			Language: "text",
			Content:  content,
			Filename: "inline_code.txt",
		})
	}

	return artifacts
}
