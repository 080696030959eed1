package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractArtifactsFencedBlock(t *testing.T) {
	artifacts := ExtractArtifacts("Use ```python\nprint(1)\n```")

	require.Len(t, artifacts, 1)
	assert.Equal(t, "code", artifacts[0].Type)
	assert.Equal(t, "python", artifacts[0].Language)
	assert.Equal(t, "print(1)", artifacts[0].Content)
	assert.Equal(t, "code.python", artifacts[0].Filename)
}

func TestExtractArtifactsFencedBlockNoLanguage(t *testing.T) {
	artifacts := ExtractArtifacts("```\nsome plain content\n```")

	require.Len(t, artifacts, 1)
	assert.Equal(t, "text", artifacts[0].Language)
	assert.Equal(t, "code.txt", artifacts[0].Filename)
}

func TestExtractArtifactsLanguageCaseFolded(t *testing.T) {
	artifacts := ExtractArtifacts("```Python\nx = 1\n```")

	require.Len(t, artifacts, 1)
	assert.Equal(t, "python", artifacts[0].Language)
}

func TestExtractArtifactsInlineFilter(t *testing.T) {
	artifacts := ExtractArtifacts("run `ls` or `find . -name '*.py' -print`")

	// `ls` is too short to be worth extracting; only the second span
	// qualifies.
	require.Len(t, artifacts, 1)
	assert.Equal(t, "text", artifacts[0].Language)
	assert.Equal(t, "find . -name '*.py' -print", artifacts[0].Content)
	assert.Equal(t, "inline_code.txt", artifacts[0].Filename)
}

func TestExtractArtifactsFencedBeforeInline(t *testing.T) {
	text := "see `the inline snippet here` then ```go\nfmt.Println(\"hi\")\n``` done"

	artifacts := ExtractArtifacts(text)

	require.Len(t, artifacts, 2)
	assert.Equal(t, "go", artifacts[0].Language)
	assert.Equal(t, "inline_code.txt", artifacts[1].Filename)
}

func TestExtractArtifactsInlineInsideFenceNotDoubleCounted(t *testing.T) {
	text := "```markdown\nuse `a fairly long inline span` for emphasis\n```"

	artifacts := ExtractArtifacts(text)

	require.Len(t, artifacts, 1)
	assert.Equal(t, "markdown", artifacts[0].Language)
}

func TestExtractArtifactsNoSpanAcrossRemovedFence(t *testing.T) {
	// A stray backtick before a fence and another after it must not fuse
	// into an inline span once the fence is removed.
	text := "odd tick ` right before ```go\nfmt.Println(\"hi\")\n``` and a trailing tick ` after"

	artifacts := ExtractArtifacts(text)

	require.Len(t, artifacts, 1)
	assert.Equal(t, "go", artifacts[0].Language)
	assert.Equal(t, "fmt.Println(\"hi\")", artifacts[0].Content)
}

func TestExtractArtifactsIdempotent(t *testing.T) {
	text := "intro ```python\na = 1\n``` and `some longer inline code` outro"

	first := ExtractArtifacts(text)
	second := ExtractArtifacts(text)

	assert.Equal(t, first, second)
}

func TestExtractArtifactsNeverFails(t *testing.T) {
	inputs := []string{
		"",
		"```python\nunterminated fence",
		"``````",
		"` lone backtick",
		"`` double `` backticks ``",
		"text with no code at all",
	}

	for _, input := range inputs {
		assert.NotPanics(t, func() { ExtractArtifacts(input) })
	}
}
