package core

import (
	"strings"
)

const (
	// Heuristic trimming constants. Tuned by observation, not derived;
	// changing them changes user-visible output.
	maxResponseSentences = 3
	echoRatioThreshold   = 0.8

	echoFiller         = "I understand your request. Let me help you with that."
	emptyResponseReply = "I couldn't generate a meaningful response."
)

// CleanResponse turns raw generator output into the user-facing reply.
// The steps run in a fixed order; echo suppression inspects the already
// truncated candidate, so reordering them changes behavior.
func CleanResponse(raw, prompt, originalMessage string) string {
	text := strings.TrimSpace(raw)

	// Models frequently echo the prompt back before continuing.
	if prompt != "" && strings.HasPrefix(text, prompt) {
		text = strings.TrimSpace(text[len(prompt):])
	}

	text = truncateSentences(text, maxResponseSentences)

	if wordOverlapRatio(originalMessage, text) > echoRatioThreshold {
		text = echoFiller
	}

	text = strings.ReplaceAll(text, "User:", "")
	text = strings.ReplaceAll(text, "Assistant:", "")
	text = strings.TrimSpace(text)

	if text != "" && !strings.HasSuffix(text, ".") && !strings.HasSuffix(text, "!") && !strings.HasSuffix(text, "?") {
		text += "."
	}

	if text == "" {
		return emptyResponseReply
	}
	return text
}

func truncateSentences(text string, max int) string {
	parts := strings.Split(text, ".")

	var sentences []string
	for _, part := range parts {
		if s := strings.TrimSpace(part); s != "" {
			sentences = append(sentences, s)
		}
	}

	if len(sentences) <= max {
		return text
	}
	return strings.Join(sentences[:max], ". ") + "."
}

// wordOverlapRatio is the share of the original message's distinct
// words that also appear in the candidate. A high ratio means the
// candidate is mostly parroting the input.
func wordOverlapRatio(original, candidate string) float64 {
	origWords := distinctWords(original)
	if len(origWords) == 0 {
		return 0
	}

	candWords := distinctWords(candidate)
	shared := 0
	for w := range origWords {
		if candWords[w] {
			shared++
		}
	}
	return float64(shared) / float64(len(origWords))
}

func distinctWords(text string) map[string]bool {
	words := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(text)) {
		w = strings.Trim(w, ".,!?;:'\"")
		if w != "" {
			words[w] = true
		}
	}
	return words
}
