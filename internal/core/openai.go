package core

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// OpenAIGenerator talks to an OpenAI-compatible completion endpoint.
// This is the primary backend; self-hosted servers exposing the same
// API can be targeted via the base URL.
type OpenAIGenerator struct {
	llm   *openai.LLM
	model string
}

func NewOpenAIGenerator(baseURL, apiKey, model string) (*OpenAIGenerator, error) {
	opts := []openai.Option{
		openai.WithToken(apiKey),
		openai.WithModel(model),
	}
	if baseURL != "" {
		opts = append(opts, openai.WithBaseURL(baseURL))
	}

	llm, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("could not create OpenAI client: %w", err)
	}

	return &OpenAIGenerator{llm: llm, model: model}, nil
}

func (g *OpenAIGenerator) Name() string { return "openai:" + g.model }

func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, g.llm, prompt,
		llms.WithMaxTokens(opts.MaxNewTokens),
		llms.WithTemperature(opts.Temperature),
		llms.WithTopP(opts.TopP),
		llms.WithRepetitionPenalty(opts.RepetitionPenalty),
	)
}

func OpenAILoader(baseURL, apiKey, model string) GeneratorLoader {
	return GeneratorLoader{
		Name: "openai",
		Load: func(ctx context.Context) (Generator, error) {
			return NewOpenAIGenerator(baseURL, apiKey, model)
		},
	}
}
