package core

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// LocalGenerator hits a self-hosted inference server over HTTP. It is
// the fallback backend when the hosted endpoint is unavailable.
type LocalGenerator struct {
	client *resty.Client
}

func NewLocalGenerator(baseURL string) *LocalGenerator {
	return &LocalGenerator{client: resty.New().SetBaseURL(baseURL)}
}

func (g *LocalGenerator) Name() string { return "local" }

type localGenerateRequest struct {
	Prompt            string  `json:"prompt"`
	MaxNewTokens      int     `json:"max_new_tokens"`
	Temperature       float64 `json:"temperature"`
	TopP              float64 `json:"top_p"`
	RepetitionPenalty float64 `json:"repetition_penalty"`
}

type localGenerateResponse struct {
	GeneratedText string `json:"generated_text"`
}

func (g *LocalGenerator) Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error) {
	var out localGenerateResponse
	res, err := g.client.R().
		SetContext(ctx).
		SetBody(localGenerateRequest{
			Prompt:            prompt,
			MaxNewTokens:      opts.MaxNewTokens,
			Temperature:       opts.Temperature,
			TopP:              opts.TopP,
			RepetitionPenalty: opts.RepetitionPenalty,
		}).
		SetResult(&out).
		Post("/generate")
	if err != nil {
		return "", fmt.Errorf("local inference request failed: %w", err)
	}
	if res.IsError() {
		return "", fmt.Errorf("local inference server returned %s", res.Status())
	}

	return out.GeneratedText, nil
}

// LocalLoader verifies the inference server is reachable before
// handing the generator to callers.
func LocalLoader(baseURL string) GeneratorLoader {
	return GeneratorLoader{
		Name: "local",
		Load: func(ctx context.Context) (Generator, error) {
			gen := NewLocalGenerator(baseURL)
			res, err := gen.client.R().SetContext(ctx).Get("/health")
			if err != nil {
				return nil, fmt.Errorf("local inference server unreachable: %w", err)
			}
			if res.IsError() {
				return nil, fmt.Errorf("local inference server unhealthy: %s", res.Status())
			}
			return gen, nil
		},
	}
}
