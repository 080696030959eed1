package core

import (
	"context"
)

// GenerateOptions are the sampling settings passed to the backing
// model. They are fixed per deployment, not user tunable.
type GenerateOptions struct {
	MaxNewTokens      int
	Temperature       float64
	TopP              float64
	RepetitionPenalty float64
}

func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{
		MaxNewTokens:      50,
		Temperature:       0.8,
		TopP:              0.9,
		RepetitionPenalty: 1.2,
	}
}

// Generator is a loaded text-generation backend. Implementations must
// be safe for concurrent Generate calls.
type Generator interface {
	Name() string

	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)
}

// GeneratorLoader is one named entry in the fallback chain. Load is
// expected to verify the backend is actually reachable, not just
// construct a client.
type GeneratorLoader struct {
	Name string
	Load func(ctx context.Context) (Generator, error)
}

// StaticGenerator returns a fixed response for every prompt. Used in
// local mode when no inference backend is configured.
type StaticGenerator struct {
	Response string
}

func (g StaticGenerator) Name() string { return "static" }

func (g StaticGenerator) Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error) {
	return g.Response, nil
}

func StaticLoader(response string) GeneratorLoader {
	return GeneratorLoader{
		Name: "static",
		Load: func(ctx context.Context) (Generator, error) {
			return StaticGenerator{Response: response}, nil
		},
	}
}
