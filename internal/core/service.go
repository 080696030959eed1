package core

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

// Fixed degraded answers. Generation failures are never surfaced to the
// user as errors, only as one of these strings.
const (
	UnavailableApology = "I'm sorry, but the AI model is not currently available. Please try again later."
	GenerationApology  = "I apologize, but I encountered an error while processing your request. Please try again."
	TimeoutApology     = "I'm sorry, that request took too long to answer. Please try again."
)

const DefaultGenerateTimeout = 30 * time.Second

// Service owns the process-wide generation backend. The backend is
// loaded lazily on first use; the mutex serializes racing first
// requests so the expensive load happens at most once and waiters
// reuse the in-flight load's result. A failed load is retried by the
// next request.
type Service struct {
	loaders []GeneratorLoader
	opts    GenerateOptions
	timeout time.Duration

	mu        sync.Mutex
	generator Generator
}

func NewService(loaders []GeneratorLoader, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = DefaultGenerateTimeout
	}
	return &Service{
		loaders: loaders,
		opts:    DefaultGenerateOptions(),
		timeout: timeout,
	}
}

func (s *Service) ensureGenerator(ctx context.Context) (Generator, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generator != nil {
		return s.generator, nil
	}

	result := LoadFirst(ctx, s.loaders)
	if !result.Loaded() {
		return nil, result.Err()
	}

	s.generator = result.Generator
	return s.generator, nil
}

// Generate produces a response for the prompt, degrading to a fixed
// apology on load failure, generation error, or timeout.
func (s *Service) Generate(ctx context.Context, prompt string) string {
	gen, err := s.ensureGenerator(ctx)
	if err != nil {
		slog.Error("no generation backend available", "error", err)
		return UnavailableApology
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := gen.Generate(ctx, prompt, s.opts)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			slog.Error("generation timed out", "generator", gen.Name(), "timeout", s.timeout)
			return TimeoutApology
		}
		slog.Error("generation failed", "generator", gen.Name(), "error", err)
		return GenerationApology
	}

	return text
}
