package core

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// LoadFailure records why one loader in the chain could not produce a
// generator.
type LoadFailure struct {
	Loader string
	Err    error
}

// LoadResult is the outcome of walking the loader chain: either a
// loaded generator, or the accumulated failure reasons of every loader
// that was tried.
type LoadResult struct {
	Generator Generator
	Failures  []LoadFailure
}

func (r LoadResult) Loaded() bool { return r.Generator != nil }

func (r LoadResult) Err() error {
	if r.Loaded() {
		return nil
	}
	if len(r.Failures) == 0 {
		return fmt.Errorf("no generator loaders configured")
	}
	reasons := make([]string, len(r.Failures))
	for i, f := range r.Failures {
		reasons[i] = fmt.Sprintf("%s: %v", f.Loader, f.Err)
	}
	return fmt.Errorf("all generator loaders failed: %s", strings.Join(reasons, "; "))
}

// LoadFirst tries each loader in order and returns the first generator
// that loads. Loaders later in the chain are fallbacks for the ones
// before them.
func LoadFirst(ctx context.Context, loaders []GeneratorLoader) LoadResult {
	var failures []LoadFailure
	for _, loader := range loaders {
		gen, err := loader.Load(ctx)
		if err != nil {
			slog.Warn("generator loader failed, trying next", "loader", loader.Name, "error", err)
			failures = append(failures, LoadFailure{Loader: loader.Name, Err: err})
			continue
		}
		slog.Info("generator loaded", "loader", loader.Name, "generator", gen.Name())
		return LoadResult{Generator: gen}
	}
	return LoadResult{Failures: failures}
}
