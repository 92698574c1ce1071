// Package script renders declarative speech scripts (JSON or YAML) through
// the ssml builder. Step text may reference script variables with pongo2
// syntax ({{ name }}); interpolation happens before the builder escapes it.
package script

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-speechlet/pkg/ssml"
)

// Option configures Apply and Render.
type Option func(*config)

type config struct {
	logger *slog.Logger
}

// WithLogger receives a debug record per applied step.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

func newConfig(options []Option) *config {
	cfg := &config{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}
	return cfg
}

// Render applies s to a new builder and serializes it, wrapped in <speak>
// when s.Root is set.
func Render(ctx context.Context, s Script, options ...Option) (string, error) {
	b := ssml.New()
	if err := Apply(ctx, b, s, options...); err != nil {
		return "", err
	}
	if s.Root {
		return b.OutputWithRootNode(), nil
	}
	return b.Output(), nil
}

// Apply runs every step of s against b in order. It stops at the first
// failing step; fragments appended by earlier steps stay in b.
func Apply(ctx context.Context, b *ssml.Builder, s Script, options ...Option) error {
	cfg := newConfig(options)
	vars := pongo2.Context(s.Vars)

	for idx, step := range s.Steps {
		if err := ctx.Err(); err != nil {
			return err
		}

		op, text := resolveOperation(step)
		if op == "" {
			return fmt.Errorf("step %d: %w: no operation named", idx, ErrUnknownOperation)
		}

		text, err := interpolate(text, vars)
		if err != nil {
			return fmt.Errorf("step %d (%s): %w", idx, op, err)
		}
		if step.List, err = interpolateList(step.List, vars); err != nil {
			return fmt.Errorf("step %d (%s): %w", idx, op, err)
		}

		if err := dispatch(b, op, text, step, s.Defaults); err != nil {
			return fmt.Errorf("step %d (%s): %w", idx, op, err)
		}
		cfg.logger.Debug("script step applied", "index", idx, "op", op, "fragments", b.Len())
	}
	return nil
}

func resolveOperation(step Step) (string, string) {
	if op := strings.TrimSpace(step.Op); op != "" {
		return op, step.Text
	}
	shorthands := []struct {
		op    string
		value string
	}{
		{"say", step.Say},
		{"raw", step.Raw},
		{"sentence", step.Sentence},
		{"paragraph", step.Paragraph},
		{"whisper", step.Whisper},
		{"audio", step.Audio},
	}
	for _, candidate := range shorthands {
		if candidate.value != "" {
			return candidate.op, candidate.value
		}
	}
	if len(step.List) > 0 {
		return "list", ""
	}
	if step.Pause != "" {
		return "pause", ""
	}
	return "", ""
}

func interpolate(text string, vars pongo2.Context) (string, error) {
	if len(vars) == 0 || !(strings.Contains(text, "{{") || strings.Contains(text, "{%")) {
		return text, nil
	}
	tpl, err := pongo2.FromString("{% autoescape off %}" + text + "{% endautoescape %}")
	if err != nil {
		return "", fmt.Errorf("%w: parse template %q: %v", ErrInvalidStep, text, err)
	}
	out, err := tpl.Execute(vars)
	if err != nil {
		return "", fmt.Errorf("%w: execute template %q: %v", ErrInvalidStep, text, err)
	}
	return out, nil
}

func interpolateList(items []any, vars pongo2.Context) ([]any, error) {
	if len(items) == 0 || len(vars) == 0 {
		return items, nil
	}
	out := make([]any, len(items))
	for idx, item := range items {
		text, ok := item.(string)
		if !ok {
			out[idx] = item
			continue
		}
		rendered, err := interpolate(text, vars)
		if err != nil {
			return nil, err
		}
		out[idx] = rendered
	}
	return out, nil
}
