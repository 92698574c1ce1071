// Package composer builds a speech document interactively. A menu loop asks
// for one builder operation at a time through a PromptDriver (survey-backed
// by default) until the user picks Done.
package composer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/goliatone/go-speechlet/pkg/ssml"
)

// Menu actions, in the order they are offered.
const (
	ActionSay       = "Say text"
	ActionSentence  = "Sentence"
	ActionParagraph = "Paragraph"
	ActionEmphasis  = "Emphasis"
	ActionWhisper   = "Whisper"
	ActionPause     = "Pause"
	ActionSayAs     = "Say as..."
	ActionList      = "Read a list"
	ActionDone      = "Done"
)

var actions = []string{
	ActionSay,
	ActionSentence,
	ActionParagraph,
	ActionEmphasis,
	ActionWhisper,
	ActionPause,
	ActionSayAs,
	ActionList,
	ActionDone,
}

var (
	emphasisLevels = []string{"none", "strong", "moderate", "reduced"}
	listStyles     = []string{"conjunctive", "numbered", "ordinal"}
)

// Composer drives an interactive composition session.
type Composer struct {
	driver  PromptDriver
	logger  *slog.Logger
	preview bool
}

// New constructs a Composer with the survey driver unless overridden.
func New(options ...Option) *Composer {
	c := &Composer{
		driver: newSurveyDriver(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

// Run loops over the action menu until Done and returns the composed
// document. Driver errors (including ErrAborted) end the session.
func (c *Composer) Run(ctx context.Context) (*ssml.Builder, error) {
	b := ssml.New()
	for {
		idx, err := c.driver.Select(ctx, SelectConfig{
			Message:  "Add to the response:",
			Options:  actions,
			PageSize: len(actions),
		})
		if err != nil {
			return nil, err
		}
		if idx < 0 || idx >= len(actions) {
			return nil, fmt.Errorf("%w: action %d", ErrInvalidChoice, idx)
		}

		action := actions[idx]
		if action == ActionDone {
			return b, nil
		}
		if err := c.apply(ctx, b, action); err != nil {
			return nil, err
		}
		c.logger.Debug("composer action applied", "action", action, "fragments", b.Len())

		if c.preview {
			if err := c.driver.Info(ctx, b.OutputWithRootNode()); err != nil {
				return nil, err
			}
		}
	}
}

func (c *Composer) apply(ctx context.Context, b *ssml.Builder, action string) error {
	switch action {
	case ActionSay, ActionSentence, ActionParagraph, ActionWhisper:
		text, err := c.text(ctx, action)
		if err != nil {
			return err
		}
		switch action {
		case ActionSay:
			b.Say(text)
		case ActionSentence:
			b.Sentence(text)
		case ActionParagraph:
			b.Paragraph(text)
		default:
			b.Whisper(text)
		}
	case ActionEmphasis:
		text, err := c.text(ctx, action)
		if err != nil {
			return err
		}
		level, err := c.choose(ctx, "Emphasis level:", emphasisLevels)
		if err != nil {
			return err
		}
		if level == "none" {
			level = ""
		}
		b.Emphasis(text, ssml.EmphasisOptions{Level: level})
	case ActionPause:
		pause, err := c.driver.Input(ctx, InputConfig{Message: "Pause length:", Default: ssml.DefaultPause})
		if err != nil {
			return err
		}
		b.Pause(strings.TrimSpace(pause))
	case ActionSayAs:
		token, err := c.choose(ctx, "Interpret as:", ssml.Interpretations())
		if err != nil {
			return err
		}
		text, err := c.text(ctx, action)
		if err != nil {
			return err
		}
		b.SayAsInterpretation(token, text)
	case ActionList:
		return c.readList(ctx, b)
	}
	return nil
}

func (c *Composer) readList(ctx context.Context, b *ssml.Builder) error {
	raw, err := c.driver.Input(ctx, InputConfig{
		Message:   "Items (comma separated):",
		Validator: requireText,
	})
	if err != nil {
		return err
	}
	items := splitItems(raw)

	style, err := c.choose(ctx, "Read the list as:", listStyles)
	if err != nil {
		return err
	}
	switch style {
	case "numbered":
		_, err = b.ReadAsNumberedList(items, ssml.ListOptions{})
	case "ordinal":
		_, err = b.ReadAsOrdinalList(items, ssml.ListOptions{})
	default:
		_, err = b.ReadAsList(items, ssml.ConjunctionOptions{})
	}
	return err
}

func (c *Composer) text(ctx context.Context, action string) (string, error) {
	return c.driver.Input(ctx, InputConfig{
		Message:   action + " text:",
		Validator: requireText,
	})
}

func (c *Composer) choose(ctx context.Context, message string, options []string) (string, error) {
	idx, err := c.driver.Select(ctx, SelectConfig{Message: message, Options: options})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(options) {
		return "", fmt.Errorf("%w: %q option %d", ErrInvalidChoice, message, idx)
	}
	return options[idx], nil
}

func requireText(value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New("a value is required")
	}
	return nil
}

func splitItems(raw string) []string {
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
