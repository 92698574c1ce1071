// Package markdown turns a Markdown body into a spoken document. Block
// structure maps onto builder operations; inline formatting is flattened to
// plain text because escaped builder text cannot nest markup.
package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/goliatone/go-speechlet/pkg/ssml"
)

// DefaultHeadingPause follows every heading.
const DefaultHeadingPause = "0.5s"

// Option configures Convert.
type Option func(*config)

type config struct {
	headingPause string
	conjunction  ssml.ConjunctionOptions
	list         ssml.ListOptions
}

// WithHeadingPause overrides the pause spoken after headings.
func WithHeadingPause(pause string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(pause); trimmed != "" {
			cfg.headingPause = trimmed
		}
	}
}

// WithConjunction configures how bullet lists are read.
func WithConjunction(opts ssml.ConjunctionOptions) Option {
	return func(cfg *config) {
		cfg.conjunction = opts
	}
}

// WithListOptions configures how ordered lists are read.
func WithListOptions(opts ssml.ListOptions) Option {
	return func(cfg *config) {
		cfg.list = opts
	}
}

// Convert parses body and appends its blocks to a new builder:
// headings become sentences followed by a pause, paragraphs become <p>,
// ordered lists are read as numbered lists counting from the list's start
// number (unless WithListOptions sets one), bullet lists as conjunctive
// lists, and thematic breaks become extra-strong breaks. Code and raw HTML
// blocks are skipped.
func Convert(body []byte, options ...Option) (*ssml.Builder, error) {
	cfg := &config{headingPause: DefaultHeadingPause}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	root := goldmark.New().Parser().Parse(text.NewReader(body))
	b := ssml.New()
	if err := convertBlocks(b, root, body, cfg); err != nil {
		return nil, err
	}
	return b, nil
}

func convertBlocks(b *ssml.Builder, parent gmast.Node, source []byte, cfg *config) error {
	for node := parent.FirstChild(); node != nil; node = node.NextSibling() {
		switch block := node.(type) {
		case *gmast.Heading:
			content, err := plainText(block, source)
			if err != nil {
				return err
			}
			if content != "" {
				b.Sentence(content).Pause(cfg.headingPause)
			}
		case *gmast.Paragraph, *gmast.TextBlock:
			content, err := plainText(block, source)
			if err != nil {
				return err
			}
			if content != "" {
				b.Paragraph(content)
			}
		case *gmast.List:
			items, err := listItems(block, source)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				continue
			}
			if block.IsOrdered() {
				opts := cfg.list
				if opts.Start == 0 {
					opts.Start = block.Start
				}
				_, err = b.ReadAsNumberedList(items, opts)
			} else {
				_, err = b.ReadAsList(items, cfg.conjunction)
			}
			if err != nil {
				return err
			}
		case *gmast.ThematicBreak:
			b.Break(ssml.BreakOptions{Strength: "x-strong"})
		case *gmast.Blockquote:
			if err := convertBlocks(b, block, source, cfg); err != nil {
				return err
			}
		}
	}
	return nil
}

func listItems(list *gmast.List, source []byte) ([]string, error) {
	var items []string
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		content, err := plainText(item, source)
		if err != nil {
			return nil, err
		}
		if content != "" {
			items = append(items, content)
		}
	}
	return items, nil
}

// plainText flattens the inline content below node. Nested lists are left
// out so list items read as single phrases.
func plainText(node gmast.Node, source []byte) (string, error) {
	var builder strings.Builder
	err := gmast.Walk(node, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			if n.Type() == gmast.TypeBlock {
				builder.WriteString(" ")
			}
			return gmast.WalkContinue, nil
		}
		if n != node {
			if _, nested := n.(*gmast.List); nested {
				return gmast.WalkSkipChildren, nil
			}
		}

		switch inline := n.(type) {
		case *gmast.Text:
			builder.Write(inline.Segment.Value(source))
			if inline.SoftLineBreak() || inline.HardLineBreak() {
				builder.WriteString(" ")
			}
		case *gmast.String:
			builder.Write(inline.Value)
		case *gmast.AutoLink:
			builder.Write(inline.Label(source))
			return gmast.WalkSkipChildren, nil
		}
		return gmast.WalkContinue, nil
	})
	if err != nil {
		return "", err
	}
	return strings.Join(strings.Fields(builder.String()), " "), nil
}
