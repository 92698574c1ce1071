package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/goliatone/go-speechlet/pkg/composer"
	"github.com/goliatone/go-speechlet/pkg/markdown"
	"github.com/goliatone/go-speechlet/pkg/ordinal"
	"github.com/goliatone/go-speechlet/pkg/script"
	"github.com/goliatone/go-speechlet/pkg/ssml"
)

var version = "dev"

// Global carries the process wiring shared by every command.
type Global struct {
	Logger *slog.Logger
	Stdout io.Writer
	Stderr io.Writer
	// Driver overrides the interactive prompt driver used by compose.
	Driver composer.PromptDriver
}

// CLI definition and global flags.
type CLI struct {
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Render    RenderCmd    `cmd:"" help:"Render a JSON or YAML speech script"`
	Markdown  MarkdownCmd  `cmd:"" help:"Convert a Markdown file into speech markup"`
	Compose   ComposeCmd   `cmd:"" help:"Compose a response interactively"`
	Ordinal   OrdinalCmd   `cmd:"" help:"Print the ordinal word for a number"`
	Shortcuts ShortcutsCmd `cmd:"" help:"List the generated say-as shortcuts"`
}

// RenderCmd renders a speech script.
type RenderCmd struct {
	Script string `arg:"" help:"Script file (.json, .yaml, .yml)" type:"existingfile"`
	Root   string `help:"Wrap output in <speak>: auto uses the script setting" enum:"auto,yes,no" default:"auto"`
	Output string `short:"o" help:"Output file (stdout if empty)"`
}

// Run renders the script file.
func (c *RenderCmd) Run(ctx context.Context, g *Global) error {
	doc, err := script.LoadFile(c.Script)
	if err != nil {
		return err
	}
	switch c.Root {
	case "yes":
		doc.Root = true
	case "no":
		doc.Root = false
	}
	g.Logger.Debug("rendering script", "path", c.Script, "steps", len(doc.Steps), "root", doc.Root)

	out, err := script.Render(ctx, doc, script.WithLogger(g.Logger))
	if err != nil {
		return fmt.Errorf("render %s: %w", c.Script, err)
	}
	return writeOutput(g, c.Output, out)
}

// MarkdownCmd converts Markdown into speech markup.
type MarkdownCmd struct {
	File   string `arg:"" help:"Markdown file" type:"existingfile"`
	Root   bool   `help:"Wrap output in <speak>"`
	Output string `short:"o" help:"Output file (stdout if empty)"`
}

// Run converts the Markdown file.
func (c *MarkdownCmd) Run(g *Global) error {
	body, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("read %s: %w", c.File, err)
	}
	b, err := markdown.Convert(body)
	if err != nil {
		return fmt.Errorf("convert %s: %w", c.File, err)
	}
	g.Logger.Debug("converted markdown", "path", c.File, "fragments", b.Len())
	return writeOutput(g, c.Output, serialize(b, c.Root))
}

// ComposeCmd runs the interactive composer.
type ComposeCmd struct {
	Root    bool   `help:"Wrap output in <speak>" default:"true" negatable:""`
	Preview bool   `help:"Print the document after every action"`
	Output  string `short:"o" help:"Output file (stdout if empty)"`
}

// Run starts an interactive session.
func (c *ComposeCmd) Run(ctx context.Context, g *Global) error {
	opts := []composer.Option{
		composer.WithLogger(g.Logger),
		composer.WithPreview(c.Preview),
	}
	if g.Driver != nil {
		opts = append(opts, composer.WithPromptDriver(g.Driver))
	}
	b, err := composer.New(opts...).Run(ctx)
	if err != nil {
		return err
	}
	return writeOutput(g, c.Output, serialize(b, c.Root))
}

// OrdinalCmd prints ordinal words.
type OrdinalCmd struct {
	Number string `arg:"" help:"Number to translate"`
}

// Run prints the ordinal word for the number.
func (c *OrdinalCmd) Run(g *Global) error {
	var value any = c.Number
	if parsed, err := strconv.ParseFloat(strings.TrimSpace(c.Number), 64); err == nil {
		value = parsed
	}
	word, err := ordinal.Word(value)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(g.Stdout, word)
	return err
}

// ShortcutsCmd lists generated say-as operations.
type ShortcutsCmd struct{}

// Run prints one "name<TAB>interpret-as" line per shortcut.
func (c *ShortcutsCmd) Run(g *Global) error {
	for _, token := range ssml.Interpretations() {
		if _, err := fmt.Fprintf(g.Stdout, "%s\t%s\n", ssml.ShortcutName(token), token); err != nil {
			return err
		}
	}
	return nil
}

func serialize(b *ssml.Builder, root bool) string {
	if root {
		return b.OutputWithRootNode()
	}
	return b.Output()
}

func writeOutput(g *Global, path, content string) error {
	if path == "" {
		_, err := fmt.Fprintln(g.Stdout, content)
		return err
	}
	if err := os.WriteFile(path, []byte(content+"\n"), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	g.Logger.Info("output written", "path", path)
	return nil
}

func run(ctx context.Context, args []string, g *Global) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("speechlet"),
		kong.Description("Compose speech markup for voice responses."),
		kong.Vars{"version": version},
		kong.Writers(g.Stdout, g.Stderr),
		kong.UsageOnError(),
	)
	if err != nil {
		return err
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	g.Logger = slog.New(slog.NewTextHandler(g.Stderr, &slog.HandlerOptions{Level: level}))

	kctx.BindTo(ctx, (*context.Context)(nil))
	return kctx.Run(g)
}

// reportError logs err through the logger run configured, or a plain text
// handler on g.Stderr when parsing failed before one was built.
func reportError(g *Global, err error) {
	logger := g.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(g.Stderr, nil))
	}
	logger.Error("speechlet failed", "error", err)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	g := &Global{Stdout: os.Stdout, Stderr: os.Stderr}
	if err := run(ctx, os.Args[1:], g); err != nil {
		reportError(g, err)
		stop()
		os.Exit(1)
	}
}
