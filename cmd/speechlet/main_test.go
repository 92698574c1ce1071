package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-speechlet/pkg/composer"
	"github.com/goliatone/go-speechlet/pkg/ordinal"
)

func newGlobal() (*Global, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &Global{Stdout: &stdout, Stderr: &stderr}, &stdout, &stderr
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRenderCommand(t *testing.T) {
	path := writeFile(t, "hello.yaml", "root: true\nsteps:\n  - sentence: hi\n  - op: sayAsDigits\n    text: \"42\"\n")

	g, stdout, _ := newGlobal()
	require.NoError(t, run(context.Background(), []string{"render", path}, g))
	assert.Equal(t, "<speak><s>hi</s><say-as interpret-as=\"digits\">42</say-as></speak>\n", stdout.String())

	g, stdout, _ = newGlobal()
	require.NoError(t, run(context.Background(), []string{"render", "--root=no", path}, g))
	assert.Equal(t, "<s>hi</s><say-as interpret-as=\"digits\">42</say-as>\n", stdout.String())
}

func TestRenderCommandWritesFileAndLogs(t *testing.T) {
	path := writeFile(t, "hello.json", `{"steps":[{"whisper":"psst"}]}`)
	out := filepath.Join(t.TempDir(), "out.ssml")

	g, stdout, stderr := newGlobal()
	require.NoError(t, run(context.Background(), []string{"-v", "render", "--root=yes", "-o", out, path}, g))
	assert.Empty(t, stdout.String())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "<speak><amazon:effect name=\"whispered\">psst</amazon:effect></speak>\n", string(data))
	assert.Contains(t, stderr.String(), "script step applied")
	assert.Contains(t, stderr.String(), "output written")
}

func TestRenderCommandUnknownOperation(t *testing.T) {
	path := writeFile(t, "bad.yaml", "steps:\n  - op: yodel\n")
	g, _, _ := newGlobal()
	err := run(context.Background(), []string{"render", path}, g)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown operation")
}

func TestReportErrorUsesConfiguredLogger(t *testing.T) {
	path := writeFile(t, "bad.yaml", "steps:\n  - op: yodel\n")
	g, _, stderr := newGlobal()
	err := run(context.Background(), []string{"-v", "render", path}, g)
	require.Error(t, err)
	require.NotNil(t, g.Logger)

	reportError(g, err)
	out := stderr.String()
	assert.Contains(t, out, "rendering script")
	assert.Contains(t, out, "level=ERROR msg=\"speechlet failed\"")
	assert.Contains(t, out, "unknown operation")
}

func TestReportErrorBeforeLoggerConfigured(t *testing.T) {
	g, _, stderr := newGlobal()
	err := run(context.Background(), []string{"no-such-command"}, g)
	require.Error(t, err)
	assert.Nil(t, g.Logger)

	reportError(g, err)
	assert.Contains(t, stderr.String(), "speechlet failed")
}

func TestMarkdownCommand(t *testing.T) {
	path := writeFile(t, "doc.md", "# Title\n\nSome text.\n")
	g, stdout, _ := newGlobal()
	require.NoError(t, run(context.Background(), []string{"markdown", "--root", path}, g))
	assert.Equal(t, "<speak><s>Title</s><break time=\"0.5s\" /><p>Some text.</p></speak>\n", stdout.String())
}

func TestOrdinalCommand(t *testing.T) {
	cases := map[string]string{
		"3":  "third",
		"0":  ordinal.NegativeUnsupported,
		"25": ordinal.AboveMaxUnsupported,
	}
	for in, want := range cases {
		g, stdout, _ := newGlobal()
		require.NoError(t, run(context.Background(), []string{"ordinal", "--", in}, g))
		assert.Equal(t, want+"\n", stdout.String())
	}

	g, _, _ := newGlobal()
	err := run(context.Background(), []string{"ordinal", "three"}, g)
	require.ErrorIs(t, err, ordinal.ErrInvalidArgument)
}

func TestShortcutsCommand(t *testing.T) {
	g, stdout, _ := newGlobal()
	require.NoError(t, run(context.Background(), []string{"shortcuts"}, g))
	assert.Contains(t, stdout.String(), "sayAsSpellOut\tspell-out\n")
	assert.Contains(t, stdout.String(), "sayAsDigits\tdigits\n")
}

type scriptedDriver struct {
	selects []int
	inputs  []string
}

func (d *scriptedDriver) Input(context.Context, composer.InputConfig) (string, error) {
	val := d.inputs[0]
	d.inputs = d.inputs[1:]
	return val, nil
}

func (d *scriptedDriver) Select(context.Context, composer.SelectConfig) (int, error) {
	val := d.selects[0]
	d.selects = d.selects[1:]
	return val, nil
}

func (d *scriptedDriver) Info(context.Context, string) error { return nil }

func TestComposeCommand(t *testing.T) {
	// Sentence, then Done.
	driver := &scriptedDriver{selects: []int{1, 8}, inputs: []string{"hello there"}}
	g, stdout, _ := newGlobal()
	g.Driver = driver

	require.NoError(t, run(context.Background(), []string{"compose"}, g))
	assert.Equal(t, "<speak><s>hello there</s></speak>", strings.TrimSpace(stdout.String()))

	driver = &scriptedDriver{selects: []int{0, 8}, inputs: []string{"raw"}}
	g, stdout, _ = newGlobal()
	g.Driver = driver
	require.NoError(t, run(context.Background(), []string{"compose", "--no-root"}, g))
	assert.Equal(t, "raw\n", stdout.String())
}
