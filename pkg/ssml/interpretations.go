package ssml

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// interpretations is the closed set of say-as interpret-as values. Each entry
// gets one generated shortcut; nothing else needs to change when one is added.
var interpretations = []string{
	"characters",
	"spell-out",
	"cardinal",
	"number",
	"ordinal",
	"digits",
	"fraction",
	"unit",
	"date",
	"time",
	"telephone",
	"address",
	"interjection",
	"expletive",
}

// shortcuts maps generated operation names to their interpretation token.
var shortcuts = buildShortcuts(interpretations)

func buildShortcuts(tokens []string) map[string]string {
	out := make(map[string]string, len(tokens))
	for _, token := range tokens {
		out[ShortcutName(token)] = token
	}
	return out
}

// ShortcutName derives the generated operation name for an interpretation
// token: separators are dropped, the first letter of every word is
// upper-cased (the rest is kept as written) and the result is prefixed with
// "sayAs" ("spell-out" -> "sayAsSpellOut", "iPhone-x" -> "sayAsIPhoneX").
func ShortcutName(token string) string {
	words := strings.FieldsFunc(token, func(r rune) bool {
		return r == '-' || r == '_' || r == ' ' || r == ':' || r == '.'
	})
	caser := cases.Title(language.English, cases.NoLower)
	var builder strings.Builder
	builder.WriteString("sayAs")
	for _, word := range words {
		builder.WriteString(caser.String(word))
	}
	return builder.String()
}

// Interpretations returns the catalog in declaration order.
func Interpretations() []string {
	return append([]string(nil), interpretations...)
}

// Shortcuts returns the generated operation names, sorted.
func Shortcuts() []string {
	names := make([]string, 0, len(shortcuts))
	for name := range shortcuts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SayAsInterpretation is SayAs with only interpret-as set.
func (b *Builder) SayAsInterpretation(token, text string) *Builder {
	return b.SayAs(text, SayAsOptions{InterpretAs: token})
}

// Shortcut resolves a generated operation such as "sayAsDigits" and binds it
// to b. The boolean reports whether the name exists.
func (b *Builder) Shortcut(name string) (func(text string) *Builder, bool) {
	token, ok := shortcuts[name]
	if !ok {
		return nil, false
	}
	return func(text string) *Builder {
		return b.SayAsInterpretation(token, text)
	}, true
}
