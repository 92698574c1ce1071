package ssml

import (
	"strings"

	"github.com/goliatone/go-speechlet/internal/markup"
)

// Builder accumulates markup fragments in spoken order. Every mutating method
// appends to the document and returns the same Builder so calls can be
// chained. The zero value is an empty document ready to use.
type Builder struct {
	fragments []string
}

// New creates a document. Each non-empty initial text is appended verbatim
// as its own fragment.
func New(initial ...string) *Builder {
	b := &Builder{}
	for _, text := range initial {
		if text != "" {
			b.fragments = append(b.fragments, text)
		}
	}
	return b
}

func (b *Builder) push(fragment string) *Builder {
	b.fragments = append(b.fragments, fragment)
	return b
}

// Raw appends text without any changes.
func (b *Builder) Raw(text string) *Builder {
	return b.push(text)
}

// Say appends text without any changes.
func (b *Builder) Say(text string) *Builder {
	return b.push(text)
}

// Sentence wraps text in <s>. No terminal punctuation is added.
func (b *Builder) Sentence(text string) *Builder {
	return b.push(markup.Wrap("s", Escape(text)))
}

// Paragraph wraps text in <p>.
func (b *Builder) Paragraph(text string) *Builder {
	return b.push(markup.Wrap("p", Escape(text)))
}

// Emphasis wraps text in <emphasis>, with level when set.
func (b *Builder) Emphasis(text string, opts EmphasisOptions) *Builder {
	return b.push(markup.Wrap("emphasis", Escape(text),
		markup.Attr{Name: "level", Value: opts.Level},
	))
}

// Phoneme provides a phonetic pronunciation for text.
func (b *Builder) Phoneme(text string, opts PhonemeOptions) *Builder {
	return b.push(markup.Wrap("phoneme", Escape(text),
		markup.Attr{Name: "alphabet", Value: opts.Alphabet},
		markup.Attr{Name: "ph", Value: opts.Ph},
	))
}

// Sub pronounces text as opts.Alias.
func (b *Builder) Sub(text string, opts SubOptions) *Builder {
	return b.push(markup.Wrap("sub", Escape(text),
		markup.Attr{Name: "alias", Value: opts.Alias},
	))
}

// SayAs describes how text should be interpreted.
func (b *Builder) SayAs(text string, opts SayAsOptions) *Builder {
	return b.push(markup.Wrap("say-as", Escape(text),
		markup.Attr{Name: "interpret-as", Value: opts.InterpretAs},
		markup.Attr{Name: "format", Value: opts.Format},
	))
}

// W tags text with a part-of-speech role.
func (b *Builder) W(text string, opts WOptions) *Builder {
	return b.push(markup.Wrap("w", Escape(text),
		markup.Attr{Name: "role", Value: opts.Role},
	))
}

// Prosody adjusts rate, pitch and volume of text.
func (b *Builder) Prosody(text string, opts ProsodyOptions) *Builder {
	return b.push(markup.Wrap("prosody", Escape(text),
		markup.Attr{Name: "rate", Value: opts.Rate},
		markup.Attr{Name: "pitch", Value: opts.Pitch},
		markup.Attr{Name: "volume", Value: opts.Volume},
	))
}

// AmazonEffect wraps text in the vendor <amazon:effect> element.
func (b *Builder) AmazonEffect(text string, opts AmazonEffectOptions) *Builder {
	return b.push(markup.Wrap("amazon:effect", Escape(text),
		markup.Attr{Name: "name", Value: opts.Name},
	))
}

// Whisper is AmazonEffect with the "whispered" effect.
func (b *Builder) Whisper(text string) *Builder {
	return b.AmazonEffect(text, AmazonEffectOptions{Name: WhisperedEffect})
}

// Audio embeds a pre-recorded clip. src is a URL and is not escaped.
func (b *Builder) Audio(src string) *Builder {
	return b.push(markup.Void("audio", markup.Attr{Name: "src", Value: src, Always: true}))
}

// Break inserts a pause. Time takes priority over Strength.
func (b *Builder) Break(opts BreakOptions) *Builder {
	attr := markup.Attr{Name: "strength", Value: DefaultBreakStrength}
	switch {
	case opts.Time != "":
		attr = markup.Attr{Name: "time", Value: opts.Time}
	case opts.Strength != "":
		attr.Value = opts.Strength
	}
	return b.push(markup.Void("break", attr))
}

// Pause is Break with a time. An empty time uses DefaultPause.
func (b *Builder) Pause(time string) *Builder {
	if time == "" {
		time = DefaultPause
	}
	return b.Break(BreakOptions{Time: time})
}

// SayAsDate interprets text as a date in the given format ("mdy", "ymd", ...).
func (b *Builder) SayAsDate(text, format string) *Builder {
	return b.SayAs(text, SayAsOptions{InterpretAs: InterpretAsDate, Format: format})
}

// SayAsVerb pronounces text as a present-tense verb.
func (b *Builder) SayAsVerb(text string) *Builder {
	return b.W(text, WOptions{Role: RoleVerb})
}

// SayAsNoun pronounces text as a noun.
func (b *Builder) SayAsNoun(text string) *Builder {
	return b.W(text, WOptions{Role: RoleNoun})
}

// SayAsPastParticiple pronounces text as a past tense verb or participle.
func (b *Builder) SayAsPastParticiple(text string) *Builder {
	return b.W(text, WOptions{Role: RolePastParticiple})
}

// SayAsSense uses the non-default sense of text.
func (b *Builder) SayAsSense(text string) *Builder {
	return b.W(text, WOptions{Role: RoleNonDefaultSense})
}

// Append copies the fragments of other onto the end of b.
func (b *Builder) Append(other *Builder) *Builder {
	if other == nil {
		return b
	}
	b.fragments = append(b.fragments, other.Fragments()...)
	return b
}

// Len reports the number of fragments.
func (b *Builder) Len() int {
	return len(b.fragments)
}

// Fragments returns a copy of the fragments in spoken order.
func (b *Builder) Fragments() []string {
	return append([]string(nil), b.fragments...)
}

// Output joins the fragments without a root element.
func (b *Builder) Output() string {
	return strings.Join(b.fragments, "")
}

// OutputWithRootNode joins the fragments inside <speak>.
func (b *Builder) OutputWithRootNode() string {
	return markup.Wrap(RootElement, b.Output())
}

// String implements fmt.Stringer and matches Output.
func (b *Builder) String() string {
	return b.Output()
}
