package script

import (
	"fmt"
	"sort"

	"github.com/goliatone/go-speechlet/pkg/ssml"
)

type handler func(b *ssml.Builder, text string, step Step, defaults Defaults) error

// handlers is the fixed operation table. Names not found here fall back to
// the generated say-as shortcuts (sayAsDigits, sayAsSpellOut, ...).
var handlers = map[string]handler{
	"say": func(b *ssml.Builder, text string, _ Step, _ Defaults) error {
		b.Say(text)
		return nil
	},
	"raw": func(b *ssml.Builder, text string, _ Step, _ Defaults) error {
		b.Raw(text)
		return nil
	},
	"safeRaw": func(b *ssml.Builder, text string, _ Step, _ Defaults) error {
		b.SafeRaw(text)
		return nil
	},
	"sentence": func(b *ssml.Builder, text string, _ Step, _ Defaults) error {
		b.Sentence(text)
		return nil
	},
	"paragraph": func(b *ssml.Builder, text string, _ Step, _ Defaults) error {
		b.Paragraph(text)
		return nil
	},
	"emphasis": func(b *ssml.Builder, text string, step Step, _ Defaults) error {
		b.Emphasis(text, ssml.EmphasisOptions{Level: step.Level})
		return nil
	},
	"phoneme": func(b *ssml.Builder, text string, step Step, _ Defaults) error {
		b.Phoneme(text, ssml.PhonemeOptions{Alphabet: step.Alphabet, Ph: step.Ph})
		return nil
	},
	"sub": func(b *ssml.Builder, text string, step Step, _ Defaults) error {
		b.Sub(text, ssml.SubOptions{Alias: step.Alias})
		return nil
	},
	"sayAs": func(b *ssml.Builder, text string, step Step, _ Defaults) error {
		b.SayAs(text, ssml.SayAsOptions{InterpretAs: step.InterpretAs, Format: step.Format})
		return nil
	},
	"sayAsDate": func(b *ssml.Builder, text string, step Step, _ Defaults) error {
		b.SayAsDate(text, step.Format)
		return nil
	},
	"sayAsVerb": func(b *ssml.Builder, text string, _ Step, _ Defaults) error {
		b.SayAsVerb(text)
		return nil
	},
	"sayAsNoun": func(b *ssml.Builder, text string, _ Step, _ Defaults) error {
		b.SayAsNoun(text)
		return nil
	},
	"sayAsPastParticiple": func(b *ssml.Builder, text string, _ Step, _ Defaults) error {
		b.SayAsPastParticiple(text)
		return nil
	},
	"sayAsSense": func(b *ssml.Builder, text string, _ Step, _ Defaults) error {
		b.SayAsSense(text)
		return nil
	},
	"w": func(b *ssml.Builder, text string, step Step, _ Defaults) error {
		b.W(text, ssml.WOptions{Role: step.Role})
		return nil
	},
	"prosody": func(b *ssml.Builder, text string, step Step, _ Defaults) error {
		b.Prosody(text, ssml.ProsodyOptions{Rate: step.Rate, Pitch: step.Pitch, Volume: step.Volume})
		return nil
	},
	"amazonEffect": func(b *ssml.Builder, text string, step Step, _ Defaults) error {
		b.AmazonEffect(text, ssml.AmazonEffectOptions{Name: step.Name})
		return nil
	},
	"whisper": func(b *ssml.Builder, text string, _ Step, _ Defaults) error {
		b.Whisper(text)
		return nil
	},
	"audio": func(b *ssml.Builder, text string, _ Step, _ Defaults) error {
		b.Audio(text)
		return nil
	},
	"break": func(b *ssml.Builder, _ string, step Step, _ Defaults) error {
		b.Break(ssml.BreakOptions{Time: step.Time, Strength: step.Strength})
		return nil
	},
	"pause": func(b *ssml.Builder, text string, step Step, _ Defaults) error {
		b.Pause(firstNonEmpty(step.Time, step.Pause, text))
		return nil
	},
	"readAsNumberedList": func(b *ssml.Builder, _ string, step Step, defaults Defaults) error {
		_, err := b.ReadAsNumberedList(step.List, listOptions(step, defaults))
		return err
	},
	"readAsOrdinalList": func(b *ssml.Builder, _ string, step Step, defaults Defaults) error {
		_, err := b.ReadAsOrdinalList(step.List, listOptions(step, defaults))
		return err
	},
	"readAsList": func(b *ssml.Builder, _ string, step Step, defaults Defaults) error {
		_, err := b.ReadAsList(step.List, conjunctionOptions(step, defaults))
		return err
	},
	"list": readListByStyle,
}

func readListByStyle(b *ssml.Builder, _ string, step Step, defaults Defaults) error {
	var err error
	switch step.Style {
	case "", StyleConjunctive:
		_, err = b.ReadAsList(step.List, conjunctionOptions(step, defaults))
	case StyleNumbered:
		_, err = b.ReadAsNumberedList(step.List, listOptions(step, defaults))
	case StyleOrdinal:
		_, err = b.ReadAsOrdinalList(step.List, listOptions(step, defaults))
	default:
		err = fmt.Errorf("%w: unknown list style %q", ErrInvalidStep, step.Style)
	}
	return err
}

func dispatch(b *ssml.Builder, op, text string, step Step, defaults Defaults) error {
	if fn, ok := handlers[op]; ok {
		return fn(b, text, step, defaults)
	}
	if shortcut, ok := b.Shortcut(op); ok {
		shortcut(text)
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownOperation, op)
}

// Operations lists every operation name a step may use, sorted.
func Operations() []string {
	names := make([]string, 0, len(handlers)+len(ssml.Shortcuts()))
	seen := make(map[string]struct{}, cap(names))
	for name := range handlers {
		seen[name] = struct{}{}
		names = append(names, name)
	}
	for _, name := range ssml.Shortcuts() {
		if _, ok := seen[name]; ok {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func listOptions(step Step, defaults Defaults) ssml.ListOptions {
	return ssml.ListOptions{Pause: firstNonEmpty(step.Pause, defaults.Pause), Start: step.Start}
}

func conjunctionOptions(step Step, defaults Defaults) ssml.ConjunctionOptions {
	return ssml.ConjunctionOptions{
		Separator:            firstNonEmpty(step.Separator, defaults.Separator),
		LastSeparator:        firstNonEmpty(step.LastSeparator, defaults.LastSeparator),
		PauseBeforeSeparator: step.PauseBeforeSeparator,
		PauseAfterSeparator:  step.PauseAfterSeparator,
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
