package ssml

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/goliatone/go-speechlet/pkg/ordinal"
)

// ReadAsNumberedList reads each item prefixed with its position ("1, apples"),
// counting from opts.Start or 1, followed by a pause. The pause also follows the last item.
// list must be a slice or array; items are formatted with fmt.Sprint.
func (b *Builder) ReadAsNumberedList(list any, opts ListOptions) (*Builder, error) {
	items, err := listItems("read as numbered list", list)
	if err != nil {
		return b, err
	}
	pause, start := listPause(opts.Pause), listStart(opts.Start)
	for idx, item := range items {
		b.Say(strconv.Itoa(start+idx) + ", " + Escape(item))
		b.Pause(pause)
	}
	return b, nil
}

// ReadAsOrdinalList is ReadAsNumberedList with ordinal words ("first, apples").
// Positions past ordinal.Max speak the ordinal sentinel text instead.
func (b *Builder) ReadAsOrdinalList(list any, opts ListOptions) (*Builder, error) {
	items, err := listItems("read as ordinal list", list)
	if err != nil {
		return b, err
	}
	pause, start := listPause(opts.Pause), listStart(opts.Start)
	for idx, item := range items {
		word, err := ordinal.Word(start + idx)
		if err != nil {
			return b, fmt.Errorf("ssml: read as ordinal list: %w", err)
		}
		b.Say(word + ", " + Escape(item))
		b.Pause(pause)
	}
	return b, nil
}

// ReadAsList reads the items joined by a spoken separator ("a and b and c").
// LastSeparator replaces the final separator only when there are at least two
// items; a single item is read alone.
func (b *Builder) ReadAsList(list any, opts ConjunctionOptions) (*Builder, error) {
	items, err := listItems("read as list", list)
	if err != nil {
		return b, err
	}
	if len(items) == 0 {
		return b, nil
	}

	separator := opts.Separator
	if separator == "" {
		separator = DefaultSeparator
	}
	separator = Escape(separator)

	last := len(items) - 1
	for _, item := range items[:last] {
		b.Say(Escape(item) + " ")
		if opts.PauseBeforeSeparator != "" {
			b.Pause(opts.PauseBeforeSeparator)
		}
		b.Say(separator + " ")
		if opts.PauseAfterSeparator != "" {
			b.Pause(opts.PauseAfterSeparator)
		}
	}

	final := Escape(items[last])
	if opts.LastSeparator != "" && len(items) > 1 {
		b.Say(opts.LastSeparator + " " + final)
	} else {
		b.Say(final)
	}
	return b, nil
}

func listPause(pause string) string {
	if pause == "" {
		return DefaultListPause
	}
	return pause
}

func listStart(start int) int {
	if start < 1 {
		return 1
	}
	return start
}

func listItems(op string, list any) ([]string, error) {
	switch typed := list.(type) {
	case nil:
		return nil, fmt.Errorf("ssml: %s: %w: list is nil", op, ErrInvalidArgument)
	case []string:
		return typed, nil
	}

	value := reflect.ValueOf(list)
	switch value.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return nil, fmt.Errorf("ssml: %s: %w: expected a slice or array, got %T", op, ErrInvalidArgument, list)
	}

	items := make([]string, value.Len())
	for idx := range items {
		items[idx] = fmt.Sprint(value.Index(idx).Interface())
	}
	return items, nil
}
