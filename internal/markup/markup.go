// Package markup formats the fixed set of speech tags emitted by pkg/ssml.
// Values are written as given; escaping is the caller's concern.
package markup

import "strings"

// Attr is one attribute in wire form. Attributes with an empty Value are
// skipped unless Always is set.
type Attr struct {
	Name   string
	Value  string
	Always bool
}

// Wrap renders <name attrs...>body</name>.
func Wrap(name, body string, attrs ...Attr) string {
	var builder strings.Builder
	builder.Grow(len(name)*2 + len(body) + 5)
	builder.WriteString("<")
	builder.WriteString(name)
	writeAttrs(&builder, attrs)
	builder.WriteString(">")
	builder.WriteString(body)
	builder.WriteString("</")
	builder.WriteString(name)
	builder.WriteString(">")
	return builder.String()
}

// Void renders a self-closing element: <name attrs... />.
func Void(name string, attrs ...Attr) string {
	var builder strings.Builder
	builder.WriteString("<")
	builder.WriteString(name)
	writeAttrs(&builder, attrs)
	builder.WriteString(" />")
	return builder.String()
}

func writeAttrs(builder *strings.Builder, attrs []Attr) {
	for _, attr := range attrs {
		if attr.Value == "" && !attr.Always {
			continue
		}
		builder.WriteString(" ")
		builder.WriteString(attr.Name)
		builder.WriteString(`="`)
		builder.WriteString(attr.Value)
		builder.WriteString(`"`)
	}
}
