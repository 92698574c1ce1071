package ssml

import (
	"errors"
	"strings"
)

// ErrInvalidArgument is returned by the list readouts when the list argument
// is not a slice or array.
var ErrInvalidArgument = errors.New("ssml: invalid argument")

// Escape rewrites the characters that would break the markup into words:
// "&" becomes " and ", "<" becomes " less than ", ">" becomes " greater than ".
// The substitutions run one after another over the whole string, so feeding
// generated markup back through an escaping operation rewrites its tags too.
func Escape(text string) string {
	text = strings.ReplaceAll(text, "&", " and ")
	text = strings.ReplaceAll(text, "<", " less than ")
	text = strings.ReplaceAll(text, ">", " greater than ")
	return text
}
