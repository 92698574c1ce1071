package ssml

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	markupPolicyOnce sync.Once
	markupPolicy     *bluemonday.Policy
)

// SafeRaw appends caller markup after stripping every element this package
// does not emit. Text inside dropped elements is kept, except for elements
// whose content is never spoken (script, style). Use Raw to append markup
// verbatim.
//
// Unlike Say, text is not rewritten into words: the sanitizer encodes
// reserved characters as entities (& becomes &amp;, quotes become &#34; and
// &#39;), which speech engines read as the literal character. Run text
// through Escape first to have "&" spoken as "and".
func (b *Builder) SafeRaw(text string) *Builder {
	return b.push(SanitizeMarkup(text))
}

// SanitizeMarkup filters markup down to the speech elements and attributes
// produced by Builder.
func SanitizeMarkup(text string) string {
	if text == "" {
		return ""
	}
	// The sanitizer writes void elements as <break/>; match Builder's "<break />".
	// Text and attribute values cannot contain "/>" after sanitizing since ">"
	// is encoded there.
	return strings.ReplaceAll(markupSanitizer().Sanitize(text), "/>", " />")
}

func markupSanitizer() *bluemonday.Policy {
	markupPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements(
			"s", "p", "emphasis", "phoneme", "sub", "say-as", "w",
			"prosody", "amazon:effect", "audio", "break",
		)

		policy.AllowNoAttrs().OnElements(
			"emphasis", "phoneme", "sub", "say-as", "w", "prosody", "amazon:effect",
		)

		policy.AllowAttrs("level").OnElements("emphasis")
		policy.AllowAttrs("alphabet", "ph").OnElements("phoneme")
		policy.AllowAttrs("alias").OnElements("sub")
		policy.AllowAttrs("interpret-as", "format").OnElements("say-as")
		policy.AllowAttrs("role").OnElements("w")
		policy.AllowAttrs("rate", "pitch", "volume").OnElements("prosody")
		policy.AllowAttrs("name").OnElements("amazon:effect")
		policy.AllowAttrs("src").OnElements("audio")
		policy.AllowAttrs("time", "strength").OnElements("break")

		markupPolicy = policy
	})
	return markupPolicy
}
