// Package ssml builds speech markup documents for voice platforms. A Builder
// accumulates fragments in spoken order: plain text appended verbatim through
// Say/Raw, and tag-wrapped text (sentences, emphasis, say-as, prosody, breaks)
// whose user-supplied content is escaped before it is wrapped. Output joins
// the fragments; OutputWithRootNode additionally wraps them in <speak>.
//
// Every say-as interpretation in the catalog gets a generated shortcut
// (for example "spell-out" becomes "sayAsSpellOut"), resolved through
// Builder.Shortcut. List readouts (numbered, ordinal, conjunctive) are layered
// on Say and Pause.
//
// A Builder is not safe for concurrent use. Compose independent builders and
// merge them with Append when work is split across goroutines.
package ssml
