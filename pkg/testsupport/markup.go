// Package testsupport holds helpers shared by package tests. Generated speech
// markup is parsed with xmlquery so tests can assert structure and
// well-formedness instead of only comparing strings.
package testsupport

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/antchfx/xmlquery"
)

const amazonNamespace = "https://developer.amazon.com/alexa/ssml"

// ParseMarkup parses serialized markup with or without its <speak> root. The
// returned node is the <speak> element.
func ParseMarkup(markup string) (*xmlquery.Node, error) {
	body := strings.TrimSpace(markup)
	if strings.HasPrefix(body, "<speak>") && strings.HasSuffix(body, "</speak>") {
		body = strings.TrimSuffix(strings.TrimPrefix(body, "<speak>"), "</speak>")
	}
	doc := `<speak xmlns:amazon="` + amazonNamespace + `">` + body + `</speak>`

	root, err := xmlquery.Parse(strings.NewReader(doc))
	if err != nil {
		return nil, fmt.Errorf("testsupport: parse markup: %w", err)
	}
	speak := xmlquery.FindOne(root, "/speak")
	if speak == nil {
		return nil, errors.New("testsupport: speak root missing")
	}
	return speak, nil
}

// MustParseMarkup fails the test when markup is not well-formed.
func MustParseMarkup(t testing.TB, markup string) *xmlquery.Node {
	t.Helper()

	node, err := ParseMarkup(markup)
	if err != nil {
		t.Fatalf("markup is not well-formed: %v\n%s", err, markup)
	}
	return node
}

// ElementNames lists the qualified element names below root in document
// order ("s", "amazon:effect", ...).
func ElementNames(root *xmlquery.Node) []string {
	var names []string
	var walk func(node *xmlquery.Node)
	walk = func(node *xmlquery.Node) {
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			if child.Type != xmlquery.ElementNode {
				continue
			}
			name := child.Data
			if child.Prefix != "" {
				name = child.Prefix + ":" + name
			}
			names = append(names, name)
			walk(child)
		}
	}
	if root != nil {
		walk(root)
	}
	return names
}
