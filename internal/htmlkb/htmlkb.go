// Package htmlkb extracts clause candidates from HTML documents. Pages that
// publish clause sets (course notes, exercise sheets) typically list one
// clause per <li> or <code> element, literals separated by "|" or "∨".
package htmlkb

import (
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/cognicore/resolv/pkg/resolv/clause"
)

// clause-bearing elements
var clauseTags = map[string]bool{
	"li":   true,
	"code": true,
	"pre":  true,
}

// Extract parses an HTML document and returns every element text that parses
// as a well-formed clause, as literal-string lists ready for a knowledge-base
// file. Elements that do not parse are skipped.
func Extract(r io.Reader) ([][]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var out [][]string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && clauseTags[n.Data] {
			if lits, ok := parseClauseText(nodeText(n)); ok {
				out = append(out, lits)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return out, nil
}

// nodeText concatenates the text content below a node.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return sb.String()
}

// parseClauseText splits an element's text into literals and validates each
// one. Returns false when the text is empty or any literal is malformed.
func parseClauseText(text string) ([]string, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, false
	}
	text = strings.ReplaceAll(text, "∨", "|")

	var lits []string
	for _, part := range strings.Split(text, "|") {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, false
		}
		l, err := clause.ParseLiteral(part)
		if err != nil {
			return nil, false
		}
		lits = append(lits, l.String())
	}
	return lits, true
}
