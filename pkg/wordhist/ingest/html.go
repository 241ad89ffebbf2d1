package ingest

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// skipped elements never contribute body text
var skipped = map[string]struct{}{
	"script":   {},
	"style":    {},
	"noscript": {},
	"head":     {},
}

// ExtractText returns the visible text of an HTML document. Text nodes are
// joined with single spaces so adjacent elements never glue words together.
func ExtractText(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if _, ok := skipped[n.Data]; ok {
				return
			}
		}
		if n.Type == html.TextNode {
			if s := strings.TrimSpace(n.Data); s != "" {
				parts = append(parts, s)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.Join(parts, " "), nil
}
