// Package dom models the HTML collaborator as a minimal tree-query interface.
//
// Adapters depend on Document and Node rather than on a concrete parsing
// library; the goquery-backed implementation below is the only place that
// knows how documents are actually parsed.
package dom

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Document is a parsed HTML document that can be queried for elements.
type Document interface {
	// Find locates the first element matching the tag and, optionally, every
	// given attribute value. It reports false when no element matches.
	Find(tag string, attrs map[string]string) (Node, bool)
}

// Node is a single element within a parsed document.
type Node interface {
	// FindAll returns all descendant elements with the given tag, in document order.
	FindAll(tag string) []Node

	// Attr returns the value of the named attribute, reporting false when absent.
	Attr(name string) (string, bool)

	// Text returns the concatenated text content of the node.
	Text() string
}

// Parse builds a queryable Document from raw HTML.
func Parse(html string) (Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return &document{doc: doc}, nil
}

type document struct {
	doc *goquery.Document
}

func (d *document) Find(tag string, attrs map[string]string) (Node, bool) {
	sel := d.doc.Find(selector(tag, attrs)).First()
	if sel.Length() == 0 {
		return nil, false
	}
	return &node{sel: sel}, true
}

type node struct {
	sel *goquery.Selection
}

func (n *node) FindAll(tag string) []Node {
	var nodes []Node
	n.sel.Find(tag).Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, &node{sel: s})
	})
	return nodes
}

func (n *node) Attr(name string) (string, bool) {
	return n.sel.Attr(name)
}

func (n *node) Text() string {
	return n.sel.Text()
}

// selector composes a CSS selector from a tag name and exact attribute values.
func selector(tag string, attrs map[string]string) string {
	var b strings.Builder
	b.WriteString(tag)
	for k, v := range attrs {
		fmt.Fprintf(&b, `[%s=%q]`, k, v)
	}
	return b.String()
}
