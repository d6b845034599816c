package mdsift

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// buildTree walks the located content root into a node tree under a
// synthetic root. The root element itself is not converted; its direct
// children become the tree's top-level nodes.
func (c *Cleaner) buildTree(root *goquery.Selection) *Node {
	tree := NewNode(TagRoot)
	root.Children().Each(func(_ int, s *goquery.Selection) {
		if n := c.buildElement(s); n != nil {
			tree.Children = append(tree.Children, n)
		}
	})
	return tree
}

// buildElement converts one element depth-first, returning nil when the
// element is skipped outright (blocklisted tag or non-content class/id).
func (c *Cleaner) buildElement(s *goquery.Selection) *Node {
	tag := strings.ToLower(goquery.NodeName(s))
	if skipTags[tag] || c.isNonContent(s) {
		return nil
	}

	node := NewNode(tag)
	if tag == "a" {
		if href, ok := s.Attr("href"); ok && href != "" {
			node.Attributes = map[string]string{"href": href}
		}
	}

	if mixedContentTags[tag] {
		// Interleave literal text runs and child elements in document
		// order, so prose with inline markup keeps its shape.
		s.Contents().Each(func(_ int, child *goquery.Selection) {
			switch child.Nodes[0].Type {
			case html.TextNode:
				if text := collapseText(child.Nodes[0].Data); text != "" {
					node.Children = append(node.Children, newTextNode(text))
				}
			case html.ElementNode:
				if n := c.buildElement(child); n != nil {
					node.Children = append(node.Children, n)
				}
			}
		})
		return node
	}

	// Everything else keeps only its own direct text and recurses into
	// child elements. Interleaving with text is not preserved here.
	node.Text = ownText(s)
	s.Children().Each(func(_ int, child *goquery.Selection) {
		if n := c.buildElement(child); n != nil {
			node.Children = append(node.Children, n)
		}
	})
	return node
}

// ownText returns the element's direct text, excluding descendant text,
// with each run trimmed and internal whitespace collapsed.
func ownText(s *goquery.Selection) string {
	var parts []string
	s.Contents().Each(func(_ int, child *goquery.Selection) {
		if child.Nodes[0].Type == html.TextNode {
			if t := collapseText(child.Nodes[0].Data); t != "" {
				parts = append(parts, t)
			}
		}
	})
	return strings.Join(parts, " ")
}

// collapseText trims a raw text run and collapses internal whitespace to
// single spaces.
func collapseText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
