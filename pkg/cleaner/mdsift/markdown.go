package mdsift

import "strings"

// tagClass is the closed set of rendering behaviors. Classification is
// first-match by tag; anything unclassified is classDefault, which emits
// its children and nothing else.
type tagClass int

const (
	classDefault tagClass = iota
	classText
	classHeading
	classParagraph
	classList
	classListItem
	classInline
	classAnchor
	classBlockquote
)

func classify(tag string) tagClass {
	switch tag {
	case TagText:
		return classText
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return classHeading
	case "p":
		return classParagraph
	case "ul", "ol":
		return classList
	case "li":
		return classListItem
	case "strong", "b", "em", "i", "code", "pre":
		return classInline
	case "a":
		return classAnchor
	case "blockquote":
		return classBlockquote
	default:
		return classDefault
	}
}

// RenderMarkdown converts a pruned node list to Markdown. The output still
// needs a Normalize pass; spacing between blocks is emitted generously and
// collapsed there.
func RenderMarkdown(nodes []*Node) string {
	var sb strings.Builder
	for _, n := range nodes {
		renderNode(&sb, n, 0, false)
	}
	return sb.String()
}

// renderNode dispatches one node. listDepth is the current list nesting,
// inList suppresses paragraph blank lines inside list items.
func renderNode(sb *strings.Builder, n *Node, listDepth int, inList bool) {
	tag := strings.ToLower(n.Tag)

	switch classify(tag) {
	case classText:
		writePiece(sb, n.Text)

	case classHeading:
		level := int(tag[1] - '0')
		sb.WriteString("\n\n")
		sb.WriteString(strings.Repeat("#", level))
		sb.WriteString(" ")
		sb.WriteString(flattenText(n))
		sb.WriteString("\n\n")

	case classParagraph:
		if !inList {
			sb.WriteString("\n\n")
		}
		renderInline(sb, n, listDepth, inList)
		if !inList {
			sb.WriteString("\n\n")
		}

	case classList:
		// Ordered lists render the same bullets as unordered ones.
		sb.WriteString("\n")
		for _, child := range n.Children {
			renderNode(sb, child, listDepth, true)
		}
		sb.WriteString("\n")

	case classListItem:
		sb.WriteString(strings.Repeat("  ", listDepth))
		sb.WriteString("- ")
		if hasTextChild(n) {
			renderInline(sb, n, listDepth+1, true)
		} else {
			sb.WriteString(flattenText(n))
		}
		sb.WriteString("\n")

	case classInline:
		format := markdownFormat[tag]
		sb.WriteString(format[0])
		sb.WriteString(flattenText(n))
		sb.WriteString(format[1])

	case classAnchor:
		sb.WriteString("[")
		sb.WriteString(flattenText(n))
		sb.WriteString("]")
		if href := n.Attributes["href"]; href != "" {
			sb.WriteString("(")
			sb.WriteString(href)
			sb.WriteString(")")
		}

	case classBlockquote:
		// Single logical line; internal breaks are not re-prefixed.
		sb.WriteString("\n> ")
		sb.WriteString(flattenText(n))
		sb.WriteString("\n\n")

	case classDefault:
		for _, child := range n.Children {
			renderNode(sb, child, listDepth, inList)
		}
	}
}

// renderInline emits a node's own text and children in document order:
// text children verbatim, element children through the dispatcher with the
// caller's context.
func renderInline(sb *strings.Builder, n *Node, listDepth int, inList bool) {
	if t := strings.TrimSpace(n.Text); t != "" {
		writePiece(sb, t)
	}
	for _, child := range n.Children {
		if child.IsText() {
			writePiece(sb, child.Text)
			continue
		}
		var piece strings.Builder
		renderNode(&piece, child, listDepth, inList)
		writePiece(sb, piece.String())
	}
}

// flattenText collapses a node's subtree into a single inline string: own
// text first, then each child flattened in order with fresh context.
// Inline-formatted and anchor descendants keep their markers; block
// descendants lose their structure.
func flattenText(n *Node) string {
	var parts []string
	if t := strings.TrimSpace(n.Text); t != "" {
		parts = append(parts, t)
	}
	for _, child := range n.Children {
		var piece string
		switch {
		case child.IsText():
			piece = child.Text
		default:
			tag := strings.ToLower(child.Tag)
			if format, ok := markdownFormat[tag]; ok {
				piece = format[0] + flattenText(child) + format[1]
				if tag == "a" {
					if href := child.Attributes["href"]; href != "" {
						piece += "(" + href + ")"
					}
				}
			} else {
				piece = flattenText(child)
			}
		}
		if piece != "" {
			parts = append(parts, piece)
		}
	}
	return strings.Join(parts, " ")
}

// writePiece appends text, inserting a separating space when both sides of
// the seam are non-whitespace.
func writePiece(sb *strings.Builder, piece string) {
	if piece == "" {
		return
	}
	if out := sb.String(); out != "" &&
		!isSpaceByte(out[len(out)-1]) && !isSpaceByte(piece[0]) {
		sb.WriteString(" ")
	}
	sb.WriteString(piece)
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func hasTextChild(n *Node) bool {
	for _, child := range n.Children {
		if child.IsText() {
			return true
		}
	}
	return false
}
