package mdsift

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidInput is returned when the input HTML is empty or
	// whitespace-only. It is raised before any parsing happens.
	ErrInvalidInput = errors.New("mdsift: empty HTML input")

	// ErrSerialization is returned when an encoded node list cannot be
	// decoded.
	ErrSerialization = errors.New("mdsift: invalid node data")
)

// Node is the intermediate representation shared by every pipeline stage.
// It is either an element (Tag holds the lower-cased element name), a bare
// text run (Tag == TagText), or the synthetic document root (Tag ==
// TagRoot). Children are in source-document order; for mixed-content tags
// the order interleaves text runs and elements as encountered.
//
// Nodes are built once and rebuilt (never mutated) by the pruner; the
// renderer only reads.
type Node struct {
	Tag        string            `json:"tag"`
	Text       string            `json:"text,omitempty"`
	Children   []*Node           `json:"children,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// NewNode creates an element node with the given tag.
func NewNode(tag string) *Node {
	return &Node{Tag: tag}
}

func newTextNode(text string) *Node {
	return &Node{Tag: TagText, Text: text}
}

// IsText reports whether the node is a bare text run.
func (n *Node) IsText() bool {
	return n.Tag == TagText
}

// HasText reports whether the node carries own (non-descendant) text.
func (n *Node) HasText() bool {
	return strings.TrimSpace(n.Text) != ""
}

// IsHeading reports whether the node is an h1..h6 element.
func (n *Node) IsHeading() bool {
	return headingTags[strings.ToLower(n.Tag)]
}

// IsImportant reports whether the tag has a Markdown formatting mapping or
// is a structural container.
func (n *Node) IsImportant() bool {
	tag := strings.ToLower(n.Tag)
	_, formatted := markdownFormat[tag]
	return formatted || structuralTags[tag]
}

// EncodeNodes serializes an ordered node list to its canonical JSON form.
// This is the durable intermediate contract between the prune and render
// stages; child order is preserved exactly.
func EncodeNodes(nodes []*Node) ([]byte, error) {
	data, err := json.MarshalIndent(nodes, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	return data, nil
}

// DecodeNodes parses the canonical JSON form back into an ordered node
// list. Malformed data is reported as ErrSerialization.
func DecodeNodes(data []byte) ([]*Node, error) {
	var nodes []*Node
	if err := json.Unmarshal(data, &nodes); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	return nodes, nil
}
