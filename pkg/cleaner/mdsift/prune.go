package mdsift

import "strings"

// Prune filters the children of a tree root bottom-up, returning the
// ordered list of retained top-level nodes. This list is the canonical
// unit consumed by the renderer and persisted through EncodeNodes.
func Prune(root *Node) []*Node {
	return PruneNodes(root.Children)
}

// PruneNodes prunes each node in an ordered list, concatenating the
// results. Pruning an already-pruned list yields an identical list.
func PruneNodes(nodes []*Node) []*Node {
	var pruned []*Node
	for _, n := range nodes {
		pruned = append(pruned, pruneNode(n)...)
	}
	return pruned
}

// pruneNode returns the node's replacement in its parent's child list:
// the rebuilt node when retained, nothing when it carries no content.
// Elision cascades: a chain of wrappers whose leaves are all empty
// disappears entirely.
func pruneNode(n *Node) []*Node {
	if n.IsText() {
		if text := strings.TrimSpace(n.Text); text != "" {
			return []*Node{newTextNode(text)}
		}
		return nil
	}

	var prunedChildren []*Node
	for _, child := range n.Children {
		prunedChildren = append(prunedChildren, pruneNode(child)...)
	}

	tag := strings.ToLower(n.Tag)
	text := strings.TrimSpace(n.Text)
	_, formatted := markdownFormat[tag]

	// Structural containers (div, section, p, ul, ol, li) earn retention
	// through surviving children; one with nothing left below it disappears.
	if text == "" && !headingTags[tag] && !formatted && len(prunedChildren) == 0 {
		return nil
	}

	kept := &Node{Tag: n.Tag, Text: text, Children: prunedChildren}
	if len(n.Attributes) > 0 {
		kept.Attributes = make(map[string]string, len(n.Attributes))
		for k, v := range n.Attributes {
			kept.Attributes[k] = v
		}
	}
	return []*Node{kept}
}
