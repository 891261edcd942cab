package report

import (
	"github.com/pulumi/pulumi/sdk/v3/go/common/util/contract"
)

// Node is one level of the nested report: the entries recorded at
// this exact path plus children keyed by the next path segment.
// Children keep first-insertion order; a by-title index backs lookup.
type Node struct {
	Title   string
	Entries []Entry

	children     []*Node
	childByTitle map[string]*Node
	parent       *Node
}

func (n *Node) child(title string) *Node {
	contract.Assertf(title != "", "report nodes need a displayable segment")
	if c, ok := n.childByTitle[title]; ok {
		return c
	}
	c := &Node{Title: title, parent: n}
	if n.childByTitle == nil {
		n.childByTitle = map[string]*Node{}
	}
	n.childByTitle[title] = c
	n.children = append(n.children, c)
	return c
}

// Children returns the node's children in insertion order.
func (n *Node) Children() []*Node { return n.children }

// Child returns the child for a stringified path segment, or nil.
func (n *Node) Child(title string) *Node {
	if n.childByTitle == nil {
		return nil
	}
	return n.childByTitle[title]
}

// PathTitles returns the stringified segments from the root down to
// this node.
func (n *Node) PathTitles() []string {
	if n == nil {
		return nil
	}
	var parts []string
	for cur := n; cur != nil; cur = cur.parent {
		if cur.Title == "" {
			continue
		}
		parts = append(parts, cur.Title)
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return parts
}

// Nest groups flattened entries by shared path prefix: each entry's
// segments become nested branch keys, and the entry itself lands on
// the terminal node in flatten order. Entries with an empty path
// (whole-document changes) land on the root node.
func Nest(entries []Entry) *Node {
	root := &Node{}
	for _, e := range entries {
		node := root
		for _, seg := range e.Path {
			node = node.child(seg.String())
		}
		node.Entries = append(node.Entries, e)
	}
	return root
}

// uniqueChild returns the sole child when n carries no entries of its
// own and exactly one child, which is the precondition for collapsing
// n onto one display line with its descendant chain.
func (n *Node) uniqueChild() *Node {
	if len(n.Entries) == 0 && len(n.children) == 1 {
		return n.children[0]
	}
	return nil
}
