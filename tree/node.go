// Package tree models a Google Drive folder hierarchy as a rooted tree of
// named nodes and converts it to and from the worksheet layout used by the
// 'import' and 'push' commands:
//
//	Drive | A |   |
//	      | A | B |
//	      | A | C |
//
// Column 0 is reserved for the "Drive" marker on the first row and a folder
// at depth N occupies column N, preceded by its ancestor names.
package tree

// Node is a single folder in the hierarchy. Children are kept in discovery
// order (remote listing order on import, row order on decode). Nodes never
// hold a parent reference - traversal is strictly top-down.
type Node struct {
	Name     string
	Children []*Node
}

// NewNode creates a folder node with no children.
func NewNode(name string) *Node {
	return &Node{
		Name:     name,
		Children: []*Node{},
	}
}

// AddChild appends a child node, preserving insertion order. Duplicate
// sibling names are allowed here - the decoder and the reconciler deal with
// duplicates at their own level.
func (n *Node) AddChild(child *Node) {
	n.Children = append(n.Children, child)
}

// Count returns the number of folders in the tree, excluding the root.
func (n *Node) Count() int {
	count := 0
	for _, child := range n.Children {
		count += 1 + child.Count()
	}
	return count
}
