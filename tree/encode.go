package tree

// Sentinel is the marker written to the first cell of the first row on
// encode. It stands in for the root and never shares a column with folder
// names. Note the asymmetry with SyntheticRoot on the decode side - the two
// directions deliberately use different root labels.
const Sentinel = "Drive"

// Encode serializes a folder tree into worksheet rows. Every node writes its
// full ancestor path into the current row at columns 1..depth; the row index
// advances after a leaf, so a single-child chain collapses onto one row:
//
//	Drive -> A -> B -> C  encodes to  ["Drive", "A", "B", "C"]
//
// The root itself is rendered only as the Sentinel in the first row's first
// cell. A root with no children encodes to that single sentinel row.
func Encode(root *Node) [][]string {
	e := encoder{}
	e.set(0, 0, Sentinel)

	row := 0
	for _, child := range root.Children {
		row = e.visit(child, row, nil)
	}

	return e.rows
}

type encoder struct {
	rows [][]string
}

// visit writes the node's path into row and returns the row index one past
// the last row written. The ancestor path is copied on every call so sibling
// branches never see each other's entries.
func (e *encoder) visit(n *Node, row int, path []string) int {
	path = append(append([]string{}, path...), n.Name)

	for i, name := range path {
		e.set(row, i+1, name)
	}

	if len(n.Children) == 0 {
		return row + 1
	}

	for _, child := range n.Children {
		row = e.visit(child, row, path)
	}

	return row
}

func (e *encoder) set(row, col int, value string) {
	for len(e.rows) <= row {
		e.rows = append(e.rows, []string{})
	}

	for len(e.rows[row]) <= col {
		e.rows[row] = append(e.rows[row], "")
	}

	e.rows[row][col] = value
}
