package tree

// SyntheticRoot is the name given to the placeholder root produced by
// Decode. It is decode-only and never maps to a remote folder - the
// reconciler skips it and works on its children.
const SyntheticRoot = "root"

// Decode parses worksheet rows back into a folder tree. Column 0 is ignored
// entirely (it holds the Sentinel on encoded sheets); folder names start at
// column 1, with column index equal to depth. Rows sharing a column-wise
// prefix collapse onto the same node, so the tree size is bounded by the
// number of distinct prefixes rather than the row count.
//
// Empty cells are skipped without resetting the accumulated path. A row with
// a non-empty cell after a gap therefore attaches the name to whatever
// prefix was built so far; such rows are reported in gaps (zero-based row
// indices) so callers can warn, but the best-effort result stands.
func Decode(rows [][]string) (root *Node, gaps []int) {
	root = NewNode(SyntheticRoot)

	seen := map[string]*Node{
		SyntheticRoot: root,
	}

	for i, row := range rows {
		parent := root
		key := SyntheticRoot
		skipped := false
		flagged := false

		for col := 1; col < len(row); col++ {
			name := row[col]
			if name == "" {
				skipped = true
				continue
			}

			if skipped && !flagged {
				gaps = append(gaps, i)
				flagged = true
			}

			key = key + "/" + name

			node, ok := seen[key]
			if !ok {
				node = NewNode(name)
				parent.AddChild(node)
				seen[key] = node
			}

			parent = node
		}
	}

	return root, gaps
}
