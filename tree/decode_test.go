package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePrefixSharing(t *testing.T) {
	rows := [][]string{
		{"Drive", "A", "B"},
		{"", "A", "C"},
	}

	root, gaps := Decode(rows)

	assert.Empty(t, gaps)
	require.Len(t, root.Children, 1)

	a := root.Children[0]
	assert.Equal(t, "A", a.Name)
	require.Len(t, a.Children, 2)
	assert.Equal(t, "B", a.Children[0].Name)
	assert.Equal(t, "C", a.Children[1].Name)
}

func TestDecodeIgnoresSentinelColumn(t *testing.T) {
	rows := [][]string{
		{"Drive", "A"},
		{"whatever", "B"},
	}

	root, _ := Decode(rows)

	require.Len(t, root.Children, 2)
	assert.Equal(t, "A", root.Children[0].Name)
	assert.Equal(t, "B", root.Children[1].Name)
}

func TestDecodeSyntheticRoot(t *testing.T) {
	root, _ := Decode([][]string{{"Drive"}})

	assert.Equal(t, SyntheticRoot, root.Name)
	assert.Empty(t, root.Children)
}

func TestDecodeDepthChain(t *testing.T) {
	rows := [][]string{
		{"Drive", "A", "B", "C"},
	}

	root, gaps := Decode(rows)

	assert.Empty(t, gaps)
	require.Len(t, root.Children, 1)
	a := root.Children[0]
	require.Len(t, a.Children, 1)
	b := a.Children[0]
	require.Len(t, b.Children, 1)
	assert.Equal(t, "C", b.Children[0].Name)
}

func TestDecodeGapRowsAreFlagged(t *testing.T) {
	rows := [][]string{
		{"Drive", "A", "B"},
		{"", "", "C"},
	}

	root, gaps := Decode(rows)

	assert.Equal(t, []int{1}, gaps)

	// Best-effort: the gap row's accumulated path is empty when "C" is
	// reached, so "C" lands at the top level.
	require.Len(t, root.Children, 2)
	assert.Equal(t, "A", root.Children[0].Name)
	assert.Equal(t, "C", root.Children[1].Name)
}

func TestDecodeTrailingEmptyCellsAreNotGaps(t *testing.T) {
	rows := [][]string{
		{"Drive", "A", "B", "", ""},
		{"", "A", "", ""},
	}

	_, gaps := Decode(rows)

	assert.Empty(t, gaps)
}

func TestDecodeDuplicateSiblingNamesAtDifferentPaths(t *testing.T) {
	rows := [][]string{
		{"Drive", "A", "Reports"},
		{"", "B", "Reports"},
	}

	root, _ := Decode(rows)

	require.Len(t, root.Children, 2)
	assert.Equal(t, "Reports", root.Children[0].Children[0].Name)
	assert.Equal(t, "Reports", root.Children[1].Children[0].Name)
	assert.NotSame(t, root.Children[0].Children[0], root.Children[1].Children[0])
}

func TestDecodeSharedNodesAreSameObject(t *testing.T) {
	rows := [][]string{
		{"Drive", "A", "B"},
		{"", "A", "B", "D"},
		{"", "A", "C"},
	}

	root, _ := Decode(rows)

	require.Len(t, root.Children, 1)
	a := root.Children[0]
	require.Len(t, a.Children, 2)

	b := a.Children[0]
	require.Len(t, b.Children, 1)
	assert.Equal(t, "D", b.Children[0].Name)
}

func TestRoundTrip(t *testing.T) {
	projects := NewNode("Projects")
	y2019 := NewNode("2019")
	y2019.AddChild(NewNode("Q4"))
	projects.AddChild(y2019)
	projects.AddChild(NewNode("2020"))
	root := NewNode("My Drive")
	root.AddChild(projects)
	root.AddChild(NewNode("Archive"))

	decoded, gaps := Decode(Encode(root))

	assert.Empty(t, gaps)

	// The decoded root carries the synthetic sentinel name, not the
	// original root name. The children must match structurally.
	assert.Equal(t, SyntheticRoot, decoded.Name)
	assertSameShape(t, root, decoded)
}

func TestDecodeRaggedRows(t *testing.T) {
	rows := [][]string{
		{"Drive", "A", "B"},
		{"", "A"},
		{},
	}

	root, gaps := Decode(rows)

	assert.Empty(t, gaps)
	require.Len(t, root.Children, 1)
	require.Len(t, root.Children[0].Children, 1)
}

// assertSameShape compares names, child order and depth, ignoring the root's
// own name.
func assertSameShape(t *testing.T, expected, got *Node) {
	t.Helper()

	require.Len(t, got.Children, len(expected.Children))

	for i, child := range expected.Children {
		assert.Equal(t, child.Name, got.Children[i].Name)
		assertSameShape(t, child, got.Children[i])
	}
}
