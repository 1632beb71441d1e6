package sync

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonaslundjonas/foldersheets/tree"
)

// fakeFolder is an in-memory Folder for exercising the reconciler without a
// live Drive.
type fakeFolder struct {
	name     string
	children []*fakeFolder
	failOn   string
}

func newFakeFolder(name string) *fakeFolder {
	return &fakeFolder{name: name}
}

func (f *fakeFolder) Name() string {
	return f.name
}

func (f *fakeFolder) Children(ctx context.Context) ([]Folder, error) {
	folders := make([]Folder, len(f.children))
	for i, child := range f.children {
		folders[i] = child
	}
	return folders, nil
}

func (f *fakeFolder) ChildrenNamed(ctx context.Context, name string) ([]Folder, error) {
	matches := []Folder{}
	for _, child := range f.children {
		if child.name == name {
			matches = append(matches, child)
		}
	}
	return matches, nil
}

func (f *fakeFolder) CreateChild(ctx context.Context, name string) (Folder, error) {
	if f.failOn == name {
		return nil, errors.New("quota exceeded")
	}

	child := newFakeFolder(name)
	child.failOn = f.failOn
	f.children = append(f.children, child)
	return child, nil
}

func (f *fakeFolder) find(path ...string) *fakeFolder {
	current := f
next:
	for _, name := range path {
		for _, child := range current.children {
			if child.name == name {
				current = child
				continue next
			}
		}
		return nil
	}
	return current
}

func decode(t *testing.T, rows [][]string) *tree.Node {
	t.Helper()

	root, gaps := tree.Decode(rows)
	require.Empty(t, gaps)
	return root
}

func TestReconcileCreatesMissingFolders(t *testing.T) {
	remote := newFakeFolder("Shared")
	local := decode(t, [][]string{
		{"Drive", "A", "B"},
		{"", "A", "C"},
	})

	created, err := NewReconciler(nil).Reconcile(context.Background(), remote, local)

	require.NoError(t, err)
	assert.Equal(t, 3, created)
	assert.NotNil(t, remote.find("A", "B"))
	assert.NotNil(t, remote.find("A", "C"))
}

func TestReconcileIsIdempotent(t *testing.T) {
	remote := newFakeFolder("Shared")
	local := decode(t, [][]string{
		{"Drive", "A", "B"},
		{"", "A", "C"},
		{"", "D"},
	})

	r := NewReconciler(nil)

	first, err := r.Reconcile(context.Background(), remote, local)
	require.NoError(t, err)
	assert.Equal(t, 4, first)

	second, err := r.Reconcile(context.Background(), remote, local)
	require.NoError(t, err)
	assert.Equal(t, 0, second)
}

func TestReconcileNeverCreatesSyntheticRoot(t *testing.T) {
	remote := newFakeFolder("Shared")
	local := decode(t, [][]string{
		{"Drive", "A"},
	})

	_, err := NewReconciler(nil).Reconcile(context.Background(), remote, local)

	require.NoError(t, err)
	for _, child := range remote.children {
		if child.name == tree.SyntheticRoot {
			t.Errorf("Reconcile created a folder for the synthetic root")
		}
	}
}

func TestReconcileRecursesIntoExistingFolder(t *testing.T) {
	remote := newFakeFolder("Shared")
	x, _ := remote.CreateChild(context.Background(), "X")

	local := decode(t, [][]string{
		{"Drive", "X", "Y"},
	})

	created, err := NewReconciler(nil).Reconcile(context.Background(), remote, local)

	require.NoError(t, err)
	assert.Equal(t, 1, created)

	matches, _ := remote.ChildrenNamed(context.Background(), "X")
	require.Len(t, matches, 1, "Reconcile must not create a second 'X'")
	assert.Same(t, x, matches[0])
	assert.NotNil(t, remote.find("X", "Y"))
}

func TestReconcileDuplicateRemoteNamesFirstMatchWins(t *testing.T) {
	remote := newFakeFolder("Shared")
	first, _ := remote.CreateChild(context.Background(), "X")
	remote.CreateChild(context.Background(), "X")

	local := decode(t, [][]string{
		{"Drive", "X", "Y"},
	})

	created, err := NewReconciler(nil).Reconcile(context.Background(), remote, local)

	require.NoError(t, err)
	assert.Equal(t, 1, created)
	assert.Len(t, first.(*fakeFolder).children, 1)
}

func TestReconcileCreationFailureAborts(t *testing.T) {
	remote := newFakeFolder("Shared")
	remote.failOn = "B"

	local := decode(t, [][]string{
		{"Drive", "A", "B"},
		{"", "C"},
	})

	created, err := NewReconciler(nil).Reconcile(context.Background(), remote, local)

	require.Error(t, err)

	// "A" was created before the failure and stays in place; "C" is never
	// reached.
	assert.Equal(t, 1, created)
	assert.NotNil(t, remote.find("A"))
	assert.Nil(t, remote.find("C"))
}

func TestSnapshot(t *testing.T) {
	ctx := context.Background()
	remote := newFakeFolder("Shared")
	a, _ := remote.CreateChild(ctx, "A")
	a.CreateChild(ctx, "B")
	a.CreateChild(ctx, "C")
	remote.CreateChild(ctx, "D")

	root, err := Snapshot(ctx, remote)

	require.NoError(t, err)
	assert.Equal(t, "Shared", root.Name)
	require.Len(t, root.Children, 2)
	assert.Equal(t, "A", root.Children[0].Name)
	require.Len(t, root.Children[0].Children, 2)
	assert.Equal(t, "B", root.Children[0].Children[0].Name)
	assert.Equal(t, "C", root.Children[0].Children[1].Name)
	assert.Equal(t, "D", root.Children[1].Name)
}

func TestSnapshotEncodePushRoundTrip(t *testing.T) {
	ctx := context.Background()

	source := newFakeFolder("Source")
	a, _ := source.CreateChild(ctx, "A")
	a.CreateChild(ctx, "B")
	source.CreateChild(ctx, "C")

	snapshot, err := Snapshot(ctx, source)
	require.NoError(t, err)

	local := decode(t, tree.Encode(snapshot))

	target := newFakeFolder("Target")
	created, err := NewReconciler(nil).Reconcile(ctx, target, local)
	require.NoError(t, err)
	assert.Equal(t, 3, created)

	mirrored, err := Snapshot(ctx, target)
	require.NoError(t, err)
	require.Len(t, mirrored.Children, 2)
	assert.Equal(t, "A", mirrored.Children[0].Name)
	assert.Equal(t, "B", mirrored.Children[0].Children[0].Name)
	assert.Equal(t, "C", mirrored.Children[1].Name)
}
