package sync

import (
	"context"
	"fmt"

	"github.com/jonaslundjonas/foldersheets/tree"
)

// Snapshot builds an in-memory tree of the remote folder hierarchy rooted at
// folder. Children are recorded in the order the remote store lists them.
// The remote store is assumed acyclic by construction, so no cycle detection
// is attempted.
func Snapshot(ctx context.Context, folder Folder) (*tree.Node, error) {
	node := tree.NewNode(folder.Name())

	children, err := folder.Children(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing children of '%s' (%w)", folder.Name(), err)
	}

	for _, child := range children {
		subtree, err := Snapshot(ctx, child)
		if err != nil {
			return nil, err
		}

		node.AddChild(subtree)
	}

	return node, nil
}
