package sync

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonaslundjonas/foldersheets/tree"
)

// Reconciler creates remote folders that are present in a decoded tree but
// missing in the remote store. It never deletes, renames or moves, and never
// touches a folder's content or metadata beyond checking and creating by
// name, which makes a repeated push against an unchanged worksheet a no-op.
type Reconciler struct {
	logger *zap.Logger
}

func NewReconciler(logger *zap.Logger) *Reconciler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Reconciler{
		logger: logger,
	}
}

// Reconcile walks node against parent, creating any missing folders, and
// returns the number of folders created. The synthetic decode root is never
// created remotely - its children are reconciled directly under parent.
//
// A failed creation aborts the remaining walk; folders created by earlier
// steps are left in place.
func (r *Reconciler) Reconcile(ctx context.Context, parent Folder, node *tree.Node) (int, error) {
	if node.Name == tree.SyntheticRoot {
		created := 0
		for _, child := range node.Children {
			n, err := r.Reconcile(ctx, parent, child)
			created += n
			if err != nil {
				return created, err
			}
		}
		return created, nil
	}

	folder, created, err := r.findOrCreate(ctx, parent, node.Name)
	if err != nil {
		return 0, err
	}

	count := 0
	if created {
		count = 1
	}

	for _, child := range node.Children {
		n, err := r.Reconcile(ctx, folder, child)
		count += n
		if err != nil {
			return count, err
		}
	}

	return count, nil
}

// findOrCreate resolves a child of parent by name, creating it when absent.
// When the remote store holds more than one child with the same name the
// first one returned wins.
func (r *Reconciler) findOrCreate(ctx context.Context, parent Folder, name string) (Folder, bool, error) {
	matches, err := parent.ChildrenNamed(ctx, name)
	if err != nil {
		return nil, false, fmt.Errorf("error looking up folder '%s' in '%s' (%w)", name, parent.Name(), err)
	}

	if len(matches) > 1 {
		r.logger.Debug("duplicate remote folders, using first match",
			zap.String("name", name),
			zap.String("parent", parent.Name()),
			zap.Int("matches", len(matches)))
	}

	if len(matches) > 0 {
		return matches[0], false, nil
	}

	folder, err := parent.CreateChild(ctx, name)
	if err != nil {
		return nil, false, fmt.Errorf("error creating folder '%s' in '%s' (%w)", name, parent.Name(), err)
	}

	r.logger.Info("created folder",
		zap.String("name", name),
		zap.String("parent", parent.Name()))

	return folder, true, nil
}
