// Package sync holds the contracts the import and push operations consume
// and the logic that walks a decoded folder tree against the live remote
// store. The remote store is treated strictly additively: folders are created
// when missing and never renamed, moved or deleted.
package sync

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned by Store.ResolveRoot when the identifier does
	// not resolve to a folder.
	ErrNotFound = errors.New("folder not found")

	// ErrPermissionDenied is returned by Store.ResolveRoot when the folder
	// exists but is not accessible with the current credentials.
	ErrPermissionDenied = errors.New("permission denied")
)

// Folder is a node in the remote folder store.
type Folder interface {
	// Name returns the folder's display name.
	Name() string

	// Children lists all child folders. Order is unspecified.
	Children(ctx context.Context) ([]Folder, error)

	// ChildrenNamed lists the child folders with the given name. The result
	// may be empty or, on drives with manually created duplicates, hold more
	// than one entry.
	ChildrenNamed(ctx context.Context, name string) ([]Folder, error)

	// CreateChild creates a child folder with the given name.
	CreateChild(ctx context.Context, name string) (Folder, error)
}

// Store resolves the remote top-level folder by an externally supplied
// identifier.
type Store interface {
	ResolveRoot(ctx context.Context, id string) (Folder, error)
}

// Tabular is the worksheet the tree is snapshotted into and pushed from.
type Tabular interface {
	// ReadAllRows returns the worksheet contents. Rows may be ragged; callers
	// treat missing trailing cells as empty.
	ReadAllRows(ctx context.Context) ([][]string, error)

	// WriteBlock overwrites a rectangular region starting at the zero-based
	// row and column.
	WriteBlock(ctx context.Context, row, col int, rows [][]string) error

	// Clear removes all prior content.
	Clear(ctx context.Context) error
}

// Notifier reports fatal failures to the human operator. It is used exactly
// once per operation, when root resolution fails before any mutation.
type Notifier interface {
	Fatal(message string)
}
