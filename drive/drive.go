// Package drive adapts the Google Drive v3 API to the folder store contract
// consumed by the import and push operations. Queries are Shared Drive aware
// and exclude trashed items.
package drive

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"

	"github.com/jonaslundjonas/foldersheets/sync"
)

const mimeTypeFolder = "application/vnd.google-apps.folder"

const folderFields = "nextPageToken, files(id, name)"

// Verify the folder store contracts at compile time.
var (
	_ sync.Store  = (*Store)(nil)
	_ sync.Folder = (*Folder)(nil)
)

type Store struct {
	service *drive.Service
}

func NewStore(service *drive.Service) *Store {
	return &Store{
		service: service,
	}
}

// ResolveRoot resolves the top-level folder by its Drive file ID. Fails with
// sync.ErrNotFound when the ID does not exist (or is not a folder) and
// sync.ErrPermissionDenied when it is not accessible.
func (s *Store) ResolveRoot(ctx context.Context, id string) (sync.Folder, error) {
	file, err := s.service.Files.Get(id).
		SupportsAllDrives(true).
		Fields("id, name, mimeType").
		Context(ctx).
		Do()
	if err != nil {
		var gerr *googleapi.Error
		if errors.As(err, &gerr) {
			switch gerr.Code {
			case http.StatusNotFound:
				return nil, fmt.Errorf("folder '%s': %w", id, sync.ErrNotFound)
			case http.StatusForbidden:
				return nil, fmt.Errorf("folder '%s': %w", id, sync.ErrPermissionDenied)
			}
		}
		return nil, fmt.Errorf("error resolving folder '%s' (%w)", id, err)
	}

	if file.MimeType != mimeTypeFolder {
		return nil, fmt.Errorf("'%s' is not a folder: %w", id, sync.ErrNotFound)
	}

	return &Folder{
		service: s.service,
		id:      file.Id,
		name:    file.Name,
	}, nil
}

// Folder is a live Google Drive folder.
type Folder struct {
	service *drive.Service
	id      string
	name    string
}

func (f *Folder) Name() string {
	return f.name
}

func (f *Folder) ID() string {
	return f.id
}

func (f *Folder) Children(ctx context.Context) ([]sync.Folder, error) {
	q := fmt.Sprintf("'%s' in parents and mimeType = '%s' and trashed = false", f.id, mimeTypeFolder)

	return f.query(ctx, q)
}

func (f *Folder) ChildrenNamed(ctx context.Context, name string) ([]sync.Folder, error) {
	q := fmt.Sprintf("name = '%s' and '%s' in parents and mimeType = '%s' and trashed = false",
		escapeQuery(name), f.id, mimeTypeFolder)

	return f.query(ctx, q)
}

func (f *Folder) CreateChild(ctx context.Context, name string) (sync.Folder, error) {
	file, err := f.service.Files.Create(&drive.File{
		Name:     name,
		MimeType: mimeTypeFolder,
		Parents:  []string{f.id},
	}).
		SupportsAllDrives(true).
		Fields("id, name").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("error creating folder '%s' (%w)", name, err)
	}

	return &Folder{
		service: f.service,
		id:      file.Id,
		name:    file.Name,
	}, nil
}

func (f *Folder) query(ctx context.Context, q string) ([]sync.Folder, error) {
	folders := []sync.Folder{}

	err := f.service.Files.List().
		SupportsAllDrives(true).
		IncludeItemsFromAllDrives(true).
		Q(q).
		Fields(folderFields).
		Pages(ctx, func(list *drive.FileList) error {
			for _, file := range list.Files {
				folders = append(folders, &Folder{
					service: f.service,
					id:      file.Id,
					name:    file.Name,
				})
			}
			return nil
		})
	if err != nil {
		return nil, fmt.Errorf("error listing folders (%w)", err)
	}

	return folders, nil
}

// escapeQuery escapes a folder name for use inside a Drive query string
// literal.
func escapeQuery(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "'", `\'`)
	return s
}
