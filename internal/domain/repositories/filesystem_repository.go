package repositories

import "context"

// FileSystemRepository abstracts the filesystem operations tasks perform.
type FileSystemRepository interface {
	// Exists reports whether path is present.
	Exists(path string) (bool, error)

	// RemoveAll deletes path and everything below it. A missing path is not an error.
	RemoveAll(ctx context.Context, path string) error
}
