package repositories

import "context"

// WorkspaceRepository locates the version-controlled workspace enclosing a directory.
type WorkspaceRepository interface {
	// Root returns the workspace root enclosing dir, or an empty string when dir is not inside one.
	Root(ctx context.Context, dir string) (string, error)
}
