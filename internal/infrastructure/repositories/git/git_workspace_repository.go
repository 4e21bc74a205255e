package git

import (
	"context"
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/rootbuild/internal/domain/repositories"
)

// WorkspaceRepository finds the Git worktree enclosing a directory.
type WorkspaceRepository struct{}

var _ repositories.WorkspaceRepository = (*WorkspaceRepository)(nil)

// NewWorkspaceRepository creates a new Git workspace locator.
func NewWorkspaceRepository() repositories.WorkspaceRepository {
	return &WorkspaceRepository{}
}

// Root walks up from dir to the enclosing worktree and returns its root.
// Directories outside any repository, and bare repositories, yield an empty root.
func (r *WorkspaceRepository) Root(ctx context.Context, dir string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	//nolint:exhaustruct // only parent detection is needed
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			logger.Debugf("%s is not inside a Git repository", dir)
			return "", nil
		}
		return "", fmt.Errorf("failed to open Git repository at %q: %w", dir, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		if errors.Is(err, gogit.ErrIsBareRepository) {
			return "", nil
		}
		return "", fmt.Errorf("failed to open worktree: %w", err)
	}

	return worktree.Filesystem.Root(), nil
}
