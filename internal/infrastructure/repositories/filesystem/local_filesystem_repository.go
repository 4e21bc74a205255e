package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/rootbuild/internal/domain/repositories"
)

// LocalFileSystemRepository operates on the local disk.
type LocalFileSystemRepository struct{}

var _ repositories.FileSystemRepository = (*LocalFileSystemRepository)(nil)

// NewLocalFileSystemRepository creates a new local filesystem repository.
func NewLocalFileSystemRepository() repositories.FileSystemRepository {
	return &LocalFileSystemRepository{}
}

// Exists reports whether path is present.
func (r *LocalFileSystemRepository) Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("failed to stat %q: %w", path, err)
}

// RemoveAll deletes path recursively. A missing path is not an error.
func (r *LocalFileSystemRepository) RemoveAll(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	logger.Debugf("Removing %s", path)
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("failed to delete %q: %w", path, err)
	}
	return nil
}
