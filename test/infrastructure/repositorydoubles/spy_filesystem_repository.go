//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/rootbuild/internal/domain/repositories"
)

// SpyFileSystemRepository implements repositories.FileSystemRepository over an in-memory set of paths.
type SpyFileSystemRepository struct {
	// --- Exists ---
	ExistingPaths map[string]bool
	ExistsErr     error

	// --- RemoveAll ---
	RemoveErr    error
	RemovedPaths []string
}

var _ repositories.FileSystemRepository = (*SpyFileSystemRepository)(nil)

func (s *SpyFileSystemRepository) Exists(path string) (bool, error) {
	if s.ExistsErr != nil {
		return false, s.ExistsErr
	}
	return s.ExistingPaths[path], nil
}

func (s *SpyFileSystemRepository) RemoveAll(_ context.Context, path string) error {
	if s.RemoveErr != nil {
		return s.RemoveErr
	}
	s.RemovedPaths = append(s.RemovedPaths, path)
	delete(s.ExistingPaths, path)
	return nil
}
