//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/rootbuild/internal/domain/repositories"
)

// StubWorkspaceRepository implements repositories.WorkspaceRepository with a fixed root.
type StubWorkspaceRepository struct {
	WorkspaceRoot string
	RootErr       error
}

var _ repositories.WorkspaceRepository = (*StubWorkspaceRepository)(nil)

func (s *StubWorkspaceRepository) Root(_ context.Context, _ string) (string, error) {
	return s.WorkspaceRoot, s.RootErr
}
