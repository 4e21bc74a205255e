//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/rootbuild/internal/domain/entities"
	"github.com/rios0rios0/rootbuild/internal/domain/repositories"
)

// StubTopologyRepository implements repositories.TopologyRepository with a canned topology.
type StubTopologyRepository struct {
	// --- identity ---
	SourceName string

	// --- Detect ---
	DetectResult bool

	// --- Load ---
	Topology   *entities.Topology
	LoadErr    error
	LoadedDirs []string
}

var _ repositories.TopologyRepository = (*StubTopologyRepository)(nil)

func (s *StubTopologyRepository) Name() string { return s.SourceName }

func (s *StubTopologyRepository) Detect(_ string) bool { return s.DetectResult }

func (s *StubTopologyRepository) Load(_ context.Context, rootDir string) (*entities.Topology, error) {
	s.LoadedDirs = append(s.LoadedDirs, rootDir)
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	return s.Topology, nil
}
