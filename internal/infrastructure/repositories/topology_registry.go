package repositories

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/rootbuild/internal/domain/entities"
	domainRepos "github.com/rios0rios0/rootbuild/internal/domain/repositories"
)

var _ domainRepos.TopologyRepository = (*TopologyRegistry)(nil)

// TopologyRegistry manages all registered topology sources, in registration order.
// It is itself a TopologyRepository delegating to the first source that detects the directory.
type TopologyRegistry struct {
	sources []domainRepos.TopologyRepository
}

// NewTopologyRegistry creates an empty topology registry.
func NewTopologyRegistry() *TopologyRegistry {
	return &TopologyRegistry{}
}

// Register adds a topology source. Sources registered first take precedence.
func (r *TopologyRegistry) Register(source domainRepos.TopologyRepository) {
	r.sources = append(r.sources, source)
}

// Get returns the source with the given name, or nil if not registered.
func (r *TopologyRegistry) Get(name string) domainRepos.TopologyRepository {
	for _, source := range r.sources {
		if source.Name() == name {
			return source
		}
	}
	return nil
}

// Names returns the list of registered source names.
func (r *TopologyRegistry) Names() []string {
	names := make([]string, 0, len(r.sources))
	for _, source := range r.sources {
		names = append(names, source.Name())
	}
	return names
}

// Resolve returns the first source recognizing rootDir.
func (r *TopologyRegistry) Resolve(rootDir string) (domainRepos.TopologyRepository, error) {
	for _, source := range r.sources {
		if source.Detect(rootDir) {
			return source, nil
		}
	}
	return nil, fmt.Errorf("%w in %s (tried %v)", entities.ErrTopologyNotFound, rootDir, r.Names())
}

// Name returns the registry identifier.
func (r *TopologyRegistry) Name() string {
	return "registry"
}

// Detect returns true if any registered source recognizes rootDir.
func (r *TopologyRegistry) Detect(rootDir string) bool {
	_, err := r.Resolve(rootDir)
	return err == nil
}

// Load detects the appropriate source and loads the topology from it.
func (r *TopologyRegistry) Load(ctx context.Context, rootDir string) (*entities.Topology, error) {
	source, err := r.Resolve(rootDir)
	if err != nil {
		return nil, err
	}
	logger.Debugf("Loading project topology with %q source", source.Name())
	return source.Load(ctx, rootDir)
}
