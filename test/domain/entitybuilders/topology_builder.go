//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/rootbuild/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// TopologyBuilder helps create test topologies with a fluent interface.
type TopologyBuilder struct {
	*testkit.BaseBuilder
	rootName string
	rootDir  string
	modules  []string
}

// NewTopologyBuilder creates a new topology builder with sensible defaults: an "android" root holding ":app".
func NewTopologyBuilder() *TopologyBuilder {
	return &TopologyBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		rootName:    "android",
		rootDir:     "/work/project/android",
		modules:     []string{":app"},
	}
}

// WithRootName sets the root project name.
func (b *TopologyBuilder) WithRootName(name string) *TopologyBuilder {
	b.rootName = name
	return b
}

// WithRootDir sets the root project directory.
func (b *TopologyBuilder) WithRootDir(dir string) *TopologyBuilder {
	b.rootDir = dir
	return b
}

// WithModules replaces the included module paths.
func (b *TopologyBuilder) WithModules(paths ...string) *TopologyBuilder {
	b.modules = paths
	return b
}

// WithModule appends an included module path.
func (b *TopologyBuilder) WithModule(path string) *TopologyBuilder {
	b.modules = append(b.modules, path)
	return b
}

// Build creates the topology (satisfies testkit.Builder interface).
func (b *TopologyBuilder) Build() interface{} {
	return b.BuildTopology()
}

// BuildTopology creates the topology with a concrete return type.
func (b *TopologyBuilder) BuildTopology() *entities.Topology {
	topology := entities.NewTopology(b.rootName, b.rootDir)
	for _, path := range b.modules {
		topology.Include(path, "")
	}
	return topology
}

// Reset clears the builder state, allowing it to be reused.
func (b *TopologyBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.rootName = "android"
	b.rootDir = "/work/project/android"
	b.modules = []string{":app"}
	return b
}

// Clone creates a deep copy of the TopologyBuilder.
func (b *TopologyBuilder) Clone() testkit.Builder {
	modules := make([]string, len(b.modules))
	copy(modules, b.modules)
	return &TopologyBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		rootName:    b.rootName,
		rootDir:     b.rootDir,
		modules:     modules,
	}
}
