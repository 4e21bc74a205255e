package repositories

import (
	"context"

	"github.com/rios0rios0/rootbuild/internal/domain/entities"
)

// TopologyRepository supplies the set of projects making up a build.
// Each implementation understands one settings format (Gradle settings scripts, HCL, etc.).
type TopologyRepository interface {
	// Name returns the source identifier (e.g. "gradle", "hcl").
	Name() string

	// Detect returns true if rootDir contains a settings file this source understands.
	Detect(rootDir string) bool

	// Load reads the settings file in rootDir and returns the declared topology.
	Load(ctx context.Context, rootDir string) (*entities.Topology, error)
}
