package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/rootbuild/internal/domain/repositories"
	fsRepo "github.com/rios0rios0/rootbuild/internal/infrastructure/repositories/filesystem"
	gitRepo "github.com/rios0rios0/rootbuild/internal/infrastructure/repositories/git"
	gradleRepo "github.com/rios0rios0/rootbuild/internal/infrastructure/repositories/gradle"
	hclRepo "github.com/rios0rios0/rootbuild/internal/infrastructure/repositories/hclfile"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register topology registry with all settings formats, most specific first
	if err := container.Provide(func() *TopologyRegistry {
		reg := NewTopologyRegistry()
		reg.Register(hclRepo.NewTopologyRepository())
		reg.Register(gradleRepo.NewTopologyRepository())
		return reg
	}); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *TopologyRegistry) domainRepos.TopologyRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(fsRepo.NewLocalFileSystemRepository); err != nil {
		return err
	}
	if err := container.Provide(gitRepo.NewWorkspaceRepository); err != nil {
		return err
	}

	return nil
}
