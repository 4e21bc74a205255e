package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/rootbuild/internal/domain/entities"
	"github.com/rios0rios0/rootbuild/internal/domain/repositories"
)

// Configure is the interface for evaluating the root build configuration.
type Configure interface {
	Execute(ctx context.Context, settings *entities.Settings, opts ConfigureOptions) (*entities.Configuration, error)
}

// ConfigureOptions holds runtime options for a configuration pass.
type ConfigureOptions struct {
	ProjectDir string
}

// ConfigureCommand applies the root build configuration to every project of the topology:
// shared repositories -> relocated build directories -> evaluation order -> tasks.
type ConfigureCommand struct {
	topologyRepository  repositories.TopologyRepository
	workspaceRepository repositories.WorkspaceRepository
}

// NewConfigureCommand creates a new ConfigureCommand.
func NewConfigureCommand(
	topologyRepository repositories.TopologyRepository,
	workspaceRepository repositories.WorkspaceRepository,
) *ConfigureCommand {
	return &ConfigureCommand{
		topologyRepository:  topologyRepository,
		workspaceRepository: workspaceRepository,
	}
}

// Execute evaluates the build rooted at opts.ProjectDir.
func (it *ConfigureCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts ConfigureOptions,
) (*entities.Configuration, error) {
	rootDir, err := filepath.Abs(opts.ProjectDir)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	topology, err := it.topologyRepository.Load(ctx, rootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load project topology: %w", err)
	}
	logger.Infof("Root project '%s' with %d sub-modules", topology.Root.Name, len(topology.Subprojects))

	applyRepositories(topology, settings.Repositories)

	buildDir := resolveBuildDir(topology.Root.Dir, settings.BuildDir)
	if isWithin(buildDir, topology.Root.Dir) {
		return nil, fmt.Errorf(
			"%w: %s would delete %s on clean", entities.ErrUnsafeBuildDir, buildDir, topology.Root.Dir,
		)
	}
	topology.Root.BuildDir = buildDir
	assignBuildDirs(topology, buildDir)

	if anchorErr := dependOnAnchor(topology, settings.EvaluationDependsOn); anchorErr != nil {
		return nil, anchorErr
	}

	order, err := entities.EvaluationOrder(topology)
	if err != nil {
		return nil, err
	}
	logger.Debugf("Evaluation order: %s", strings.Join(order, " -> "))

	tasks := entities.NewTaskRegistry()
	if registerErr := tasks.Register(newCleanTask(settings.CleanTask, buildDir)); registerErr != nil {
		return nil, registerErr
	}

	projects := make([]*entities.Project, 0, len(order))
	for _, path := range order {
		project, _ := topology.Find(path)
		projects = append(projects, project)
	}

	return &entities.Configuration{
		RootDir:         topology.Root.Dir,
		BuildDir:        buildDir,
		WorkspaceRoot:   it.workspaceRoot(ctx, topology.Root.Dir, buildDir),
		EvaluationOrder: order,
		Projects:        projects,
		Tasks:           tasks,
		Topology:        topology,
	}, nil
}

// workspaceRoot returns the enclosing workspace root, warning when the build directory escapes it.
// Workspace detection is advisory: failures are logged and yield an empty root.
func (it *ConfigureCommand) workspaceRoot(ctx context.Context, rootDir, buildDir string) string {
	root, err := it.workspaceRepository.Root(ctx, rootDir)
	if err != nil {
		logger.Warnf("Failed to detect workspace root: %v", err)
		return ""
	}
	if root != "" && !isWithin(root, buildDir) {
		logger.Warnf("Build directory %s is outside the workspace %s", buildDir, root)
	}
	return root
}

// applyRepositories gives every project, the root included, its own copy of the repository list.
func applyRepositories(topology *entities.Topology, repos []entities.ArtifactRepository) {
	for _, project := range topology.AllProjects() {
		project.Repositories = entities.CloneArtifactRepositories(repos)
	}
}

// resolveBuildDir places the build directory relative to the root project directory.
func resolveBuildDir(rootDir, buildDir string) string {
	if filepath.IsAbs(buildDir) {
		return filepath.Clean(buildDir)
	}
	return filepath.Join(rootDir, buildDir)
}

// assignBuildDirs nests each sub-module's output under buildDir, keyed by module name.
func assignBuildDirs(topology *entities.Topology, buildDir string) {
	owners := make(map[string]string, len(topology.Subprojects))
	for _, project := range topology.Subprojects {
		project.BuildDir = filepath.Join(buildDir, project.Name)
		if owner, ok := owners[project.BuildDir]; ok {
			logger.Warnf("Projects %s and %s share the build directory %s", owner, project.Path, project.BuildDir)
			continue
		}
		owners[project.BuildDir] = project.Path
	}
}

// dependOnAnchor makes every sub-module wait for the anchor project, which must exist.
func dependOnAnchor(topology *entities.Topology, anchorPath string) error {
	anchor, ok := topology.Find(anchorPath)
	if !ok || anchor.IsRoot() {
		return fmt.Errorf(
			"%w: project with path '%s' could not be found in root project '%s'",
			entities.ErrProjectNotFound, entities.NormalizeProjectPath(anchorPath), topology.Root.Name,
		)
	}

	for _, project := range topology.Subprojects {
		if project.Path == anchor.Path {
			continue
		}
		project.DependsOn(anchor.Path)
	}
	return nil
}

func newCleanTask(name, buildDir string) entities.Task {
	return entities.Task{
		Name:        name,
		Group:       "build",
		Description: "Deletes the build directory.",
		Type:        entities.TaskTypeDelete,
		Targets:     []string{buildDir},
	}
}

// isWithin reports whether path is root or lies below it.
func isWithin(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
