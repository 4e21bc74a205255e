//go:build unit

package commands_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/rootbuild/internal/domain/commands"
	"github.com/rios0rios0/rootbuild/internal/domain/entities"
	"github.com/rios0rios0/rootbuild/test/domain/entitybuilders"
	"github.com/rios0rios0/rootbuild/test/infrastructure/repositorydoubles"
)

func newConfigureCommand(
	topology *entities.Topology,
	workspaceRoot string,
) (*commands.ConfigureCommand, *repositorydoubles.StubTopologyRepository) {
	topologyRepo := &repositorydoubles.StubTopologyRepository{SourceName: "stub", DetectResult: true, Topology: topology}
	workspaceRepo := &repositorydoubles.StubWorkspaceRepository{WorkspaceRoot: workspaceRoot}
	return commands.NewConfigureCommand(topologyRepo, workspaceRepo), topologyRepo
}

func TestConfigureCommand(t *testing.T) {
	t.Parallel()

	t.Run("should relocate the build directory one level above the root", func(t *testing.T) {
		t.Parallel()

		// given
		rootDir := filepath.Join(t.TempDir(), "project", "android")
		topology := entitybuilders.NewTopologyBuilder().WithRootDir(rootDir).BuildTopology()
		cmd, _ := newConfigureCommand(topology, "")
		settings := entitybuilders.NewSettingsBuilder().BuildSettings()

		// when
		config, err := cmd.Execute(context.Background(), settings, commands.ConfigureOptions{ProjectDir: rootDir})

		// then
		require.NoError(t, err)
		expected := filepath.Join(filepath.Dir(rootDir), "build")
		assert.Equal(t, expected, config.BuildDir)
		assert.Equal(t, expected, topology.Root.BuildDir)
	})

	t.Run("should keep the build directory independent of the module count", func(t *testing.T) {
		t.Parallel()

		// given
		rootDir := filepath.Join(t.TempDir(), "android")
		settings := entitybuilders.NewSettingsBuilder().BuildSettings()
		small, _ := newConfigureCommand(
			entitybuilders.NewTopologyBuilder().WithRootDir(rootDir).BuildTopology(), "",
		)
		large, _ := newConfigureCommand(
			entitybuilders.NewTopologyBuilder().WithRootDir(rootDir).
				WithModules(":app", ":a", ":b", ":c", ":d").BuildTopology(), "",
		)

		// when
		smallConfig, smallErr := small.Execute(context.Background(), settings, commands.ConfigureOptions{ProjectDir: rootDir})
		largeConfig, largeErr := large.Execute(context.Background(), settings, commands.ConfigureOptions{ProjectDir: rootDir})

		// then
		require.NoError(t, smallErr)
		require.NoError(t, largeErr)
		assert.Equal(t, smallConfig.BuildDir, largeConfig.BuildDir)
	})

	t.Run("should nest each sub-module build directory by module name", func(t *testing.T) {
		t.Parallel()

		// given
		rootDir := filepath.Join(t.TempDir(), "android")
		topology := entitybuilders.NewTopologyBuilder().WithRootDir(rootDir).
			WithModules(":app", ":core", ":feature:login").BuildTopology()
		cmd, _ := newConfigureCommand(topology, "")

		// when
		config, err := cmd.Execute(
			context.Background(),
			entitybuilders.NewSettingsBuilder().BuildSettings(),
			commands.ConfigureOptions{ProjectDir: rootDir},
		)

		// then
		require.NoError(t, err)
		seen := map[string]bool{}
		for _, project := range topology.Subprojects {
			assert.Equal(t, filepath.Join(config.BuildDir, project.Name), project.BuildDir)
			assert.False(t, seen[project.BuildDir], "build dirs must be distinct")
			seen[project.BuildDir] = true
		}
	})

	t.Run("should give every project the repositories in the same order", func(t *testing.T) {
		t.Parallel()

		// given
		rootDir := filepath.Join(t.TempDir(), "android")
		topology := entitybuilders.NewTopologyBuilder().WithRootDir(rootDir).
			WithModules(":app", ":lib").BuildTopology()
		cmd, _ := newConfigureCommand(topology, "")

		// when
		config, err := cmd.Execute(
			context.Background(),
			entitybuilders.NewSettingsBuilder().BuildSettings(),
			commands.ConfigureOptions{ProjectDir: rootDir},
		)

		// then
		require.NoError(t, err)
		require.Len(t, config.Projects, 3)
		for _, project := range config.Projects {
			require.Len(t, project.Repositories, 2)
			assert.Equal(t, "google", project.Repositories[0].Name)
			assert.Equal(t, "mavenCentral", project.Repositories[1].Name)
		}
		config.Projects[1].Repositories[0].Name = "changed"
		assert.Equal(t, "google", config.Projects[2].Repositories[0].Name)
	})

	t.Run("should evaluate app before every other sub-module", func(t *testing.T) {
		t.Parallel()

		// given
		rootDir := filepath.Join(t.TempDir(), "android")
		topology := entitybuilders.NewTopologyBuilder().WithRootDir(rootDir).
			WithModules(":lib", ":feature:login", ":app", ":wear").BuildTopology()
		cmd, _ := newConfigureCommand(topology, "")

		// when
		config, err := cmd.Execute(
			context.Background(),
			entitybuilders.NewSettingsBuilder().BuildSettings(),
			commands.ConfigureOptions{ProjectDir: rootDir},
		)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{":", ":app", ":lib", ":feature", ":feature:login", ":wear"}, config.EvaluationOrder)
		feature, ok := config.Project(":feature")
		require.True(t, ok)
		assert.Equal(t, []string{":app"}, feature.EvaluationDependsOn)
		assert.Equal(t, filepath.Join(config.BuildDir, "feature"), feature.BuildDir)
		app, _ := config.Project(":app")
		assert.Empty(t, app.EvaluationDependsOn)
		lib, _ := config.Project(":lib")
		assert.Equal(t, []string{":app"}, lib.EvaluationDependsOn)
		assert.Empty(t, topology.Root.EvaluationDependsOn)
	})

	t.Run("should reject build directories containing the root project", func(t *testing.T) {
		t.Parallel()

		rootDir := filepath.Join(t.TempDir(), "project", "android")
		for _, buildDir := range []string{".", "..", string(filepath.Separator), filepath.Dir(rootDir), rootDir} {
			// given
			topology := entitybuilders.NewTopologyBuilder().WithRootDir(rootDir).BuildTopology()
			cmd, _ := newConfigureCommand(topology, "")
			settings := entitybuilders.NewSettingsBuilder().WithBuildDir(buildDir).BuildSettings()

			// when
			config, err := cmd.Execute(context.Background(), settings, commands.ConfigureOptions{ProjectDir: rootDir})

			// then
			require.ErrorIs(t, err, entities.ErrUnsafeBuildDir, buildDir)
			assert.Nil(t, config)
		}
	})

	t.Run("should accept a build directory nested inside the root project", func(t *testing.T) {
		t.Parallel()

		// given
		rootDir := filepath.Join(t.TempDir(), "android")
		topology := entitybuilders.NewTopologyBuilder().WithRootDir(rootDir).BuildTopology()
		cmd, _ := newConfigureCommand(topology, "")
		settings := entitybuilders.NewSettingsBuilder().WithBuildDir("build").BuildSettings()

		// when
		config, err := cmd.Execute(context.Background(), settings, commands.ConfigureOptions{ProjectDir: rootDir})

		// then
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(rootDir, "build"), config.BuildDir)
	})

	t.Run("should fail deterministically when app is missing", func(t *testing.T) {
		t.Parallel()

		// given
		rootDir := filepath.Join(t.TempDir(), "android")
		topology := entitybuilders.NewTopologyBuilder().WithRootDir(rootDir).
			WithModules(":lib", ":core").BuildTopology()
		cmd, _ := newConfigureCommand(topology, "")
		settings := entitybuilders.NewSettingsBuilder().BuildSettings()

		// when
		_, firstErr := cmd.Execute(context.Background(), settings, commands.ConfigureOptions{ProjectDir: rootDir})
		_, secondErr := cmd.Execute(context.Background(), settings, commands.ConfigureOptions{ProjectDir: rootDir})

		// then
		require.ErrorIs(t, firstErr, entities.ErrProjectNotFound)
		require.ErrorIs(t, secondErr, entities.ErrProjectNotFound)
		assert.Equal(t, firstErr.Error(), secondErr.Error())
		assert.Contains(t, firstErr.Error(), "':app'")
	})

	t.Run("should fail when app is missing even without sub-modules", func(t *testing.T) {
		t.Parallel()

		// given
		rootDir := filepath.Join(t.TempDir(), "android")
		topology := entitybuilders.NewTopologyBuilder().WithRootDir(rootDir).WithModules().BuildTopology()
		cmd, _ := newConfigureCommand(topology, "")

		// when
		config, err := cmd.Execute(
			context.Background(),
			entitybuilders.NewSettingsBuilder().BuildSettings(),
			commands.ConfigureOptions{ProjectDir: rootDir},
		)

		// then
		require.ErrorIs(t, err, entities.ErrProjectNotFound)
		assert.Nil(t, config)
	})

	t.Run("should register the clean task targeting the build directory", func(t *testing.T) {
		t.Parallel()

		// given
		rootDir := filepath.Join(t.TempDir(), "android")
		topology := entitybuilders.NewTopologyBuilder().WithRootDir(rootDir).BuildTopology()
		cmd, _ := newConfigureCommand(topology, "")

		// when
		config, err := cmd.Execute(
			context.Background(),
			entitybuilders.NewSettingsBuilder().BuildSettings(),
			commands.ConfigureOptions{ProjectDir: rootDir},
		)

		// then
		require.NoError(t, err)
		task, getErr := config.Tasks.Get("clean")
		require.NoError(t, getErr)
		assert.Equal(t, entities.TaskTypeDelete, task.Type)
		assert.Equal(t, []string{config.BuildDir}, task.Targets)
	})

	t.Run("should honor a custom anchor and build directory", func(t *testing.T) {
		t.Parallel()

		// given
		rootDir := filepath.Join(t.TempDir(), "android")
		topology := entitybuilders.NewTopologyBuilder().WithRootDir(rootDir).
			WithModules(":lib", ":mobile").BuildTopology()
		cmd, _ := newConfigureCommand(topology, "")
		settings := entitybuilders.NewSettingsBuilder().
			WithEvaluationDependsOn(":mobile").
			WithBuildDir("out").
			BuildSettings()

		// when
		config, err := cmd.Execute(context.Background(), settings, commands.ConfigureOptions{ProjectDir: rootDir})

		// then
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(rootDir, "out"), config.BuildDir)
		assert.Equal(t, []string{":", ":mobile", ":lib"}, config.EvaluationOrder)
	})

	t.Run("should record the workspace root", func(t *testing.T) {
		t.Parallel()

		// given
		workspace := t.TempDir()
		rootDir := filepath.Join(workspace, "android")
		topology := entitybuilders.NewTopologyBuilder().WithRootDir(rootDir).BuildTopology()
		cmd, _ := newConfigureCommand(topology, workspace)

		// when
		config, err := cmd.Execute(
			context.Background(),
			entitybuilders.NewSettingsBuilder().BuildSettings(),
			commands.ConfigureOptions{ProjectDir: rootDir},
		)

		// then
		require.NoError(t, err)
		assert.Equal(t, workspace, config.WorkspaceRoot)
	})

	t.Run("should load the topology from the absolute project directory", func(t *testing.T) {
		t.Parallel()

		// given
		topology := entitybuilders.NewTopologyBuilder().BuildTopology()
		cmd, topologyRepo := newConfigureCommand(topology, "")

		// when
		_, err := cmd.Execute(
			context.Background(),
			entitybuilders.NewSettingsBuilder().BuildSettings(),
			commands.ConfigureOptions{ProjectDir: "."},
		)

		// then
		require.NoError(t, err)
		require.Len(t, topologyRepo.LoadedDirs, 1)
		assert.True(t, filepath.IsAbs(topologyRepo.LoadedDirs[0]))
	})

	t.Run("should propagate topology load errors", func(t *testing.T) {
		t.Parallel()

		// given
		topologyRepo := &repositorydoubles.StubTopologyRepository{LoadErr: errors.New("boom")}
		cmd := commands.NewConfigureCommand(topologyRepo, &repositorydoubles.StubWorkspaceRepository{})

		// when
		config, err := cmd.Execute(
			context.Background(),
			entitybuilders.NewSettingsBuilder().BuildSettings(),
			commands.ConfigureOptions{ProjectDir: "."},
		)

		// then
		require.Error(t, err)
		assert.Nil(t, config)
		assert.Contains(t, err.Error(), "failed to load project topology: boom")
	})
}

func TestResolveBuildDir(t *testing.T) {
	t.Parallel()

	t.Run("should clean relative build directories against the root", func(t *testing.T) {
		t.Parallel()

		// given
		rootDir := filepath.Join(string(filepath.Separator), "work", "project", "android")

		// when
		result := commands.ResolveBuildDir(rootDir, "../build")

		// then
		assert.Equal(t, filepath.Join(string(filepath.Separator), "work", "project", "build"), result)
	})

	t.Run("should keep absolute build directories", func(t *testing.T) {
		t.Parallel()

		// given
		buildDir := filepath.Join(string(filepath.Separator), "tmp", "build")

		// when
		result := commands.ResolveBuildDir("/work/android", buildDir)

		// then
		assert.Equal(t, buildDir, result)
	})
}

func TestIsWithin(t *testing.T) {
	t.Parallel()

	t.Run("should detect paths inside and outside a root", func(t *testing.T) {
		t.Parallel()

		// given
		root := filepath.Join(string(filepath.Separator), "work", "project")

		// when / then
		assert.True(t, commands.IsWithin(root, root))
		assert.True(t, commands.IsWithin(root, filepath.Join(root, "build")))
		assert.True(t, commands.IsWithin(root, filepath.Join(root, "..build")))
		assert.False(t, commands.IsWithin(root, filepath.Join(root, "..", "build")))
	})
}
