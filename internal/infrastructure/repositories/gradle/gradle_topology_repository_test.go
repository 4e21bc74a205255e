//go:build unit

package gradle_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/rootbuild/internal/domain/entities"
	"github.com/rios0rios0/rootbuild/internal/infrastructure/repositories/gradle"
)

const kotlinSettings = `pluginManagement {
    val flutterSdkPath = run {
        val properties = java.util.Properties()
        file("local.properties").inputStream().use { properties.load(it) }
        properties.getProperty("flutter.sdk")
    }

    includeBuild("$flutterSdkPath/packages/flutter_tools/gradle")

    repositories {
        google()
        mavenCentral()
        gradlePluginPortal()
    }
}

rootProject.name = "android"

// include(":disabled")
include(":app")
/* include(":also-disabled") */
include(
    ":core",
    ":feature:login",
)
`

func paths(topology *entities.Topology) []string {
	result := make([]string, 0, len(topology.Subprojects))
	for _, project := range topology.Subprojects {
		result = append(result, project.Path)
	}
	return result
}

func TestParseSettings(t *testing.T) {
	t.Parallel()

	t.Run("should parse a Kotlin settings script", func(t *testing.T) {
		t.Parallel()

		// given
		rootDir := filepath.Join("work", "android")

		// when
		topology := gradle.ParseSettings(kotlinSettings, rootDir)

		// then
		assert.Equal(t, "android", topology.Root.Name)
		assert.Equal(t, []string{":app", ":core", ":feature", ":feature:login"}, paths(topology))
		login, ok := topology.Find(":feature:login")
		require.True(t, ok)
		assert.Equal(t, "login", login.Name)
		assert.Equal(t, filepath.Join(rootDir, "feature", "login"), login.Dir)
	})

	t.Run("should include the parent projects of nested paths", func(t *testing.T) {
		t.Parallel()

		// given
		rootDir := filepath.Join("work", "android")

		// when
		topology := gradle.ParseSettings(`include(":app", ":feature:login")`, rootDir)

		// then
		assert.Equal(t, []string{":app", ":feature", ":feature:login"}, paths(topology))
		feature, ok := topology.Find(":feature")
		require.True(t, ok)
		assert.Equal(t, "feature", feature.Name)
		assert.Equal(t, filepath.Join(rootDir, "feature"), feature.Dir)
	})

	t.Run("should parse a Groovy settings script", func(t *testing.T) {
		t.Parallel()

		// given
		content := "rootProject.name = 'legacy'\ninclude ':app', ':lib'\ninclude ':wear'\n"

		// when
		topology := gradle.ParseSettings(content, "legacy")

		// then
		assert.Equal(t, "legacy", topology.Root.Name)
		assert.Equal(t, []string{":app", ":lib", ":wear"}, paths(topology))
	})

	t.Run("should keep declaration order across include syntaxes", func(t *testing.T) {
		t.Parallel()

		// given
		content := "include ':first'\ninclude(\":second\")\ninclude ':third'\n"

		// when
		topology := gradle.ParseSettings(content, "root")

		// then
		assert.Equal(t, []string{":first", ":second", ":third"}, paths(topology))
	})

	t.Run("should apply project directory overrides", func(t *testing.T) {
		t.Parallel()

		// given
		rootDir := filepath.Join("work", "android")
		content := `include(":shared")
project(":shared").projectDir = file("../shared/android")
project(":missing").projectDir = file("nowhere")
`

		// when
		topology := gradle.ParseSettings(content, rootDir)

		// then
		shared, ok := topology.Find(":shared")
		require.True(t, ok)
		assert.Equal(t, filepath.Join("work", "shared", "android"), shared.Dir)
		assert.Len(t, topology.Subprojects, 1)
	})

	t.Run("should default the root name to the directory name", func(t *testing.T) {
		t.Parallel()

		// when
		topology := gradle.ParseSettings(`include(":app")`, filepath.Join("work", "mobile"))

		// then
		assert.Equal(t, "mobile", topology.Root.Name)
	})
}

func TestTopologyRepository(t *testing.T) {
	t.Parallel()

	t.Run("should detect and load settings.gradle.kts", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.gradle.kts"), []byte(kotlinSettings), 0o600))
		repo := gradle.NewTopologyRepository()

		// when
		detected := repo.Detect(dir)
		topology, err := repo.Load(context.Background(), dir)

		// then
		assert.True(t, detected)
		require.NoError(t, err)
		assert.Equal(t, "gradle", repo.Name())
		assert.Equal(t, dir, topology.Root.Dir)
		assert.Len(t, topology.Subprojects, 3)
	})

	t.Run("should fall back to settings.gradle", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.gradle"), []byte("include ':app'\n"), 0o600))
		repo := gradle.NewTopologyRepository()

		// when
		topology, err := repo.Load(context.Background(), dir)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{":app"}, paths(topology))
	})

	t.Run("should not detect a directory without settings script", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		repo := gradle.NewTopologyRepository()

		// when
		detected := repo.Detect(dir)
		_, err := repo.Load(context.Background(), dir)

		// then
		assert.False(t, detected)
		require.ErrorIs(t, err, entities.ErrTopologyNotFound)
	})
}
