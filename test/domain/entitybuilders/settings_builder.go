//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/rootbuild/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// SettingsBuilder helps create test settings with a fluent interface.
type SettingsBuilder struct {
	*testkit.BaseBuilder
	settings entities.Settings
}

// NewSettingsBuilder creates a new settings builder starting from the built-in defaults.
func NewSettingsBuilder() *SettingsBuilder {
	return &SettingsBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		settings:    *entities.NewDefaultSettings(),
	}
}

// WithRepositories replaces the artifact repositories.
func (b *SettingsBuilder) WithRepositories(repos ...entities.ArtifactRepository) *SettingsBuilder {
	b.settings.Repositories = repos
	return b
}

// WithBuildDir sets the build directory relative to the root project.
func (b *SettingsBuilder) WithBuildDir(dir string) *SettingsBuilder {
	b.settings.BuildDir = dir
	return b
}

// WithEvaluationDependsOn sets the anchor project path.
func (b *SettingsBuilder) WithEvaluationDependsOn(path string) *SettingsBuilder {
	b.settings.EvaluationDependsOn = path
	return b
}

// WithCleanTask sets the clean task name.
func (b *SettingsBuilder) WithCleanTask(name string) *SettingsBuilder {
	b.settings.CleanTask = name
	return b
}

// Build creates the settings (satisfies testkit.Builder interface).
func (b *SettingsBuilder) Build() interface{} {
	return b.BuildSettings()
}

// BuildSettings creates the settings with a concrete return type.
func (b *SettingsBuilder) BuildSettings() *entities.Settings {
	settings := b.settings
	settings.Repositories = entities.CloneArtifactRepositories(b.settings.Repositories)
	return &settings
}

// Reset clears the builder state, allowing it to be reused.
func (b *SettingsBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.settings = *entities.NewDefaultSettings()
	return b
}

// Clone creates a deep copy of the SettingsBuilder.
func (b *SettingsBuilder) Clone() testkit.Builder {
	return &SettingsBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		settings:    *b.BuildSettings(),
	}
}
