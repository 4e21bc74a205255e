package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultBuildDir is the relocated build directory, relative to the project root.
	DefaultBuildDir = "../build"
	// DefaultEvaluationAnchor is the project every sub-module waits for during evaluation.
	DefaultEvaluationAnchor = ":app"
	// DefaultCleanTask is the name of the task that deletes the build directory.
	DefaultCleanTask = "clean"
)

// Settings describes how the root project configures its sub-modules.
type Settings struct {
	Requires            string               `yaml:"requires"`
	Repositories        []ArtifactRepository `yaml:"repositories"`
	BuildDir            string               `yaml:"build_dir"`
	EvaluationDependsOn string               `yaml:"evaluation_depends_on"`
	CleanTask           string               `yaml:"clean_task"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// NewDefaultSettings returns the settings used when no file is present.
func NewDefaultSettings() *Settings {
	return &Settings{
		Repositories:        DefaultArtifactRepositories(),
		BuildDir:            DefaultBuildDir,
		EvaluationDependsOn: DefaultEvaluationAnchor,
		CleanTask:           DefaultCleanTask,
	}
}

// NewSettings reads and parses a settings file. Missing fields fall back to the defaults.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	return ParseSettings(data)
}

// ParseSettings decodes YAML settings, expands ${ENV_VAR} references and validates the result.
func ParseSettings(data []byte) (*Settings, error) {
	var settings Settings
	if unmarshalErr := yaml.Unmarshal(data, &settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.applyDefaults()
	for i := range settings.Repositories {
		settings.Repositories[i].URL = expandEnv(settings.Repositories[i].URL)
	}

	if validateErr := settings.Validate(); validateErr != nil {
		return nil, validateErr
	}

	return &settings, nil
}

// FindConfigFile searches for a settings file in the project directory and the standard locations.
// With searchWorkingDir unset, only the project directory and the home directory are searched,
// so a file next to the caller never applies to another project.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile(projectDir string, searchWorkingDir bool) (string, error) {
	locations := []string{projectDir}
	if searchWorkingDir {
		locations = append(locations, ".", ".config", "configs")
	}
	if homeDir, err := os.UserHomeDir(); err == nil && homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".rootbuild.yaml",
		".rootbuild.yml",
		"rootbuild.yaml",
		"rootbuild.yml",
	}

	for _, loc := range locations {
		if loc == "" {
			continue
		}
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// Validate checks for required settings values.
func (s *Settings) Validate() error {
	if len(s.Repositories) == 0 {
		return errors.New("at least one repository must be configured")
	}

	seen := make(map[string]bool, len(s.Repositories))
	for i, repo := range s.Repositories {
		if repo.Name == "" {
			return fmt.Errorf("repositories[%d].name is required", i)
		}
		if repo.URL == "" {
			return fmt.Errorf("repositories[%d].url is required (set inline or via ${ENV_VAR})", i)
		}
		if seen[repo.Name] {
			return fmt.Errorf("repositories[%d].name %q is declared twice", i, repo.Name)
		}
		seen[repo.Name] = true
	}

	if strings.TrimSpace(s.BuildDir) == "" {
		return errors.New("build_dir must not be empty")
	}
	if NormalizeProjectPath(s.EvaluationDependsOn) == RootProjectPath {
		return fmt.Errorf("evaluation_depends_on %q must be a sub-module path such as \":app\"", s.EvaluationDependsOn)
	}
	if s.CleanTask == "" {
		return errors.New("clean_task must not be empty")
	}

	return s.checkRequires()
}

// checkRequires compares the minimum version demanded by the settings with ToolVersion.
func (s *Settings) checkRequires() error {
	if s.Requires == "" {
		return nil
	}

	required := normalizeVersion(s.Requires)
	if !semver.IsValid(required) {
		return fmt.Errorf("requires %q is not a valid semantic version", s.Requires)
	}
	if semver.Compare(normalizeVersion(ToolVersion), required) < 0 {
		return fmt.Errorf("%w: settings require %s, running %s", ErrUnsupportedVersion, required, ToolVersion)
	}

	return nil
}

func (s *Settings) applyDefaults() {
	if s.Repositories == nil {
		s.Repositories = DefaultArtifactRepositories()
	}
	if s.BuildDir == "" {
		s.BuildDir = DefaultBuildDir
	}
	if s.EvaluationDependsOn == "" {
		s.EvaluationDependsOn = DefaultEvaluationAnchor
	}
	s.EvaluationDependsOn = NormalizeProjectPath(s.EvaluationDependsOn)
	if s.CleanTask == "" {
		s.CleanTask = DefaultCleanTask
	}
}

// expandEnv replaces ${ENV_VAR} references with their values.
func expandEnv(raw string) string {
	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}

// normalizeVersion ensures version has 'v' prefix for semver compatibility
func normalizeVersion(version string) string {
	version = strings.TrimSpace(version)
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}
