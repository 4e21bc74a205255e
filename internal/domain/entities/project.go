package entities

import (
	"path/filepath"
	"strings"
)

// RootProjectPath is the path of the root project in a topology.
const RootProjectPath = ":"

// Project is a single buildable unit: either the root project or one of its sub-modules.
type Project struct {
	Path                string               `yaml:"path"`
	Name                string               `yaml:"name"`
	Dir                 string               `yaml:"dir"`
	BuildDir            string               `yaml:"build_dir"`
	Repositories        []ArtifactRepository `yaml:"repositories"`
	EvaluationDependsOn []string             `yaml:"evaluation_depends_on,omitempty"`
}

// IsRoot reports whether the project is the root of its topology.
func (p *Project) IsRoot() bool {
	return p.Path == RootProjectPath
}

// DependsOn records that this project must be evaluated after the project at path.
// Duplicates are ignored.
func (p *Project) DependsOn(path string) {
	for _, existing := range p.EvaluationDependsOn {
		if existing == path {
			return
		}
	}
	p.EvaluationDependsOn = append(p.EvaluationDependsOn, path)
}

// NormalizeProjectPath turns "app", ":app" or "feature:login" into the absolute form ":app" / ":feature:login".
func NormalizeProjectPath(path string) string {
	path = strings.TrimSpace(path)
	if path == "" || path == RootProjectPath {
		return RootProjectPath
	}
	path = strings.TrimSuffix(path, ":")
	if !strings.HasPrefix(path, ":") {
		path = ":" + path
	}
	return path
}

// ProjectNameFromPath returns the last segment of a project path (":feature:login" -> "login").
func ProjectNameFromPath(path string) string {
	path = NormalizeProjectPath(path)
	if path == RootProjectPath {
		return ""
	}
	return path[strings.LastIndex(path, ":")+1:]
}

// DefaultProjectDir maps a project path onto a directory below rootDir (":feature:login" -> rootDir/feature/login).
func DefaultProjectDir(rootDir, path string) string {
	path = NormalizeProjectPath(path)
	if path == RootProjectPath {
		return rootDir
	}
	segments := strings.Split(strings.TrimPrefix(path, ":"), ":")
	return filepath.Join(append([]string{rootDir}, segments...)...)
}
