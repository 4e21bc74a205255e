package entities

import (
	"path/filepath"
	"strings"
)

// Topology is the set of projects making up a build: one root and its sub-modules in declaration order.
type Topology struct {
	Root        *Project
	Subprojects []*Project
}

// NewTopology creates a topology holding only the root project.
// An empty rootName falls back to the base name of rootDir.
func NewTopology(rootName, rootDir string) *Topology {
	if rootName == "" {
		rootName = filepath.Base(rootDir)
	}
	return &Topology{
		Root: &Project{
			Path: RootProjectPath,
			Name: rootName,
			Dir:  rootDir,
		},
	}
}

// Include adds a sub-module. An empty dir maps the path below the root directory.
// Ancestors of a nested path (":feature" for ":feature:login") are included first, as Gradle does.
// Including an existing path returns the already registered project, moving it to dir when one is given.
func (t *Topology) Include(path, dir string) *Project {
	path = NormalizeProjectPath(path)
	for _, ancestor := range ancestorPaths(path) {
		if _, ok := t.Find(ancestor); !ok {
			t.Subprojects = append(t.Subprojects, t.newProject(ancestor, ""))
		}
	}

	if existing, ok := t.Find(path); ok {
		if dir != "" {
			existing.Dir = t.resolveDir(path, dir)
		}
		return existing
	}

	project := t.newProject(path, dir)
	t.Subprojects = append(t.Subprojects, project)
	return project
}

func (t *Topology) newProject(path, dir string) *Project {
	return &Project{
		Path: path,
		Name: ProjectNameFromPath(path),
		Dir:  t.resolveDir(path, dir),
	}
}

func (t *Topology) resolveDir(path, dir string) string {
	if dir == "" {
		dir = DefaultProjectDir(t.Root.Dir, path)
	} else if !filepath.IsAbs(dir) {
		dir = filepath.Join(t.Root.Dir, dir)
	}
	return filepath.Clean(dir)
}

// ancestorPaths returns the parents of path from the outermost inwards, excluding the root.
func ancestorPaths(path string) []string {
	segments := strings.Split(strings.TrimPrefix(path, RootProjectPath), ":")
	ancestors := make([]string, 0, len(segments))
	for i := 1; i < len(segments); i++ {
		ancestors = append(ancestors, RootProjectPath+strings.Join(segments[:i], ":"))
	}
	return ancestors
}

// Find returns the project registered under path.
func (t *Topology) Find(path string) (*Project, bool) {
	path = NormalizeProjectPath(path)
	if path == RootProjectPath {
		return t.Root, true
	}
	for _, project := range t.Subprojects {
		if project.Path == path {
			return project, true
		}
	}
	return nil, false
}

// AllProjects returns the root followed by every sub-module in declaration order.
func (t *Topology) AllProjects() []*Project {
	result := make([]*Project, 0, len(t.Subprojects)+1)
	result = append(result, t.Root)
	result = append(result, t.Subprojects...)
	return result
}
