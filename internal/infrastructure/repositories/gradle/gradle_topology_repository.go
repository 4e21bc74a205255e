package gradle

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/rootbuild/internal/domain/entities"
	"github.com/rios0rios0/rootbuild/internal/domain/repositories"
)

// SettingsFiles are the Gradle settings scripts recognized, in order of preference.
//
//nolint:gochecknoglobals // read-only lookup table
var SettingsFiles = []string{"settings.gradle.kts", "settings.gradle"}

var (
	blockCommentPattern = regexp.MustCompile(`(?s)/\*.*?\*/`)
	lineCommentPattern  = regexp.MustCompile(`(?m)(^|\s)//.*$`)
	rootNamePattern     = regexp.MustCompile(`rootProject\.name\s*=\s*["']([^"']+)["']`)
	includeCallPattern  = regexp.MustCompile(`\binclude\s*\(([^)]*)\)`)
	includeBarePattern  = regexp.MustCompile(`(?m)^\s*include\s+((?:["'][^"']*["']\s*,?\s*)+)`)
	quotedPattern       = regexp.MustCompile(`["']([^"']+)["']`)
	projectDirPattern   = regexp.MustCompile(
		`project\(\s*["']([^"']+)["']\s*\)\.projectDir\s*=\s*(?:new\s+File|File|file)\(\s*["']([^"']+)["']\s*\)`,
	)
)

// TopologyRepository reads the project topology from a Gradle settings script.
type TopologyRepository struct{}

var _ repositories.TopologyRepository = (*TopologyRepository)(nil)

// NewTopologyRepository creates a new Gradle settings reader.
func NewTopologyRepository() repositories.TopologyRepository {
	return &TopologyRepository{}
}

// Name returns the source identifier.
func (r *TopologyRepository) Name() string {
	return "gradle"
}

// Detect returns true if rootDir contains a Gradle settings script.
func (r *TopologyRepository) Detect(rootDir string) bool {
	return findSettingsFile(rootDir) != ""
}

// Load parses the settings script in rootDir.
func (r *TopologyRepository) Load(_ context.Context, rootDir string) (*entities.Topology, error) {
	path := findSettingsFile(rootDir)
	if path == "" {
		return nil, fmt.Errorf("%w: no Gradle settings script in %s", entities.ErrTopologyNotFound, rootDir)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}

	logger.Debugf("Parsing Gradle settings %s", path)
	return ParseSettings(string(data), rootDir), nil
}

// ParseSettings extracts the root project name, included projects and project directory
// overrides from the content of a Gradle settings script.
func ParseSettings(content, rootDir string) *entities.Topology {
	content = stripComments(content)

	rootName := ""
	if match := rootNamePattern.FindStringSubmatch(content); match != nil {
		rootName = match[1]
	}
	topology := entities.NewTopology(rootName, rootDir)

	for _, path := range includedPaths(content) {
		topology.Include(path, "")
	}

	for _, match := range projectDirPattern.FindAllStringSubmatch(content, -1) {
		project, ok := topology.Find(match[1])
		if !ok {
			logger.Warnf("projectDir set for %s, which is not included", match[1])
			continue
		}
		dir := match[2]
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(rootDir, dir)
		}
		project.Dir = filepath.Clean(dir)
	}

	return topology
}

// includedPaths returns every project path passed to include, in the order found in the script.
func includedPaths(content string) []string {
	type located struct {
		offset int
		args   string
	}

	var calls []located
	for _, idx := range includeCallPattern.FindAllStringSubmatchIndex(content, -1) {
		calls = append(calls, located{offset: idx[0], args: content[idx[2]:idx[3]]})
	}
	for _, idx := range includeBarePattern.FindAllStringSubmatchIndex(content, -1) {
		calls = append(calls, located{offset: idx[0], args: content[idx[2]:idx[3]]})
	}

	// keep declaration order across both syntaxes
	sort.SliceStable(calls, func(i, j int) bool {
		return calls[i].offset < calls[j].offset
	})

	var paths []string
	for _, call := range calls {
		for _, quoted := range quotedPattern.FindAllStringSubmatch(call.args, -1) {
			paths = append(paths, quoted[1])
		}
	}
	return paths
}

func stripComments(content string) string {
	content = blockCommentPattern.ReplaceAllString(content, "")
	return lineCommentPattern.ReplaceAllString(content, "$1")
}

func findSettingsFile(rootDir string) string {
	for _, name := range SettingsFiles {
		path := filepath.Join(rootDir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}
