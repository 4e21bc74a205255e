package hclfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	logger "github.com/sirupsen/logrus"
	"github.com/zclconf/go-cty/cty"

	"github.com/rios0rios0/rootbuild/internal/domain/entities"
	"github.com/rios0rios0/rootbuild/internal/domain/repositories"
)

// SettingsFile is the name of the HCL topology file.
const SettingsFile = "rootbuild.hcl"

//nolint:gochecknoglobals // static schemas
var (
	rootSchema = &hcl.BodySchema{
		Blocks: []hcl.BlockHeaderSchema{
			{Type: "project"},
			{Type: "module", LabelNames: []string{"path"}},
		},
	}
	projectSchema = &hcl.BodySchema{
		Attributes: []hcl.AttributeSchema{{Name: "name"}},
	}
	moduleSchema = &hcl.BodySchema{
		Attributes: []hcl.AttributeSchema{{Name: "dir"}},
	}
)

// TopologyRepository reads the project topology from a rootbuild.hcl file.
type TopologyRepository struct{}

var _ repositories.TopologyRepository = (*TopologyRepository)(nil)

// NewTopologyRepository creates a new HCL topology reader.
func NewTopologyRepository() repositories.TopologyRepository {
	return &TopologyRepository{}
}

// Name returns the source identifier.
func (r *TopologyRepository) Name() string {
	return "hcl"
}

// Detect returns true if rootDir contains a rootbuild.hcl file.
func (r *TopologyRepository) Detect(rootDir string) bool {
	info, err := os.Stat(filepath.Join(rootDir, SettingsFile))
	return err == nil && !info.IsDir()
}

// Load parses rootbuild.hcl in rootDir.
func (r *TopologyRepository) Load(_ context.Context, rootDir string) (*entities.Topology, error) {
	path := filepath.Join(rootDir, SettingsFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}

	logger.Debugf("Parsing HCL topology %s", path)
	return ParseTopology(data, path, rootDir)
}

// ParseTopology decodes the project and module blocks of an HCL topology file.
func ParseTopology(content []byte, filename, rootDir string) (*entities.Topology, error) {
	parser := hclparse.NewParser()

	file, diags := parser.ParseHCL(content, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	bodyContent, diags := file.Body.Content(rootSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	rootName := ""
	var modules []*hcl.Block
	for _, block := range bodyContent.Blocks {
		switch block.Type {
		case "project":
			name, nameErr := stringAttribute(block, projectSchema, "name")
			if nameErr != nil {
				return nil, nameErr
			}
			rootName = name
		case "module":
			modules = append(modules, block)
		}
	}

	topology := entities.NewTopology(rootName, rootDir)
	for _, block := range modules {
		dir, dirErr := stringAttribute(block, moduleSchema, "dir")
		if dirErr != nil {
			return nil, dirErr
		}
		topology.Include(block.Labels[0], dir)
	}

	return topology, nil
}

// stringAttribute evaluates the named attribute of block, which must be a string when present.
func stringAttribute(block *hcl.Block, schema *hcl.BodySchema, name string) (string, error) {
	content, diags := block.Body.Content(schema)
	if diags.HasErrors() {
		return "", fmt.Errorf("invalid %s block at %s: %w", block.Type, block.DefRange, diags)
	}

	attr, ok := content.Attributes[name]
	if !ok {
		return "", nil
	}

	value, diags := attr.Expr.Value(&hcl.EvalContext{})
	if diags.HasErrors() {
		return "", fmt.Errorf("failed to evaluate %s.%s: %w", block.Type, name, diags)
	}
	if value.IsNull() || !value.IsKnown() || value.Type() != cty.String {
		return "", fmt.Errorf("%s.%s at %s must be a string", block.Type, name, attr.Range)
	}

	return value.AsString(), nil
}
