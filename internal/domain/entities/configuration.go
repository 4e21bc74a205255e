package entities

// Configuration is the fully evaluated build: every project with its repositories,
// build directory and evaluation dependencies, plus the registered tasks.
type Configuration struct {
	RootDir         string        `yaml:"root_dir"`
	BuildDir        string        `yaml:"build_dir"`
	WorkspaceRoot   string        `yaml:"workspace_root,omitempty"`
	EvaluationOrder []string      `yaml:"evaluation_order"`
	Projects        []*Project    `yaml:"projects"`
	Tasks           *TaskRegistry `yaml:"tasks"`
	Topology        *Topology     `yaml:"-"`
}

// Project returns the evaluated project registered under path.
func (c *Configuration) Project(path string) (*Project, bool) {
	return c.Topology.Find(path)
}
