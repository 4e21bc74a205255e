package controllers

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/rootbuild/internal/domain/commands"
	"github.com/rios0rios0/rootbuild/internal/domain/entities"
)

const (
	outputText = "text"
	outputYAML = "yaml"
)

// ProjectsController handles the "projects" subcommand.
type ProjectsController struct {
	command commands.Configure
}

// NewProjectsController creates a new ProjectsController.
func NewProjectsController(command commands.Configure) *ProjectsController {
	return &ProjectsController{command: command}
}

// GetBind returns the Cobra command metadata for the projects controller.
func (it *ProjectsController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "projects",
		Short: "Show the evaluated project configuration",
		Long: `Evaluate the root build configuration and print every project in
evaluation order, with its build directory and artifact repositories.`,
	}
}

// Execute prints the evaluated configuration.
func (it *ProjectsController) Execute(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return err
	}

	config, err := it.command.Execute(context.Background(), settings, commands.ConfigureOptions{
		ProjectDir: projectDir(cmd),
	})
	if err != nil {
		logger.Errorf("Configuration failed: %v", err)
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	switch output {
	case outputYAML:
		encoder := yaml.NewEncoder(cmd.OutOrStdout())
		if encodeErr := encoder.Encode(config); encodeErr != nil {
			return encodeErr
		}
		return encoder.Close()
	case outputText, "":
		return writeProjects(cmd.OutOrStdout(), config)
	default:
		return fmt.Errorf("unknown output format %q (expected %s or %s)", output, outputText, outputYAML)
	}
}

// AddFlags adds the projects-specific flags to the given Cobra command.
func (it *ProjectsController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", outputText, "Output format (text, yaml)")
}

func writeProjects(out io.Writer, config *entities.Configuration) error {
	writer := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0) //nolint:mnd // column padding
	fmt.Fprintf(writer, "Root directory:\t%s\n", config.RootDir)
	fmt.Fprintf(writer, "Build directory:\t%s\n", config.BuildDir)
	if config.WorkspaceRoot != "" {
		fmt.Fprintf(writer, "Workspace:\t%s\n", config.WorkspaceRoot)
	}
	fmt.Fprintln(writer)
	fmt.Fprintln(writer, "PROJECT\tNAME\tBUILD DIR\tREPOSITORIES\tDEPENDS ON")

	for _, project := range config.Projects {
		names := make([]string, 0, len(project.Repositories))
		for _, repo := range project.Repositories {
			names = append(names, repo.Name)
		}
		dependsOn := strings.Join(project.EvaluationDependsOn, ",")
		if dependsOn == "" {
			dependsOn = "-"
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\n",
			project.Path, project.Name, project.BuildDir, strings.Join(names, ","), dependsOn)
	}

	return writer.Flush()
}
