package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/rootbuild/internal/domain/commands"
	"github.com/rios0rios0/rootbuild/internal/domain/entities"
)

// RunController handles the "run" subcommand and the root command with task arguments.
type RunController struct {
	command commands.RunTask
}

// NewRunController creates a new RunController.
func NewRunController(command commands.RunTask) *RunController {
	return &RunController{command: command}
}

// GetBind returns the Cobra command metadata for the run controller.
func (it *RunController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "run [task...]",
		Short: "Run tasks registered on the root project",
		Long: `Configure every project of the build, then run the named tasks in order.
All names are resolved before the first task starts.`,
	}
}

// Execute runs the tasks named in args.
func (it *RunController) Execute(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return err
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	if runErr := it.command.Execute(context.Background(), settings, commands.RunTaskOptions{
		ProjectDir: projectDir(cmd),
		Tasks:      args,
		DryRun:     dryRun,
	}); runErr != nil {
		logger.Errorf("Build failed: %v", runErr)
		return runErr
	}

	logger.Info("BUILD SUCCESSFUL")
	return nil
}
