package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/rootbuild/internal/domain/commands"
	"github.com/rios0rios0/rootbuild/internal/domain/entities"
)

// CleanController handles the "clean" subcommand.
type CleanController struct {
	command commands.RunTask
}

// NewCleanController creates a new CleanController.
func NewCleanController(command commands.RunTask) *CleanController {
	return &CleanController{command: command}
}

// GetBind returns the Cobra command metadata for the clean controller.
func (it *CleanController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "clean",
		Short: "Delete the relocated build directory",
		Long: `Delete the relocated build directory and everything in it.
Succeeds without doing anything when the directory does not exist.`,
	}
}

// Execute runs the clean task.
func (it *CleanController) Execute(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return err
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	if runErr := it.command.Execute(context.Background(), settings, commands.RunTaskOptions{
		ProjectDir: projectDir(cmd),
		Tasks:      []string{settings.CleanTask},
		DryRun:     dryRun,
	}); runErr != nil {
		logger.Errorf("Clean failed: %v", runErr)
		return runErr
	}

	return nil
}
