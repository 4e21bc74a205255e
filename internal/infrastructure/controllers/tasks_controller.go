package controllers

import (
	"context"
	"fmt"
	"text/tabwriter"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/rootbuild/internal/domain/commands"
	"github.com/rios0rios0/rootbuild/internal/domain/entities"
)

// TasksController handles the "tasks" subcommand.
type TasksController struct {
	command commands.Configure
}

// NewTasksController creates a new TasksController.
func NewTasksController(command commands.Configure) *TasksController {
	return &TasksController{command: command}
}

// GetBind returns the Cobra command metadata for the tasks controller.
func (it *TasksController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "tasks",
		Short: "List the tasks registered on the root project",
	}
}

// Execute prints every registered task.
func (it *TasksController) Execute(cmd *cobra.Command, _ []string) error {
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

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0) //nolint:mnd // column padding
	fmt.Fprintln(writer, "TASK\tGROUP\tDESCRIPTION")
	for _, task := range config.Tasks.All() {
		fmt.Fprintf(writer, "%s\t%s\t%s\n", task.Name, task.Group, task.Description)
	}
	return writer.Flush()
}
