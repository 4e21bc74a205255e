package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/rootbuild/internal/domain/entities"
	"github.com/rios0rios0/rootbuild/internal/domain/repositories"
)

// RunTask is the interface for running registered tasks by name.
type RunTask interface {
	Execute(ctx context.Context, settings *entities.Settings, opts RunTaskOptions) error
}

// RunTaskOptions holds runtime options for a task run.
type RunTaskOptions struct {
	ProjectDir string
	Tasks      []string
	DryRun     bool
}

// RunTaskCommand configures the build and then runs the requested tasks in order.
type RunTaskCommand struct {
	configure            Configure
	fileSystemRepository repositories.FileSystemRepository
}

// NewRunTaskCommand creates a new RunTaskCommand.
func NewRunTaskCommand(
	configure Configure,
	fileSystemRepository repositories.FileSystemRepository,
) *RunTaskCommand {
	return &RunTaskCommand{
		configure:            configure,
		fileSystemRepository: fileSystemRepository,
	}
}

// Execute runs opts.Tasks. Every name is resolved before the first task starts,
// so an unknown name fails the run without side effects.
func (it *RunTaskCommand) Execute(ctx context.Context, settings *entities.Settings, opts RunTaskOptions) error {
	config, err := it.configure.Execute(ctx, settings, ConfigureOptions{ProjectDir: opts.ProjectDir})
	if err != nil {
		return err
	}

	tasks := make([]entities.Task, 0, len(opts.Tasks))
	for _, name := range opts.Tasks {
		task, getErr := config.Tasks.Get(name)
		if getErr != nil {
			return fmt.Errorf("%w (available: %v)", getErr, config.Tasks.Names())
		}
		tasks = append(tasks, task)
	}

	for _, task := range tasks {
		logger.Infof("> Task :%s", task.Name)
		if runErr := it.run(ctx, task, opts.DryRun); runErr != nil {
			return fmt.Errorf("execution failed for task ':%s': %w", task.Name, runErr)
		}
	}

	return nil
}

func (it *RunTaskCommand) run(ctx context.Context, task entities.Task, dryRun bool) error {
	switch task.Type {
	case entities.TaskTypeDelete:
		return it.runDelete(ctx, task, dryRun)
	default:
		return fmt.Errorf("unsupported task type: %s", task.Type)
	}
}

// runDelete removes every target. Absent targets leave the task up to date.
func (it *RunTaskCommand) runDelete(ctx context.Context, task entities.Task, dryRun bool) error {
	for _, target := range task.Targets {
		if err := ctx.Err(); err != nil {
			return err
		}

		exists, err := it.fileSystemRepository.Exists(target)
		if err != nil {
			return err
		}
		if !exists {
			logger.Infof("%s does not exist, nothing to delete", target)
			continue
		}

		if dryRun {
			logger.Infof("[dry-run] Would delete %s", target)
			continue
		}

		if removeErr := it.fileSystemRepository.RemoveAll(ctx, target); removeErr != nil {
			return removeErr
		}
		logger.Infof("Deleted %s", target)
	}

	return nil
}
