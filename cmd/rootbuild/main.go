package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/rootbuild/internal"
	"github.com/rios0rios0/rootbuild/internal/domain/entities"
	"github.com/rios0rios0/rootbuild/internal/infrastructure/controllers"
)

func buildRootCommand(runController *controllers.RunController) *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "rootbuild [task...]",
		Short: "Root build orchestrator for multi-module projects",
		Long: `Configures every module of a multi-module project from the root:
declares the shared artifact repositories, relocates the build output
to <project>/../build, makes every module evaluate after :app, and
registers a "clean" task that deletes the relocated build directory.

Usage modes:
  rootbuild clean           Delete the relocated build directory
  rootbuild projects        Show the evaluated configuration
  rootbuild tasks           List registered tasks
  rootbuild <task>...       Run the named tasks`,
		Args:          cobra.ArbitraryArgs,
		Version:       entities.ToolVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, args []string) error {
			return runController.Execute(command, args)
		},
	}

	// Global persistent flags
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().StringP("project-dir", "p", ".",
		"Root project directory")
	cmd.PersistentFlags().Bool("dry-run", false,
		"Show what would be done without making changes")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			RunE: func(command *cobra.Command, arguments []string) error {
				return ctrl.Execute(command, arguments)
			},
		}

		// Add controller-specific flags
		if fc, ok := ctrl.(interface{ AddFlags(cmd *cobra.Command) }); ok {
			fc.AddFlags(subCmd)
		}

		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	// Inject controllers via DIG
	appContext := injectAppContext()
	cobraRoot := buildRootCommand(appContext.GetRunController())

	// Add all subcommands
	addSubcommands(cobraRoot, appContext)

	if err := cobraRoot.Execute(); err != nil {
		logger.Fatalf("Error executing 'rootbuild': %s", err)
	}
}
