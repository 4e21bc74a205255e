package controllers

import (
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/rootbuild/internal/domain/entities"
)

// loadSettings reads the settings file named by --config, or the first one found near
// --project-dir (the working directory is only searched when --project-dir is not given), falling back to the built-in defaults when there is none.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		var err error
		configPath, err = entities.FindConfigFile(projectDir(cmd), !cmd.Flags().Changed("project-dir"))
		if err != nil {
			logger.Debugf("No config file found, using defaults: %v", err)
			return entities.NewDefaultSettings(), nil
		}
	}

	logger.Infof("Using config file: %s", configPath)
	return entities.NewSettings(configPath)
}

func projectDir(cmd *cobra.Command) string {
	dir, _ := cmd.Flags().GetString("project-dir")
	if dir == "" {
		return "."
	}
	return dir
}
