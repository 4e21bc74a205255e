package internal

import (
	"github.com/rios0rios0/rootbuild/internal/domain/entities"
	"github.com/rios0rios0/rootbuild/internal/infrastructure/controllers"
)

// AppInternal holds everything the CLI needs once the container is resolved.
type AppInternal struct {
	controllers   []entities.Controller
	runController *controllers.RunController
}

// NewAppInternal creates the AppInternal from the aggregated controllers.
func NewAppInternal(
	controllerList *[]entities.Controller,
	runController *controllers.RunController,
) *AppInternal {
	return &AppInternal{
		controllers:   *controllerList,
		runController: runController,
	}
}

// GetControllers returns every controller exposed as a subcommand.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}

// GetRunController returns the controller backing the root command.
func (it *AppInternal) GetRunController() *controllers.RunController {
	return it.runController
}
