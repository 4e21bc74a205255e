package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	if err := container.Provide(NewConfigureCommand); err != nil {
		return err
	}
	if err := container.Provide(NewRunTaskCommand); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *ConfigureCommand) Configure {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *RunTaskCommand) RunTask {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
