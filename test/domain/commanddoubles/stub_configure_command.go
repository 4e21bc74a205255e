//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/rootbuild/internal/domain/commands"
	"github.com/rios0rios0/rootbuild/internal/domain/entities"
)

// StubConfigureCommand is a stub implementation of commands.Configure.
type StubConfigureCommand struct {
	Configuration    *entities.Configuration
	ExecuteErr       error
	ExecuteCallCount int
	LastSettings     *entities.Settings
	LastOpts         commands.ConfigureOptions
}

var _ commands.Configure = (*StubConfigureCommand)(nil)

func (s *StubConfigureCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.ConfigureOptions,
) (*entities.Configuration, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	if s.ExecuteErr != nil {
		return nil, s.ExecuteErr
	}
	return s.Configuration, nil
}
