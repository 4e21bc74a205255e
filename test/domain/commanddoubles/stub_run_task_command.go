//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/rootbuild/internal/domain/commands"
	"github.com/rios0rios0/rootbuild/internal/domain/entities"
)

// StubRunTaskCommand is a stub implementation of commands.RunTask.
type StubRunTaskCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         commands.RunTaskOptions
}

var _ commands.RunTask = (*StubRunTaskCommand)(nil)

func (s *StubRunTaskCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.RunTaskOptions,
) error {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.ExecuteErr
}
