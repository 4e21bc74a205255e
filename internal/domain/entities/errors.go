package entities

import "errors"

var (
	// ErrProjectNotFound is returned when a referenced project path is not part of the topology.
	ErrProjectNotFound = errors.New("project not found")

	// ErrEvaluationCycle is returned when evaluation dependencies form a cycle.
	ErrEvaluationCycle = errors.New("evaluation dependency cycle")

	// ErrTaskNotFound is returned when a task name is not registered.
	ErrTaskNotFound = errors.New("task not found")

	// ErrDuplicateTask is returned when a task name is registered twice.
	ErrDuplicateTask = errors.New("task already registered")

	// ErrTopologyNotFound is returned when no topology source recognizes the project directory.
	ErrTopologyNotFound = errors.New("no project topology found")

	// ErrUnsafeBuildDir is returned when the build directory is or contains the root project directory.
	ErrUnsafeBuildDir = errors.New("build directory would contain the root project")

	// ErrUnsupportedVersion is returned when the settings require a newer rootbuild.
	ErrUnsupportedVersion = errors.New("unsupported rootbuild version")
)
