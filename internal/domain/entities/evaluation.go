package entities

import (
	"fmt"
	"strings"
)

// EvaluationOrder returns the project paths in the order they must be evaluated.
//
// A project is only emitted once every project it depends on has been emitted.
// Among the projects that are ready, the one declared first wins, so the root
// always comes first and the result is deterministic for a given topology.
func EvaluationOrder(topology *Topology) ([]string, error) {
	projects := topology.AllProjects()

	for _, project := range projects {
		for _, dep := range project.EvaluationDependsOn {
			if _, ok := topology.Find(dep); !ok {
				return nil, fmt.Errorf(
					"%w: project with path '%s' could not be found in root project '%s'",
					ErrProjectNotFound, dep, topology.Root.Name,
				)
			}
		}
	}

	emitted := make(map[string]bool, len(projects))
	order := make([]string, 0, len(projects))

	for len(order) < len(projects) {
		next := nextReady(projects, emitted)
		// Anchor edges alone never cycle; this catches edges added through Project.DependsOn elsewhere.
		if next == nil {
			return nil, fmt.Errorf("%w between %s", ErrEvaluationCycle, strings.Join(pending(projects, emitted), ", "))
		}
		emitted[next.Path] = true
		order = append(order, next.Path)
	}

	return order, nil
}

// nextReady returns the first declared project whose dependencies were all emitted.
func nextReady(projects []*Project, emitted map[string]bool) *Project {
	for _, project := range projects {
		if emitted[project.Path] {
			continue
		}
		ready := true
		for _, dep := range project.EvaluationDependsOn {
			if !emitted[NormalizeProjectPath(dep)] {
				ready = false
				break
			}
		}
		if ready {
			return project
		}
	}
	return nil
}

func pending(projects []*Project, emitted map[string]bool) []string {
	var result []string
	for _, project := range projects {
		if !emitted[project.Path] {
			result = append(result, project.Path)
		}
	}
	return result
}
