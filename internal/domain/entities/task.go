package entities

import "fmt"

// TaskType identifies the action a task performs when invoked.
type TaskType string

const (
	// TaskTypeDelete removes every target path recursively.
	TaskTypeDelete TaskType = "delete"
)

// Task is a named action registered on the root project.
type Task struct {
	Name        string   `yaml:"name"`
	Group       string   `yaml:"group,omitempty"`
	Description string   `yaml:"description,omitempty"`
	Type        TaskType `yaml:"type"`
	Targets     []string `yaml:"targets,omitempty"`
}

// TaskRegistry keeps the registered tasks in registration order.
type TaskRegistry struct {
	tasks map[string]Task
	names []string
}

// NewTaskRegistry creates an empty task registry.
func NewTaskRegistry() *TaskRegistry {
	return &TaskRegistry{
		tasks: make(map[string]Task),
	}
}

// Register adds a task. Names must be unique.
func (r *TaskRegistry) Register(task Task) error {
	if _, ok := r.tasks[task.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateTask, task.Name)
	}
	r.tasks[task.Name] = task
	r.names = append(r.names, task.Name)
	return nil
}

// Get returns the task registered under name.
func (r *TaskRegistry) Get(name string) (Task, error) {
	task, ok := r.tasks[name]
	if !ok {
		return Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, name)
	}
	return task, nil
}

// All returns every registered task in registration order.
func (r *TaskRegistry) All() []Task {
	result := make([]Task, 0, len(r.names))
	for _, name := range r.names {
		result = append(result, r.tasks[name])
	}
	return result
}

// Names returns the registered task names in registration order.
func (r *TaskRegistry) Names() []string {
	result := make([]string, len(r.names))
	copy(result, r.names)
	return result
}

// MarshalYAML renders the registry as its ordered task list.
func (r *TaskRegistry) MarshalYAML() (interface{}, error) {
	return r.All(), nil
}
