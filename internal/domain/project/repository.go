package project

import (
	"context"
)

// Repository defines the interface for project persistence operations
type Repository interface {
	// Create creates a new project
	Create(ctx context.Context, project *Project) error

	// Get retrieves a project by ID
	Get(ctx context.Context, id string) (*Project, error)

	// Update updates an existing project
	Update(ctx context.Context, project *Project) error

	// ListByOrder retrieves the projects attached to an order, either through
	// the direct order link or through an originating order line
	ListByOrder(ctx context.Context, orderID string) ([]*Project, error)
}

// TaskRepository defines the interface for task persistence operations
type TaskRepository interface {
	// Create creates a new task
	Create(ctx context.Context, task *Task) error

	// Get retrieves a task by ID
	Get(ctx context.Context, id string) (*Task, error)

	// Update updates an existing task
	Update(ctx context.Context, task *Task) error

	// ListByOrder retrieves the tasks funded by any line of an order
	ListByOrder(ctx context.Context, orderID string) ([]*Task, error)
}
