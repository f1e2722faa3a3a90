package department

import "context"

type DepartmentRepository interface {
	Create(ctx context.Context, dept Department) (Department, error)

	GetByID(ctx context.Context, id string) (Department, error)

	// List retrieves all departments ordered by name.
	List(ctx context.Context) ([]Department, error)

	Update(ctx context.Context, dept Department) (Department, error)

	Delete(ctx context.Context, id string) error
}
