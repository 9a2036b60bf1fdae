package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	GetByID(ctx context.Context, userID string, id string) (Employee, error)
	List(ctx context.Context, userID string, filter EmployeeFilter) ([]Employee, int64, error)
	ListActive(ctx context.Context, userID string) ([]Employee, error)
	Update(ctx context.Context, updated Employee) (Employee, error)
	Delete(ctx context.Context, userID string, id string) error
	ExistsByNINumber(ctx context.Context, userID string, niNumber string, excludeID *string) (bool, error)
}
