package supplier

import "context"

type SupplierRepository interface {
	Create(ctx context.Context, newSupplier Supplier) (Supplier, error)
	GetByID(ctx context.Context, userID string, id string) (Supplier, error)
	List(ctx context.Context, userID string, filter SupplierFilter) ([]Supplier, int64, error)
	Update(ctx context.Context, updated Supplier) (Supplier, error)
	Delete(ctx context.Context, userID string, id string) error
}
