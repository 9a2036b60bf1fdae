package supplier

import (
	"context"
)

// SupplierService defines business logic for supplier operations. The owning
// user is resolved from the JWT claims in the context.
type SupplierService interface {
	CreateSupplier(ctx context.Context, req CreateSupplierRequest) (SupplierResponse, error)
	GetSupplier(ctx context.Context, id string) (SupplierResponse, error)
	ListSuppliers(ctx context.Context, filter SupplierFilter) (ListSupplierResponse, error)
	UpdateSupplier(ctx context.Context, req UpdateSupplierRequest) (SupplierResponse, error)
	DeleteSupplier(ctx context.Context, id string) error
}
