package invoice

import "context"

type InvoiceRepository interface {
	Create(ctx context.Context, newInvoice Invoice) (Invoice, error)
	GetByID(ctx context.Context, userID string, id string) (Invoice, error)
	List(ctx context.Context, userID string, filter InvoiceFilter) ([]Invoice, int64, error)
	Update(ctx context.Context, updated Invoice) (Invoice, error)
	UpdateStatus(ctx context.Context, userID string, id string, status Status) (Invoice, error)
	Delete(ctx context.Context, userID string, id string) error
	ExistsByNumber(ctx context.Context, userID string, invoiceNumber string, excludeID *string) (bool, error)
}
