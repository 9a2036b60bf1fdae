package invoice

import (
	"context"
)

// InvoiceService defines business logic for invoice operations. The owning
// user is resolved from the JWT claims in the context. VAT is computed from
// the net amount and rate on create and update; it is never supplied by the
// client.
type InvoiceService interface {
	CreateInvoice(ctx context.Context, req CreateInvoiceRequest) (InvoiceResponse, error)
	GetInvoice(ctx context.Context, id string) (InvoiceResponse, error)
	ListInvoices(ctx context.Context, filter InvoiceFilter) (ListInvoiceResponse, error)
	UpdateInvoice(ctx context.Context, req UpdateInvoiceRequest) (InvoiceResponse, error)
	UpdateInvoiceStatus(ctx context.Context, req UpdateInvoiceStatusRequest) (InvoiceResponse, error)
	DeleteInvoice(ctx context.Context, id string) error
}
