package vatreturn

import (
	"context"
	"time"
)

// InvoiceVATTotals aggregates paid invoices of one direction over a period.
type InvoiceVATTotals struct {
	VATPence int64
	NetPence int64
}

type VATReturnRepository interface {
	Create(ctx context.Context, newReturn Return) (Return, error)
	GetByID(ctx context.Context, userID string, id string) (Return, error)
	GetByPeriodKey(ctx context.Context, userID string, periodKey string) (Return, error)
	List(ctx context.Context, userID string) ([]Return, error)
	MarkSubmitted(ctx context.Context, userID string, id string) (Return, error)
	Delete(ctx context.Context, userID string, id string) error
	// SumPaidInvoices totals VAT and net amounts of paid invoices with an
	// issue date inside the period, per direction.
	SumPaidInvoices(ctx context.Context, userID string, direction string, start, end time.Time) (InvoiceVATTotals, error)
}
