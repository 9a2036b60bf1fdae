package vatreturn

import (
	"context"
)

// VATReturnService defines business logic for VAT returns. The owning user is
// resolved from the JWT claims in the context.
type VATReturnService interface {
	// ComputeReturn builds a draft return from paid invoices in the period
	// and persists it.
	ComputeReturn(ctx context.Context, req ComputeReturnRequest) (ReturnResponse, error)
	GetReturn(ctx context.Context, id string) (ReturnResponse, error)
	ListReturns(ctx context.Context) (ListReturnResponse, error)
	// SubmitReturn locks a draft return; submitted returns cannot change.
	SubmitReturn(ctx context.Context, id string) (ReturnResponse, error)
	DeleteReturn(ctx context.Context, id string) error
}
