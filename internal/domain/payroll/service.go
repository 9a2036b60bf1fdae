package payroll

import (
	"context"
)

// PayrollService defines business logic for payroll runs. The owning user is
// resolved from the JWT claims in the context.
type PayrollService interface {
	// Preview runs the calculation without persisting anything.
	Preview(ctx context.Context, req CalculateRequest) (PreviewResponse, error)
	// CreateEntry runs the calculation and persists the result, chaining
	// cumulative totals from the employee's latest entry in the tax year.
	CreateEntry(ctx context.Context, req CalculateRequest) (EntryResponse, error)
	GetEntry(ctx context.Context, id string) (EntryResponse, error)
	ListEntries(ctx context.Context, filter EntryFilter) (ListEntryResponse, error)
	// DeleteEntry removes an entry; only the latest entry of its tax year may
	// be deleted so the cumulative chain stays intact.
	DeleteEntry(ctx context.Context, id string) error
	// RunPayroll creates entries for every active employee on the requested
	// pay frequency in one batch.
	RunPayroll(ctx context.Context, req RunPayrollRequest) (RunPayrollResponse, error)
	// GeneratePayslip renders the entry as a PDF payslip.
	GeneratePayslip(ctx context.Context, entryID string) ([]byte, string, error)
}
