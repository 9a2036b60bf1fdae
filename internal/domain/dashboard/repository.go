package dashboard

import (
	"context"
	"time"
)

// EmployeeCounts combines headcount by status in a single query
type EmployeeCounts struct {
	Total      int64
	Active     int64
	Terminated int64
}

// PayRunTotals aggregates one pay run (a tax year + period number batch)
type PayRunTotals struct {
	TaxYear         string
	PeriodNumber    int64
	PayFrequency    string
	EmployeeCount   int64
	GrossPence      int64
	NetPence        int64
	IncomeTaxPence  int64
	EmployeeNIPence int64
	EmployerNIPence int64
}

// PayrollYearTotals aggregates every payroll entry in a tax year
type PayrollYearTotals struct {
	EntryCount           int64
	GrossPence           int64
	NetPence             int64
	IncomeTaxPence       int64
	EmployeeNIPence      int64
	EmployerNIPence      int64
	EmployerPensionPence int64
}

// InvoiceCounts combines outstanding/overdue/draft invoice figures
type InvoiceCounts struct {
	OutstandingSalesPence    int64
	OutstandingPurchasePence int64
	OverdueCount             int64
	DraftCount               int64
}

// VATTotals sums VAT on paid invoices since the last submitted return
type VATTotals struct {
	OutputVATPence      int64
	InputVATPence       int64
	LastSubmittedPeriod *string
}

// DashboardRepository defines the interface for dashboard data access
type DashboardRepository interface {
	// GetEmployeeCounts returns total/active/terminated headcount in a single query
	GetEmployeeCounts(ctx context.Context, userID string) (*EmployeeCounts, error)

	// GetLatestPayRun returns totals for the most recently created pay run,
	// or nil when no payroll has been run yet
	GetLatestPayRun(ctx context.Context, userID string) (*PayRunTotals, error)

	// GetPayrollYearTotals returns year-to-date payroll totals for a tax year
	GetPayrollYearTotals(ctx context.Context, userID string, taxYear string) (*PayrollYearTotals, error)

	// GetInvoiceCounts returns outstanding amounts plus overdue/draft counts,
	// with overdue judged against the supplied date
	GetInvoiceCounts(ctx context.Context, userID string, today time.Time) (*InvoiceCounts, error)

	// GetVATTotals sums output/input VAT on paid invoices dated after the most
	// recently submitted return's period end (all time when none is submitted)
	GetVATTotals(ctx context.Context, userID string) (*VATTotals, error)
}
