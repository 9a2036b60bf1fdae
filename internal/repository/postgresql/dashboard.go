package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/paybooks/paybooks-backend-go/internal/domain/dashboard"
	"github.com/paybooks/paybooks-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// GetEmployeeCounts implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) GetEmployeeCounts(ctx context.Context, userID string) (*dashboard.EmployeeCounts, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status = 'active') AS active,
			COUNT(*) FILTER (WHERE status = 'terminated') AS terminated
		FROM employees
		WHERE user_id = $1
	`

	var counts dashboard.EmployeeCounts
	err := q.QueryRow(ctx, query, userID).Scan(&counts.Total, &counts.Active, &counts.Terminated)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee counts: %w", err)
	}

	return &counts, nil
}

// GetLatestPayRun implements dashboard.DashboardRepository. The latest run is
// the tax year + period of the most recently created entry; totals cover every
// entry in that run.
func (r *dashboardRepositoryImpl) GetLatestPayRun(ctx context.Context, userID string) (*dashboard.PayRunTotals, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH latest AS (
			SELECT tax_year, period_number, pay_frequency
			FROM payroll_entries
			WHERE user_id = $1
			ORDER BY created_at DESC
			LIMIT 1
		)
		SELECT l.tax_year, l.period_number, l.pay_frequency,
			COUNT(*) AS employee_count,
			COALESCE(SUM(pe.gross_pay_pence + pe.bonus_pence + pe.commission_pence), 0),
			COALESCE(SUM(pe.net_pay_pence), 0),
			COALESCE(SUM(pe.income_tax_pence), 0),
			COALESCE(SUM(pe.employee_ni_pence), 0),
			COALESCE(SUM(pe.employer_ni_pence), 0)
		FROM payroll_entries pe
		JOIN latest l ON pe.tax_year = l.tax_year
			AND pe.period_number = l.period_number
			AND pe.pay_frequency = l.pay_frequency
		WHERE pe.user_id = $1
		GROUP BY l.tax_year, l.period_number, l.pay_frequency
	`

	var totals dashboard.PayRunTotals
	err := q.QueryRow(ctx, query, userID).Scan(
		&totals.TaxYear, &totals.PeriodNumber, &totals.PayFrequency, &totals.EmployeeCount,
		&totals.GrossPence, &totals.NetPence, &totals.IncomeTaxPence,
		&totals.EmployeeNIPence, &totals.EmployerNIPence,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest pay run: %w", err)
	}

	return &totals, nil
}

// GetPayrollYearTotals implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) GetPayrollYearTotals(ctx context.Context, userID string, taxYear string) (*dashboard.PayrollYearTotals, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(gross_pay_pence + bonus_pence + commission_pence), 0),
			COALESCE(SUM(net_pay_pence), 0),
			COALESCE(SUM(income_tax_pence), 0),
			COALESCE(SUM(employee_ni_pence), 0),
			COALESCE(SUM(employer_ni_pence), 0),
			COALESCE(SUM(employer_pension_pence), 0)
		FROM payroll_entries
		WHERE user_id = $1 AND tax_year = $2
	`

	var totals dashboard.PayrollYearTotals
	err := q.QueryRow(ctx, query, userID, taxYear).Scan(
		&totals.EntryCount, &totals.GrossPence, &totals.NetPence, &totals.IncomeTaxPence,
		&totals.EmployeeNIPence, &totals.EmployerNIPence, &totals.EmployerPensionPence,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get payroll year totals: %w", err)
	}

	return &totals, nil
}

// GetInvoiceCounts implements dashboard.DashboardRepository. Outstanding means
// sent and unpaid; overdue means sent with a due date before today.
func (r *dashboardRepositoryImpl) GetInvoiceCounts(ctx context.Context, userID string, today time.Time) (*dashboard.InvoiceCounts, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COALESCE(SUM(total_amount_pence) FILTER (WHERE status = 'sent' AND direction = 'sales'), 0),
			COALESCE(SUM(total_amount_pence) FILTER (WHERE status = 'sent' AND direction = 'purchase'), 0),
			COUNT(*) FILTER (WHERE status = 'sent' AND due_date IS NOT NULL AND due_date < $2),
			COUNT(*) FILTER (WHERE status = 'draft')
		FROM invoices
		WHERE user_id = $1
	`

	var counts dashboard.InvoiceCounts
	err := q.QueryRow(ctx, query, userID, today).Scan(
		&counts.OutstandingSalesPence, &counts.OutstandingPurchasePence,
		&counts.OverdueCount, &counts.DraftCount,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice counts: %w", err)
	}

	return &counts, nil
}

// GetVATTotals implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) GetVATTotals(ctx context.Context, userID string) (*dashboard.VATTotals, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH last_submitted AS (
			SELECT period_key, period_end
			FROM vat_returns
			WHERE user_id = $1 AND status = 'submitted'
			ORDER BY period_end DESC
			LIMIT 1
		)
		SELECT
			COALESCE(SUM(i.vat_amount_pence) FILTER (WHERE i.direction = 'sales'), 0),
			COALESCE(SUM(i.vat_amount_pence) FILTER (WHERE i.direction = 'purchase'), 0),
			(SELECT period_key FROM last_submitted)
		FROM invoices i
		WHERE i.user_id = $1 AND i.status = 'paid'
			AND i.issue_date > COALESCE((SELECT period_end FROM last_submitted), '0001-01-01'::date)
	`

	var totals dashboard.VATTotals
	err := q.QueryRow(ctx, query, userID).Scan(
		&totals.OutputVATPence, &totals.InputVATPence, &totals.LastSubmittedPeriod,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get vat totals: %w", err)
	}

	return &totals, nil
}
