package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/paybooks/paybooks-backend-go/internal/domain/payroll"
	"github.com/paybooks/paybooks-backend-go/internal/pkg/database"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

const payrollEntryColumns = `pe.id, pe.user_id, pe.employee_id, pe.tax_year, pe.period_number,
		pe.pay_frequency, pe.tax_code, pe.ni_category, pe.student_loan_plan, pe.pay_date,
		pe.gross_pay_pence, pe.bonus_pence, pe.commission_pence, pe.other_deductions_pence,
		pe.taxable_pay_pence, pe.income_tax_pence, pe.employee_ni_pence, pe.employer_ni_pence,
		pe.student_loan_pence, pe.employee_pension_pence, pe.employer_pension_pence,
		pe.net_pay_pence, pe.cumulative_taxable_income_pence, pe.cumulative_tax_paid_pence,
		pe.tax_breakdown, pe.created_at`

// scanEntry reads one payroll row plus the joined employee name. The JSONB
// breakdown column scans into bytes and unmarshals afterwards.
func scanEntry(row pgx.Row, withName bool) (payroll.Entry, error) {
	var entry payroll.Entry
	var breakdownBytes []byte

	dest := []interface{}{
		&entry.ID, &entry.UserID, &entry.EmployeeID, &entry.TaxYear, &entry.PeriodNumber,
		&entry.PayFrequency, &entry.TaxCode, &entry.NICategory, &entry.StudentLoanPlan, &entry.PayDate,
		&entry.GrossPayPence, &entry.BonusPence, &entry.CommissionPence, &entry.OtherDeductionsPence,
		&entry.TaxablePayPence, &entry.IncomeTaxPence, &entry.EmployeeNIPence, &entry.EmployerNIPence,
		&entry.StudentLoanPence, &entry.EmployeePensionPence, &entry.EmployerPensionPence,
		&entry.NetPayPence, &entry.CumulativeTaxableIncomePence, &entry.CumulativeTaxPaidPence,
		&breakdownBytes, &entry.CreatedAt,
	}
	if withName {
		dest = append(dest, &entry.EmployeeName)
	}

	if err := row.Scan(dest...); err != nil {
		return payroll.Entry{}, err
	}

	_ = json.Unmarshal(breakdownBytes, &entry.TaxBreakdown)

	return entry, nil
}

// CreateEntry implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) CreateEntry(ctx context.Context, entry payroll.Entry) (payroll.Entry, error) {
	q := GetQuerier(ctx, r.db)

	breakdownJSON, _ := json.Marshal(entry.TaxBreakdown)

	query := `
		INSERT INTO payroll_entries (
			id, user_id, employee_id, tax_year, period_number, pay_frequency, tax_code,
			ni_category, student_loan_plan, pay_date, gross_pay_pence, bonus_pence,
			commission_pence, other_deductions_pence, taxable_pay_pence, income_tax_pence,
			employee_ni_pence, employer_ni_pence, student_loan_pence, employee_pension_pence,
			employer_pension_pence, net_pay_pence, cumulative_taxable_income_pence,
			cumulative_tax_paid_pence, tax_breakdown
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7,
			$8, $9, $10, $11, $12,
			$13, $14, $15, $16,
			$17, $18, $19, $20,
			$21, $22, $23,
			$24, $25
		)
		RETURNING id, user_id, employee_id, tax_year, period_number,
			pay_frequency, tax_code, ni_category, student_loan_plan, pay_date,
			gross_pay_pence, bonus_pence, commission_pence, other_deductions_pence,
			taxable_pay_pence, income_tax_pence, employee_ni_pence, employer_ni_pence,
			student_loan_pence, employee_pension_pence, employer_pension_pence,
			net_pay_pence, cumulative_taxable_income_pence, cumulative_tax_paid_pence,
			tax_breakdown, created_at
	`

	created, err := scanEntry(q.QueryRow(ctx, query,
		entry.ID, entry.UserID, entry.EmployeeID, entry.TaxYear, entry.PeriodNumber,
		entry.PayFrequency, entry.TaxCode, entry.NICategory, entry.StudentLoanPlan, entry.PayDate,
		entry.GrossPayPence, entry.BonusPence, entry.CommissionPence, entry.OtherDeductionsPence,
		entry.TaxablePayPence, entry.IncomeTaxPence, entry.EmployeeNIPence, entry.EmployerNIPence,
		entry.StudentLoanPence, entry.EmployeePensionPence, entry.EmployerPensionPence,
		entry.NetPayPence, entry.CumulativeTaxableIncomePence, entry.CumulativeTaxPaidPence,
		breakdownJSON,
	), false)
	if err != nil {
		if strings.Contains(err.Error(), "payroll_entries_employee_id_tax_year_period_number_key") {
			return payroll.Entry{}, payroll.ErrEntryAlreadyExists
		}
		return payroll.Entry{}, fmt.Errorf("failed to create payroll entry: %w", err)
	}

	return created, nil
}

// GetEntryByID implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetEntryByID(ctx context.Context, userID string, id string) (payroll.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollEntryColumns + `,
			e.first_name || ' ' || e.last_name AS employee_name
		FROM payroll_entries pe
		JOIN employees e ON pe.employee_id = e.id
		WHERE pe.id = $1 AND pe.user_id = $2
	`

	entry, err := scanEntry(q.QueryRow(ctx, query, id, userID), true)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Entry{}, payroll.ErrEntryNotFound
		}
		return payroll.Entry{}, fmt.Errorf("failed to get payroll entry: %w", err)
	}

	return entry, nil
}

// GetLatestEntry implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetLatestEntry(ctx context.Context, userID string, employeeID string, taxYear string) (payroll.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollEntryColumns + `
		FROM payroll_entries pe
		WHERE pe.user_id = $1 AND pe.employee_id = $2 AND pe.tax_year = $3
		ORDER BY pe.period_number DESC
		LIMIT 1
	`

	entry, err := scanEntry(q.QueryRow(ctx, query, userID, employeeID, taxYear), false)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Entry{}, payroll.ErrEntryNotFound
		}
		return payroll.Entry{}, fmt.Errorf("failed to get latest payroll entry: %w", err)
	}

	return entry, nil
}

// ExistsForPeriod implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ExistsForPeriod(ctx context.Context, employeeID string, taxYear string, periodNumber int64) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS(
			SELECT 1 FROM payroll_entries
			WHERE employee_id = $1 AND tax_year = $2 AND period_number = $3
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, taxYear, periodNumber).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check payroll period: %w", err)
	}
	return exists, nil
}

// ListEntries implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListEntries(ctx context.Context, userID string, filter payroll.EntryFilter) ([]payroll.Entry, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"pe.user_id = $1"}
	args := []interface{}{userID}
	argIdx := 2

	if filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("pe.employee_id = $%d", argIdx))
		args = append(args, filter.EmployeeID)
		argIdx++
	}
	if filter.TaxYear != "" {
		conditions = append(conditions, fmt.Sprintf("pe.tax_year = $%d", argIdx))
		args = append(args, filter.TaxYear)
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM payroll_entries pe WHERE %s", whereClause)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll entries: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	query := fmt.Sprintf(`
		SELECT %s,
			e.first_name || ' ' || e.last_name AS employee_name
		FROM payroll_entries pe
		JOIN employees e ON pe.employee_id = e.id
		WHERE %s
		ORDER BY pe.tax_year DESC, pe.period_number DESC, e.last_name ASC
		LIMIT $%d OFFSET $%d
	`, payrollEntryColumns, whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll entries: %w", err)
	}
	defer rows.Close()

	var entries []payroll.Entry
	for rows.Next() {
		entry, err := scanEntry(rows, true)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

// DeleteEntry implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) DeleteEntry(ctx context.Context, userID string, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM payroll_entries
		WHERE id = $1 AND user_id = $2
		RETURNING id
	`

	var deletedID string
	err := q.QueryRow(ctx, query, id, userID).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrEntryNotFound
		}
		return fmt.Errorf("failed to delete payroll entry: %w", err)
	}

	return nil
}
