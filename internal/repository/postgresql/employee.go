package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/paybooks/paybooks-backend-go/internal/domain/employee"
	"github.com/paybooks/paybooks-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `id, user_id, first_name, last_name, email, ni_number, tax_code, ni_category,
		pay_frequency, annual_salary_pence, student_loan_plan, pension_opt_in,
		pension_contribution_bp, employer_pension_bp, start_date, status, created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.UserID, &emp.FirstName, &emp.LastName, &emp.Email, &emp.NINumber,
		&emp.TaxCode, &emp.NICategory, &emp.PayFrequency, &emp.AnnualSalaryPence,
		&emp.StudentLoanPlan, &emp.PensionOptIn, &emp.PensionContributionBasisPoints,
		&emp.EmployerPensionBasisPoints, &emp.StartDate, &emp.Status,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (
			user_id, first_name, last_name, email, ni_number, tax_code, ni_category,
			pay_frequency, annual_salary_pence, student_loan_plan, pension_opt_in,
			pension_contribution_bp, employer_pension_bp, start_date, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7,
			$8, $9, $10, $11,
			$12, $13, $14, $15
		)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		newEmployee.UserID, newEmployee.FirstName, newEmployee.LastName, newEmployee.Email,
		newEmployee.NINumber, newEmployee.TaxCode, newEmployee.NICategory,
		newEmployee.PayFrequency, newEmployee.AnnualSalaryPence, newEmployee.StudentLoanPlan,
		newEmployee.PensionOptIn, newEmployee.PensionContributionBasisPoints,
		newEmployee.EmployerPensionBasisPoints, newEmployee.StartDate, newEmployee.Status,
	))
	if err != nil {
		if strings.Contains(err.Error(), "employees_user_id_ni_number_key") {
			return employee.Employee{}, employee.ErrNINumberExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, userID string, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE id = $1 AND user_id = $2
	`

	found, err := scanEmployee(q.QueryRow(ctx, query, id, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return found, nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context, userID string, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, e.db)

	conditions := []string{"user_id = $1"}
	args := []interface{}{userID}
	argIdx := 2

	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(first_name ILIKE $%d OR last_name ILIKE $%d OR ni_number ILIKE $%d)", argIdx, argIdx, argIdx))
		args = append(args, "%"+filter.Search+"%")
		argIdx++
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, filter.Status)
		argIdx++
	}
	if filter.PayFrequency != "" {
		conditions = append(conditions, fmt.Sprintf("pay_frequency = $%d", argIdx))
		args = append(args, filter.PayFrequency)
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM employees WHERE %s", whereClause)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	query := fmt.Sprintf(`
		SELECT %s
		FROM employees
		WHERE %s
		ORDER BY last_name ASC, first_name ASC
		LIMIT $%d OFFSET $%d
	`, employeeColumns, whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

// ListActive implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ListActive(ctx context.Context, userID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE user_id = $1 AND status = $2
		ORDER BY last_name ASC, first_name ASC
	`

	rows, err := q.Query(ctx, query, userID, employee.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, updated employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET first_name = $1, last_name = $2, email = $3, ni_number = $4, tax_code = $5,
			ni_category = $6, pay_frequency = $7, annual_salary_pence = $8,
			student_loan_plan = $9, pension_opt_in = $10, pension_contribution_bp = $11,
			employer_pension_bp = $12, start_date = $13, status = $14, updated_at = NOW()
		WHERE id = $15 AND user_id = $16
		RETURNING ` + employeeColumns

	emp, err := scanEmployee(q.QueryRow(ctx, query,
		updated.FirstName, updated.LastName, updated.Email, updated.NINumber, updated.TaxCode,
		updated.NICategory, updated.PayFrequency, updated.AnnualSalaryPence,
		updated.StudentLoanPlan, updated.PensionOptIn, updated.PensionContributionBasisPoints,
		updated.EmployerPensionBasisPoints, updated.StartDate, updated.Status,
		updated.ID, updated.UserID,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		if strings.Contains(err.Error(), "employees_user_id_ni_number_key") {
			return employee.Employee{}, employee.ErrNINumberExists
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return emp, nil
}

// Delete implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, userID string, id string) error {
	q := GetQuerier(ctx, e.db)

	query := `
		DELETE FROM employees
		WHERE id = $1 AND user_id = $2
		RETURNING id
	`

	var deletedID string
	err := q.QueryRow(ctx, query, id, userID).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	return nil
}

// ExistsByNINumber implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ExistsByNINumber(ctx context.Context, userID string, niNumber string, excludeID *string) (bool, error) {
	q := GetQuerier(ctx, e.db)

	var query string
	args := []interface{}{userID, niNumber}
	if excludeID != nil {
		query = `SELECT EXISTS(SELECT 1 FROM employees WHERE user_id = $1 AND ni_number = $2 AND id <> $3)`
		args = append(args, *excludeID)
	} else {
		query = `SELECT EXISTS(SELECT 1 FROM employees WHERE user_id = $1 AND ni_number = $2)`
	}

	var exists bool
	if err := q.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check ni number: %w", err)
	}
	return exists, nil
}
