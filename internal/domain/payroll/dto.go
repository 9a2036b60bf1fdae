package payroll

import (
	"github.com/paybooks/paybooks-backend-go/internal/paye"
	"github.com/paybooks/paybooks-backend-go/internal/pkg/validator"
)

// CalculateRequest drives both preview and create. When gross_pay_pence is
// omitted the period's share of the employee's annual salary is used.
type CalculateRequest struct {
	EmployeeID           string  `json:"employee_id"`
	TaxYear              string  `json:"tax_year"`
	PeriodNumber         int64   `json:"period_number"`
	GrossPayPence        *int64  `json:"gross_pay_pence,omitempty"`
	BonusPence           int64   `json:"bonus_pence"`
	CommissionPence      int64   `json:"commission_pence"`
	OtherDeductionsPence int64   `json:"other_deductions_pence"`
	PayDate              *string `json:"pay_date,omitempty"`
}

func (r *CalculateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.TaxYear) {
		errs = append(errs, validator.ValidationError{
			Field:   "tax_year",
			Message: "tax_year is required",
		})
	} else if !validator.IsValidTaxYear(r.TaxYear) {
		errs = append(errs, validator.ValidationError{
			Field:   "tax_year",
			Message: "tax_year must be in YYYY-YY format with consecutive years, e.g. 2025-26",
		})
	}

	if r.PeriodNumber < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "period_number",
			Message: "period_number must be at least 1",
		})
	}

	if r.GrossPayPence != nil && *r.GrossPayPence < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "gross_pay_pence",
			Message: "gross_pay_pence must not be negative",
		})
	}
	if r.BonusPence < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "bonus_pence",
			Message: "bonus_pence must not be negative",
		})
	}
	if r.CommissionPence < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "commission_pence",
			Message: "commission_pence must not be negative",
		})
	}
	if r.OtherDeductionsPence < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "other_deductions_pence",
			Message: "other_deductions_pence must not be negative",
		})
	}

	if r.PayDate != nil && !validator.IsValidDate(*r.PayDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "pay_date",
			Message: "pay_date must be a valid date in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// RunPayrollRequest generates entries for every active employee on the given
// pay frequency, deriving each gross from the employee's annual salary.
type RunPayrollRequest struct {
	TaxYear      string  `json:"tax_year"`
	PeriodNumber int64   `json:"period_number"`
	PayFrequency string  `json:"pay_frequency"`
	PayDate      *string `json:"pay_date,omitempty"`
}

func (r *RunPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.TaxYear) {
		errs = append(errs, validator.ValidationError{
			Field:   "tax_year",
			Message: "tax_year is required",
		})
	} else if !validator.IsValidTaxYear(r.TaxYear) {
		errs = append(errs, validator.ValidationError{
			Field:   "tax_year",
			Message: "tax_year must be in YYYY-YY format with consecutive years, e.g. 2025-26",
		})
	}

	frequency := paye.PayFrequency(r.PayFrequency)
	if frequency.PeriodsPerYear() == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "pay_frequency",
			Message: "pay_frequency must be one of weekly, biweekly, monthly",
		})
	} else if r.PeriodNumber < 1 || r.PeriodNumber > frequency.PeriodsPerYear() {
		errs = append(errs, validator.ValidationError{
			Field:   "period_number",
			Message: "period_number is out of range for the pay frequency",
		})
	}

	if r.PayDate != nil && !validator.IsValidDate(*r.PayDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "pay_date",
			Message: "pay_date must be a valid date in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PreviewResponse struct {
	EmployeeID   string                 `json:"employee_id"`
	EmployeeName string                 `json:"employee_name"`
	TaxYear      string                 `json:"tax_year"`
	PeriodNumber int64                  `json:"period_number"`
	PayFrequency string                 `json:"pay_frequency"`
	TaxCode      string                 `json:"tax_code"`
	Result       paye.CalculationResult `json:"result"`
}

type EntryResponse struct {
	ID                           string               `json:"id"`
	EmployeeID                   string               `json:"employee_id"`
	EmployeeName                 string               `json:"employee_name,omitempty"`
	TaxYear                      string               `json:"tax_year"`
	PeriodNumber                 int64                `json:"period_number"`
	PayFrequency                 string               `json:"pay_frequency"`
	TaxCode                      string               `json:"tax_code"`
	NICategory                   string               `json:"ni_category"`
	StudentLoanPlan              string               `json:"student_loan_plan,omitempty"`
	PayDate                      *string              `json:"pay_date,omitempty"`
	GrossPayPence                int64                `json:"gross_pay_pence"`
	BonusPence                   int64                `json:"bonus_pence"`
	CommissionPence              int64                `json:"commission_pence"`
	OtherDeductionsPence         int64                `json:"other_deductions_pence"`
	TaxablePayPence              int64                `json:"taxable_pay_pence"`
	IncomeTaxPence               int64                `json:"income_tax_pence"`
	EmployeeNIPence              int64                `json:"employee_ni_pence"`
	EmployerNIPence              int64                `json:"employer_ni_pence"`
	StudentLoanPence             int64                `json:"student_loan_pence"`
	EmployeePensionPence         int64                `json:"employee_pension_pence"`
	EmployerPensionPence         int64                `json:"employer_pension_pence"`
	NetPayPence                  int64                `json:"net_pay_pence"`
	CumulativeTaxableIncomePence int64                `json:"cumulative_taxable_income_pence"`
	CumulativeTaxPaidPence       int64                `json:"cumulative_tax_paid_pence"`
	TaxBreakdown                 []paye.BandBreakdown `json:"tax_breakdown"`
	CreatedAt                    string               `json:"created_at"`
}

type EntryFilter struct {
	EmployeeID string
	TaxYear    string
	Page       int
	Limit      int
}

func (f *EntryFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.TaxYear != "" && !validator.IsValidTaxYear(f.TaxYear) {
		errs = append(errs, validator.ValidationError{
			Field:   "tax_year",
			Message: "tax_year must be in YYYY-YY format with consecutive years, e.g. 2025-26",
		})
	}
	if f.Page < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be at least 1",
		})
	}
	if f.Limit < 1 || f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be between 1 and 100",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListEntryResponse struct {
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
	Showing    string          `json:"showing"`
	Entries    []EntryResponse `json:"entries"`
}

// RunSkip reports an employee the batch run left out and why.
type RunSkip struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Reason       string `json:"reason"`
}

type RunPayrollResponse struct {
	TaxYear      string          `json:"tax_year"`
	PeriodNumber int64           `json:"period_number"`
	PayFrequency string          `json:"pay_frequency"`
	Created      []EntryResponse `json:"created"`
	Skipped      []RunSkip       `json:"skipped"`
}
