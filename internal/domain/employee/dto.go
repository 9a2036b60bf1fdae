package employee

import (
	"github.com/paybooks/paybooks-backend-go/internal/pkg/validator"
)

var (
	niCategories     = []string{"A", "B", "C", "H", "J", "M", "Z"}
	payFrequencies   = []string{"weekly", "biweekly", "monthly"}
	studentLoanPlans = []string{"plan1", "plan2", "plan4", "postgrad"}
	statuses         = []string{"active", "terminated"}
)

type CreateEmployeeRequest struct {
	FirstName                      string  `json:"first_name"`
	LastName                       string  `json:"last_name"`
	Email                          *string `json:"email,omitempty"`
	NINumber                       string  `json:"ni_number"`
	TaxCode                        string  `json:"tax_code"`
	NICategory                     string  `json:"ni_category"`
	PayFrequency                   string  `json:"pay_frequency"`
	AnnualSalaryPence              int64   `json:"annual_salary_pence"`
	StudentLoanPlan                string  `json:"student_loan_plan,omitempty"`
	PensionOptIn                   bool    `json:"pension_opt_in"`
	PensionContributionBasisPoints int64   `json:"pension_contribution_basis_points"`
	EmployerPensionBasisPoints     int64   `json:"employer_pension_basis_points"`
	StartDate                      *string `json:"start_date,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	if errs := r.validate(); len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *CreateEmployeeRequest) validate() validator.ValidationErrors {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}
	if len(r.FirstName) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name must not exceed 100 characters",
		})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name is required",
		})
	}
	if len(r.LastName) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name must not exceed 100 characters",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if validator.IsEmpty(r.NINumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "ni_number",
			Message: "ni_number is required",
		})
	} else if !validator.IsValidNINO(r.NINumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "ni_number",
			Message: "ni_number must be a valid National Insurance number, e.g. QQ123456C format with an allowed prefix",
		})
	}

	if validator.IsEmpty(r.TaxCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "tax_code",
			Message: "tax_code is required",
		})
	} else if !validator.IsValidTaxCode(r.TaxCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "tax_code",
			Message: "tax_code must be a valid PAYE tax code, e.g. 1257L, K475, BR, S1257L M1",
		})
	}

	if !validator.IsInSlice(r.NICategory, niCategories) {
		errs = append(errs, validator.ValidationError{
			Field:   "ni_category",
			Message: "ni_category must be one of A, B, C, H, J, M, Z",
		})
	}

	if !validator.IsInSlice(r.PayFrequency, payFrequencies) {
		errs = append(errs, validator.ValidationError{
			Field:   "pay_frequency",
			Message: "pay_frequency must be one of weekly, biweekly, monthly",
		})
	}

	if r.AnnualSalaryPence <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "annual_salary_pence",
			Message: "annual_salary_pence must be greater than zero",
		})
	}

	if r.StudentLoanPlan != "" && !validator.IsInSlice(r.StudentLoanPlan, studentLoanPlans) {
		errs = append(errs, validator.ValidationError{
			Field:   "student_loan_plan",
			Message: "student_loan_plan must be one of plan1, plan2, plan4, postgrad",
		})
	}

	if r.PensionOptIn {
		if r.PensionContributionBasisPoints < 0 || r.PensionContributionBasisPoints > 10000 {
			errs = append(errs, validator.ValidationError{
				Field:   "pension_contribution_basis_points",
				Message: "pension_contribution_basis_points must be between 0 and 10000",
			})
		}
		if r.EmployerPensionBasisPoints < 0 || r.EmployerPensionBasisPoints > 10000 {
			errs = append(errs, validator.ValidationError{
				Field:   "employer_pension_basis_points",
				Message: "employer_pension_basis_points must be between 0 and 10000",
			})
		}
	}

	if r.StartDate != nil && !validator.IsValidDate(*r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date in YYYY-MM-DD format",
		})
	}

	return errs
}

type UpdateEmployeeRequest struct {
	ID                             string  `json:"-"`
	FirstName                      string  `json:"first_name"`
	LastName                       string  `json:"last_name"`
	Email                          *string `json:"email,omitempty"`
	NINumber                       string  `json:"ni_number"`
	TaxCode                        string  `json:"tax_code"`
	NICategory                     string  `json:"ni_category"`
	PayFrequency                   string  `json:"pay_frequency"`
	AnnualSalaryPence              int64   `json:"annual_salary_pence"`
	StudentLoanPlan                string  `json:"student_loan_plan,omitempty"`
	PensionOptIn                   bool    `json:"pension_opt_in"`
	PensionContributionBasisPoints int64   `json:"pension_contribution_basis_points"`
	EmployerPensionBasisPoints     int64   `json:"employer_pension_basis_points"`
	StartDate                      *string `json:"start_date,omitempty"`
	Status                         string  `json:"status"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	create := CreateEmployeeRequest{
		FirstName:                      r.FirstName,
		LastName:                       r.LastName,
		Email:                          r.Email,
		NINumber:                       r.NINumber,
		TaxCode:                        r.TaxCode,
		NICategory:                     r.NICategory,
		PayFrequency:                   r.PayFrequency,
		AnnualSalaryPence:              r.AnnualSalaryPence,
		StudentLoanPlan:                r.StudentLoanPlan,
		PensionOptIn:                   r.PensionOptIn,
		PensionContributionBasisPoints: r.PensionContributionBasisPoints,
		EmployerPensionBasisPoints:     r.EmployerPensionBasisPoints,
		StartDate:                      r.StartDate,
	}

	errs := create.validate()

	if !validator.IsInSlice(r.Status, statuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of active, terminated",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID                             string  `json:"id"`
	FirstName                      string  `json:"first_name"`
	LastName                       string  `json:"last_name"`
	Email                          *string `json:"email,omitempty"`
	NINumber                       string  `json:"ni_number"`
	TaxCode                        string  `json:"tax_code"`
	NICategory                     string  `json:"ni_category"`
	PayFrequency                   string  `json:"pay_frequency"`
	AnnualSalaryPence              int64   `json:"annual_salary_pence"`
	StudentLoanPlan                string  `json:"student_loan_plan,omitempty"`
	PensionOptIn                   bool    `json:"pension_opt_in"`
	PensionContributionBasisPoints int64   `json:"pension_contribution_basis_points"`
	EmployerPensionBasisPoints     int64   `json:"employer_pension_basis_points"`
	StartDate                      *string `json:"start_date,omitempty"`
	Status                         string  `json:"status"`
	CreatedAt                      string  `json:"created_at"`
	UpdatedAt                      string  `json:"updated_at"`
}

type EmployeeFilter struct {
	Search       string
	Status       string
	PayFrequency string
	Page         int
	Limit        int
}

func (f *EmployeeFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != "" && !validator.IsInSlice(f.Status, statuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of active, terminated",
		})
	}
	if f.PayFrequency != "" && !validator.IsInSlice(f.PayFrequency, payFrequencies) {
		errs = append(errs, validator.ValidationError{
			Field:   "pay_frequency",
			Message: "pay_frequency must be one of weekly, biweekly, monthly",
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

type ListEmployeeResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
	Showing    string             `json:"showing"`
	Employees  []EmployeeResponse `json:"employees"`
}
