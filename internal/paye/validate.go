package paye

import (
	"fmt"

	"github.com/paybooks/paybooks-backend-go/internal/pkg/validator"
)

// ValidatePayrollInputs runs every structural check ahead of any arithmetic
// and returns all problems at once as a field-keyed set; nil means valid.
// A well-formed tax year with no published table is deliberately NOT a
// validation failure: that is a configuration problem and CalculatePayroll
// reports it as ErrUnsupportedTaxYear instead.
func ValidatePayrollInputs(in CalculationInput) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if validator.IsEmpty(in.TaxYear) {
		errs = append(errs, validator.ValidationError{
			Field:   "tax_year",
			Message: "tax_year is required",
		})
	} else if !validator.IsValidTaxYear(in.TaxYear) {
		errs = append(errs, validator.ValidationError{
			Field:   "tax_year",
			Message: "tax_year must be two consecutive years in YYYY-YY form, e.g. 2024-25",
		})
	}

	if validator.IsEmpty(in.TaxCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "tax_code",
			Message: "tax_code is required",
		})
	} else if !IsValidTaxCode(in.TaxCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "tax_code",
			Message: "tax_code is not a recognized UK tax code (e.g. 1257L, K475, BR, S1257L, 1257L W1)",
		})
	}

	if !in.PayFrequency.valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "pay_frequency",
			Message: "pay_frequency must be one of weekly, biweekly, monthly",
		})
	} else if in.PeriodNumber < 1 || in.PeriodNumber > in.PayFrequency.PeriodsPerYear() {
		errs = append(errs, validator.ValidationError{
			Field:   "period_number",
			Message: fmt.Sprintf("period_number must be between 1 and %d for %s pay", in.PayFrequency.PeriodsPerYear(), in.PayFrequency),
		})
	}

	if in.GrossPayPence < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "gross_pay_pence",
			Message: "gross_pay_pence must not be negative",
		})
	}
	if in.BonusPence < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "bonus_pence",
			Message: "bonus_pence must not be negative",
		})
	}
	if in.CommissionPence < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "commission_pence",
			Message: "commission_pence must not be negative",
		})
	}
	if in.OtherDeductionsPence < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "other_deductions_pence",
			Message: "other_deductions_pence must not be negative",
		})
	}

	if !in.NICategory.valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "ni_category",
			Message: "ni_category must be one of A, B, C, H, J, M, Z",
		})
	}

	if in.StudentLoanPlan != PlanNone && !in.StudentLoanPlan.valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "student_loan_plan",
			Message: "student_loan_plan must be one of plan1, plan2, plan4, postgrad",
		})
	}

	if in.CumulativeTaxableIncomePence < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "cumulative_taxable_income_pence",
			Message: "cumulative_taxable_income_pence must not be negative",
		})
	}
	if in.CumulativeTaxPaidPence < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "cumulative_tax_paid_pence",
			Message: "cumulative_tax_paid_pence must not be negative",
		})
	}

	if in.PensionOptIn {
		if in.PensionContributionBasisPoints < 0 || in.PensionContributionBasisPoints > 10000 {
			errs = append(errs, validator.ValidationError{
				Field:   "pension_contribution_basis_points",
				Message: "pension_contribution_basis_points must be between 0 and 10000",
			})
		}
		if in.EmployerPensionBasisPoints < 0 || in.EmployerPensionBasisPoints > 10000 {
			errs = append(errs, validator.ValidationError{
				Field:   "employer_pension_basis_points",
				Message: "employer_pension_basis_points must be between 0 and 10000",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
