package paye

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePayrollInputs_Valid(t *testing.T) {
	in := standardInput()
	assert.Nil(t, ValidatePayrollInputs(in))

	in.StudentLoanPlan = Plan4
	in.PensionOptIn = true
	in.PensionContributionBasisPoints = 500
	in.EmployerPensionBasisPoints = 300
	assert.Nil(t, ValidatePayrollInputs(in))
}

func TestValidatePayrollInputs_UnsupportedYearIsStillValidInput(t *testing.T) {
	// Table availability is checked by CalculatePayroll, not here: a
	// well-formed future year passes validation.
	in := standardInput()
	in.TaxYear = "2031-32"
	assert.Nil(t, ValidatePayrollInputs(in))
}

func TestValidatePayrollInputs_PeriodNumberRange(t *testing.T) {
	cases := []struct {
		freq   PayFrequency
		period int64
		ok     bool
	}{
		{FrequencyMonthly, 1, true},
		{FrequencyMonthly, 12, true},
		{FrequencyMonthly, 0, false},
		{FrequencyMonthly, 13, false},
		{FrequencyWeekly, 52, true},
		{FrequencyWeekly, 53, false},
		{FrequencyBiweekly, 26, true},
		{FrequencyBiweekly, 27, false},
	}
	for _, c := range cases {
		in := standardInput()
		in.PayFrequency = c.freq
		in.PeriodNumber = c.period
		errs := ValidatePayrollInputs(in)
		if c.ok {
			assert.Nil(t, errs, "%s period %d", c.freq, c.period)
		} else {
			require.NotNil(t, errs, "%s period %d", c.freq, c.period)
			assert.Contains(t, errs.ToMap(), "period_number")
		}
	}
}

func TestValidatePayrollInputs_NegativeAmounts(t *testing.T) {
	in := standardInput()
	in.GrossPayPence = -1
	in.BonusPence = -1
	in.CommissionPence = -1
	in.OtherDeductionsPence = -1
	in.CumulativeTaxPaidPence = -1

	errs := ValidatePayrollInputs(in)
	require.NotNil(t, errs)
	fields := errs.ToMap()
	for _, field := range []string{
		"gross_pay_pence", "bonus_pence", "commission_pence",
		"other_deductions_pence", "cumulative_tax_paid_pence",
	} {
		assert.Contains(t, fields, field)
	}
}

func TestValidatePayrollInputs_PensionBoundsOnlyWhenOptedIn(t *testing.T) {
	in := standardInput()
	in.PensionOptIn = false
	in.PensionContributionBasisPoints = 99999
	assert.Nil(t, ValidatePayrollInputs(in), "opted out ignores the stored rate")

	in.PensionOptIn = true
	errs := ValidatePayrollInputs(in)
	require.NotNil(t, errs)
	assert.Contains(t, errs.ToMap(), "pension_contribution_basis_points")

	in.PensionContributionBasisPoints = 10000
	in.EmployerPensionBasisPoints = -1
	errs = ValidatePayrollInputs(in)
	require.NotNil(t, errs)
	assert.Contains(t, errs.ToMap(), "employer_pension_basis_points")
}

func TestValidatePayrollInputs_RequiredFields(t *testing.T) {
	errs := ValidatePayrollInputs(CalculationInput{})
	require.NotNil(t, errs)
	fields := errs.ToMap()
	assert.Contains(t, fields, "tax_year")
	assert.Contains(t, fields, "tax_code")
	assert.Contains(t, fields, "pay_frequency")
	assert.Contains(t, fields, "ni_category")
}
