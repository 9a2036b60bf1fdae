package paye

import "fmt"

// CalculatePayroll runs one employee's pay period from gross to net:
// validate, parse the tax code, then income tax, National Insurance, student
// loan, and pension in that order, aggregated into a CalculationResult with
// a per-band breakdown and the new year-to-date totals.
//
// Net pay is earnings (gross + bonus + commission) less income tax, employee
// NI, student loan, employee pension, and other deductions. The formula is
// the guarantee; net pay CAN go negative under pathological deduction
// combinations and the engine does not clamp it. The returned error is
// either a field-keyed validator.ValidationErrors or a configuration error
// such as ErrUnsupportedTaxYear; use errors.As / errors.Is to tell them
// apart.
//
// Identical inputs always produce identical results. The cumulative totals
// round-trip through the caller: it reads them from the last persisted
// period, passes them in, and persists the New* values for the next one.
func CalculatePayroll(in CalculationInput) (CalculationResult, error) {
	if errs := ValidatePayrollInputs(in); len(errs) > 0 {
		return CalculationResult{}, errs
	}

	tables, err := LoadTaxYearTables(in.TaxYear)
	if err != nil {
		return CalculationResult{}, err
	}

	// Validation already vetted the grammar; parsing again keeps the
	// calculation safe if a caller skips ValidatePayrollInputs.
	code, err := ParseTaxCode(in.TaxCode)
	if err != nil {
		return CalculationResult{}, err
	}

	earnings := in.earningsPence()

	tax := calculateIncomeTax(code, tables, in)

	ni, err := calculateNationalInsurance(earnings, in.NICategory, in.PayFrequency, tables)
	if err != nil {
		return CalculationResult{}, err
	}

	loan, err := calculateStudentLoan(earnings, in.StudentLoanPlan, in.PayFrequency, tables)
	if err != nil {
		return CalculationResult{}, err
	}

	pension := calculatePension(in)

	net := earnings - tax.TaxPence - ni.EmployeePence - loan - pension.EmployeePence - in.OtherDeductionsPence

	return CalculationResult{
		GrossPayPence:                    earnings,
		TaxableIncomePence:               tax.TaxableIncomePence,
		IncomeTaxPence:                   tax.TaxPence,
		EmployeeNIPence:                  ni.EmployeePence,
		EmployerNIPence:                  ni.EmployerPence,
		StudentLoanDeductionPence:        loan,
		PensionEmployeeContributionPence: pension.EmployeePence,
		PensionEmployerContributionPence: pension.EmployerPence,
		OtherDeductionsPence:             in.OtherDeductionsPence,
		NetPayPence:                      net,
		NewCumulativeTaxableIncomePence:  in.CumulativeTaxableIncomePence + tax.TaxableIncomePence,
		NewCumulativeTaxPaidPence:        in.CumulativeTaxPaidPence + tax.TaxPence,
		Breakdown:                        tax.Breakdown,
	}, nil
}

// PeriodizeAmount converts an annual pence amount into one pay period's
// share, rounded to the nearest penny: 1/52, 1/26, or 1/12 of the annual
// figure. The payroll service uses it to derive a default gross pay from an
// employee's annual salary when the caller supplies none.
func PeriodizeAmount(annualAmountPence int64, freq PayFrequency) (int64, error) {
	periods := freq.PeriodsPerYear()
	if periods == 0 {
		return 0, fmt.Errorf("pay frequency %q: %w", freq, ErrInvalidFrequency)
	}
	return mulDiv(annualAmountPence, 1, periods), nil
}
