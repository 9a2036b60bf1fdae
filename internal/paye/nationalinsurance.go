package paye

import "fmt"

type niResult struct {
	EmployeePence int64
	EmployerPence int64
}

// calculateNationalInsurance computes employee and employer contributions
// for one period. NI carries no year-to-date state: every period stands
// alone regardless of the tax code's cumulative flag. The employee pays the
// category's main rate between the primary threshold and the upper earnings
// limit and the upper rate above that; the employer pays its single rate on
// everything above the secondary threshold. Employer NI is an employer cost
// on top of pay and never reduces net pay.
func calculateNationalInsurance(earningsPence int64, category NICategory, freq PayFrequency, tables *TaxYearTables) (niResult, error) {
	thresholds, ok := tables.NI.Thresholds[freq]
	if !ok {
		return niResult{}, fmt.Errorf("pay frequency %q: %w", freq, ErrInvalidFrequency)
	}
	rates, ok := tables.NI.Categories[category]
	if !ok {
		return niResult{}, fmt.Errorf("category %q: %w", category, ErrUnknownNICategory)
	}

	mainBand := clampNonNegative(min(earningsPence, thresholds.UpperPence) - thresholds.PrimaryPence)
	upperBand := clampNonNegative(earningsPence - thresholds.UpperPence)
	employee := mulDiv(mainBand, rates.EmployeeMainBasisPoints, 10000) +
		mulDiv(upperBand, rates.EmployeeUpperBasisPoints, 10000)

	employerBand := clampNonNegative(earningsPence - thresholds.SecondaryPence)
	employer := mulDiv(employerBand, rates.EmployerBasisPoints, 10000)

	return niResult{EmployeePence: employee, EmployerPence: employer}, nil
}
