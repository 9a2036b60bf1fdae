package paye

type pensionResult struct {
	EmployeePence int64
	EmployerPence int64
}

// calculatePension computes contributions when the employee has opted in.
// Pensionable pay is gross plus bonus and commission unless a scheme says
// otherwise, which this engine does not model. Employee and employer amounts
// round to the penny independently; neither is derived from the other.
func calculatePension(in CalculationInput) pensionResult {
	if !in.PensionOptIn {
		return pensionResult{}
	}

	pensionable := in.earningsPence()
	return pensionResult{
		EmployeePence: mulDiv(pensionable, in.PensionContributionBasisPoints, 10000),
		EmployerPence: mulDiv(pensionable, in.EmployerPensionBasisPoints, 10000),
	}
}
