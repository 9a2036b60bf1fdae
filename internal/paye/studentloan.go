package paye

import "fmt"

// calculateStudentLoan computes the plan deduction for one period: the
// plan's annual threshold is periodized and earnings above it repay at the
// plan rate, rounded DOWN to the penny. The floor is the statutory rule and
// intentionally differs from the engine's half-up rounding elsewhere.
func calculateStudentLoan(earningsPence int64, plan StudentLoanPlan, freq PayFrequency, tables *TaxYearTables) (int64, error) {
	if plan == PlanNone {
		return 0, nil
	}
	loan, ok := tables.StudentLoans[plan]
	if !ok {
		return 0, fmt.Errorf("plan %q: %w", plan, ErrUnknownLoanPlan)
	}

	threshold := mulDiv(loan.AnnualThresholdPence, 1, freq.PeriodsPerYear())
	liable := clampNonNegative(earningsPence - threshold)

	return mulDivFloor(liable, loan.RatePermille, 1000), nil
}
