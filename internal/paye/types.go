// Package paye implements the UK PAYE calculation engine: tax-code parsing,
// progressive income tax, National Insurance, student loan, and pension
// contributions for a single pay period. Every function is a pure computation
// over its inputs plus the versioned tax-year tables; the engine performs no
// I/O and keeps no state between calls, so calls may run concurrently.
//
// All monetary values are integer pence. Rate arithmetic goes through
// shopspring/decimal and is rounded to the nearest penny (half up), except
// student-loan deductions which round down per the statutory rule.
package paye

// Regime selects which income-tax band table applies. Welsh rates currently
// match the rest of the UK but are kept as a distinct table so a future
// divergence is a data change, not a code change.
type Regime string

const (
	RegimeRestOfUK Regime = "rUK"
	RegimeScotland Regime = "scotland"
	RegimeWales    Regime = "wales"
)

// PayFrequency is how often an employee is paid within a tax year.
type PayFrequency string

const (
	FrequencyWeekly   PayFrequency = "weekly"
	FrequencyBiweekly PayFrequency = "biweekly"
	FrequencyMonthly  PayFrequency = "monthly"
)

// PeriodsPerYear returns the number of pay periods in a tax year, or 0 for
// an unrecognized frequency.
func (f PayFrequency) PeriodsPerYear() int64 {
	switch f {
	case FrequencyWeekly:
		return 52
	case FrequencyBiweekly:
		return 26
	case FrequencyMonthly:
		return 12
	default:
		return 0
	}
}

func (f PayFrequency) valid() bool {
	return f.PeriodsPerYear() > 0
}

// NICategory is the employee's National Insurance category letter.
type NICategory string

const (
	NICategoryA NICategory = "A"
	NICategoryB NICategory = "B"
	NICategoryC NICategory = "C"
	NICategoryH NICategory = "H"
	NICategoryJ NICategory = "J"
	NICategoryM NICategory = "M"
	NICategoryZ NICategory = "Z"
)

func (c NICategory) valid() bool {
	switch c {
	case NICategoryA, NICategoryB, NICategoryC, NICategoryH, NICategoryJ, NICategoryM, NICategoryZ:
		return true
	default:
		return false
	}
}

// StudentLoanPlan is a UK student-loan repayment plan. The empty string means
// the employee has no loan.
type StudentLoanPlan string

const (
	PlanNone     StudentLoanPlan = ""
	Plan1        StudentLoanPlan = "plan1"
	Plan2        StudentLoanPlan = "plan2"
	Plan4        StudentLoanPlan = "plan4"
	PlanPostgrad StudentLoanPlan = "postgrad"
)

func (p StudentLoanPlan) valid() bool {
	switch p {
	case Plan1, Plan2, Plan4, PlanPostgrad:
		return true
	default:
		return false
	}
}

// TaxCodeKind classifies how a tax code is applied.
type TaxCodeKind int

const (
	// TaxCodeBanded codes run the progressive band table against taxable
	// income after the code's allowance (numeric codes, K codes, 0T).
	TaxCodeBanded TaxCodeKind = iota
	// TaxCodeFixedRate codes tax every pound at one rate with no allowance
	// (BR, D0, D1).
	TaxCodeFixedRate
	// TaxCodeNoTax is NT: no income tax at all.
	TaxCodeNoTax
)

// TaxCode is the computed meaning of a raw tax-code string, resolved once per
// calculation by ParseTaxCode.
type TaxCode struct {
	Raw               string
	Regime            Regime
	Kind              TaxCodeKind
	AllowancePence    int64 // annual tax-free allowance; negative for K codes
	FixedRatePermille int64 // set only for TaxCodeFixedRate
	Cumulative        bool  // false when the code carries W1/M1/X
}

// NegativeAllowance reports whether the code is a K code, where the allowance
// is added to taxable pay instead of subtracted.
func (t TaxCode) NegativeAllowance() bool {
	return t.AllowancePence < 0
}

// CalculationInput is everything the engine needs for one employee's pay
// period. The caller resolves it from the employee record and the previous
// payroll entry; the engine never reads storage itself.
type CalculationInput struct {
	TaxYear                        string          `json:"tax_year"`
	TaxCode                        string          `json:"tax_code"`
	PayFrequency                   PayFrequency    `json:"pay_frequency"`
	PeriodNumber                   int64           `json:"period_number"`
	GrossPayPence                  int64           `json:"gross_pay_pence"`
	BonusPence                     int64           `json:"bonus_pence"`
	CommissionPence                int64           `json:"commission_pence"`
	OtherDeductionsPence           int64           `json:"other_deductions_pence"`
	NICategory                     NICategory      `json:"ni_category"`
	StudentLoanPlan                StudentLoanPlan `json:"student_loan_plan,omitempty"`
	PensionOptIn                   bool            `json:"pension_opt_in"`
	PensionContributionBasisPoints int64           `json:"pension_contribution_basis_points"`
	EmployerPensionBasisPoints     int64           `json:"employer_pension_basis_points"`
	CumulativeTaxableIncomePence   int64           `json:"cumulative_taxable_income_pence"`
	CumulativeTaxPaidPence         int64           `json:"cumulative_tax_paid_pence"`
}

// earningsPence is the period's taxable earnings base: gross pay plus bonus
// and commission. Income tax, NI, student loan, and pension all run on it.
func (in CalculationInput) earningsPence() int64 {
	return in.GrossPayPence + in.BonusPence + in.CommissionPence
}

// BandBreakdown is one income-tax band's contribution, kept for payslip and
// audit display.
type BandBreakdown struct {
	BandLabel   string `json:"band_label"`
	AmountPence int64  `json:"amount_pence"`
	TaxPence    int64  `json:"tax_pence"`
}

// CalculationResult is the gross-to-net outcome of one period. GrossPayPence
// reports total earnings (gross + bonus + commission). The new cumulative
// totals are what the caller persists and feeds into the next period; they
// accumulate even for non-cumulative codes so the year-to-date record stays
// complete.
type CalculationResult struct {
	GrossPayPence                    int64           `json:"gross_pay_pence"`
	TaxableIncomePence               int64           `json:"taxable_income_pence"`
	IncomeTaxPence                   int64           `json:"income_tax_pence"`
	EmployeeNIPence                  int64           `json:"employee_ni_pence"`
	EmployerNIPence                  int64           `json:"employer_ni_pence"`
	StudentLoanDeductionPence        int64           `json:"student_loan_deduction_pence"`
	PensionEmployeeContributionPence int64           `json:"pension_employee_contribution_pence"`
	PensionEmployerContributionPence int64           `json:"pension_employer_contribution_pence"`
	OtherDeductionsPence             int64           `json:"other_deductions_pence"`
	NetPayPence                      int64           `json:"net_pay_pence"`
	NewCumulativeTaxableIncomePence  int64           `json:"new_cumulative_taxable_income_pence"`
	NewCumulativeTaxPaidPence        int64           `json:"new_cumulative_tax_paid_pence"`
	Breakdown                        []BandBreakdown `json:"breakdown"`
}
