package paye

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paybooks/paybooks-backend-go/internal/pkg/validator"
)

// standardInput is the 2024-25 baseline used across the orchestrator tests:
// 1257L, category A, monthly, £3,000 gross, period 1, fresh year.
func standardInput() CalculationInput {
	return CalculationInput{
		TaxYear:       "2024-25",
		TaxCode:       "1257L",
		PayFrequency:  FrequencyMonthly,
		PeriodNumber:  1,
		GrossPayPence: 300000,
		NICategory:    NICategoryA,
	}
}

func TestCalculatePayroll_StandardMonthlyPeriodOne(t *testing.T) {
	res, err := CalculatePayroll(standardInput())
	require.NoError(t, err)

	// Allowance £12,570/12 = £1,047.50 leaves £1,952.50 taxable, all basic
	// rate. NI: 8% of (£3,000 - £1,048) and 13.8% above £758 for the
	// employer.
	assert.Equal(t, int64(300000), res.GrossPayPence)
	assert.Equal(t, int64(195250), res.TaxableIncomePence)
	assert.Equal(t, int64(39050), res.IncomeTaxPence)
	assert.Equal(t, int64(15616), res.EmployeeNIPence)
	assert.Equal(t, int64(30940), res.EmployerNIPence)
	assert.Zero(t, res.StudentLoanDeductionPence)
	assert.Zero(t, res.PensionEmployeeContributionPence)
	assert.Zero(t, res.PensionEmployerContributionPence)
	assert.Equal(t, int64(245334), res.NetPayPence)
	assert.Equal(t, int64(195250), res.NewCumulativeTaxableIncomePence)
	assert.Equal(t, int64(39050), res.NewCumulativeTaxPaidPence)

	require.Len(t, res.Breakdown, 1)
	assert.Equal(t, "Basic rate", res.Breakdown[0].BandLabel)
	assert.Equal(t, int64(195250), res.Breakdown[0].AmountPence)
	assert.Equal(t, int64(39050), res.Breakdown[0].TaxPence)
}

func TestCalculatePayroll_BRWeeklyFlatTwentyPercent(t *testing.T) {
	in := CalculationInput{
		TaxYear:       "2024-25",
		TaxCode:       "BR",
		PayFrequency:  FrequencyWeekly,
		PeriodNumber:  1,
		GrossPayPence: 50000,
		NICategory:    NICategoryA,
	}
	res, err := CalculatePayroll(in)
	require.NoError(t, err)
	assert.Equal(t, int64(10000), res.IncomeTaxPence, "flat 20%% of £500")
	assert.Equal(t, int64(50000), res.TaxableIncomePence, "BR has no allowance")

	// The flat rate never consults year-to-date state.
	in.PeriodNumber = 30
	in.CumulativeTaxableIncomePence = 4000000
	in.CumulativeTaxPaidPence = 555555
	res, err = CalculatePayroll(in)
	require.NoError(t, err)
	assert.Equal(t, int64(10000), res.IncomeTaxPence)
}

func TestCalculatePayroll_FixedRateCodes(t *testing.T) {
	for _, c := range []struct {
		code string
		tax  int64
	}{
		{"BR", 20000},
		{"D0", 40000},
		{"D1", 45000},
	} {
		in := standardInput()
		in.TaxCode = c.code
		in.GrossPayPence = 100000
		res, err := CalculatePayroll(in)
		require.NoError(t, err, "code %s", c.code)
		assert.Equal(t, c.tax, res.IncomeTaxPence, "code %s", c.code)
	}
}

func TestCalculatePayroll_NTPaysNoTax(t *testing.T) {
	in := standardInput()
	in.TaxCode = "NT"
	in.GrossPayPence = 2000000
	res, err := CalculatePayroll(in)
	require.NoError(t, err)
	assert.Zero(t, res.IncomeTaxPence)
	assert.Zero(t, res.TaxableIncomePence)
	assert.Empty(t, res.Breakdown)
	// NI is untouched by the tax code.
	assert.Positive(t, res.EmployeeNIPence)
}

func TestCalculatePayroll_ZeroTCodeTaxesFromFirstPenny(t *testing.T) {
	in := standardInput()
	in.TaxCode = "0T"
	res, err := CalculatePayroll(in)
	require.NoError(t, err)
	assert.Equal(t, int64(300000), res.TaxableIncomePence)
	assert.Equal(t, int64(60000), res.IncomeTaxPence, "20%% of the full £3,000")
}

func TestCalculatePayroll_KCodeAddsToTaxable(t *testing.T) {
	in := standardInput()
	in.TaxCode = "K475"
	res, err := CalculatePayroll(in)
	require.NoError(t, err)

	// K475 adds round(£4,750/12) to taxable pay, pushing one slice of pay
	// into the prorated higher band.
	assert.Equal(t, int64(339583), res.TaxableIncomePence)
	assert.Equal(t, int64(72999), res.IncomeTaxPence)
	require.Len(t, res.Breakdown, 2)
	assert.Equal(t, "Higher rate", res.Breakdown[1].BandLabel)
}

func TestCalculatePayroll_NetPayFormula(t *testing.T) {
	// The formula is the invariant; net pay may legitimately go negative
	// under pathological deductions, so assert the identity, not a sign.
	inputs := []CalculationInput{
		standardInput(),
		{
			TaxYear: "2024-25", TaxCode: "K475", PayFrequency: FrequencyWeekly,
			PeriodNumber: 3, GrossPayPence: 90000, BonusPence: 20000,
			CommissionPence: 5000, OtherDeductionsPence: 15000,
			NICategory: NICategoryA, StudentLoanPlan: Plan2,
			PensionOptIn: true, PensionContributionBasisPoints: 500,
			EmployerPensionBasisPoints:   300,
			CumulativeTaxableIncomePence: 250000, CumulativeTaxPaidPence: 42000,
		},
		{
			TaxYear: "2025-26", TaxCode: "SD0", PayFrequency: FrequencyBiweekly,
			PeriodNumber: 10, GrossPayPence: 200000,
			NICategory: NICategoryB, StudentLoanPlan: PlanPostgrad,
			OtherDeductionsPence: 300000, // deliberately absurd
		},
	}
	for _, in := range inputs {
		res, err := CalculatePayroll(in)
		require.NoError(t, err)

		earnings := in.GrossPayPence + in.BonusPence + in.CommissionPence
		assert.Equal(t, earnings, res.GrossPayPence)
		assert.Equal(t,
			earnings-res.IncomeTaxPence-res.EmployeeNIPence-res.StudentLoanDeductionPence-
				res.PensionEmployeeContributionPence-res.OtherDeductionsPence,
			res.NetPayPence)
	}
}

func TestCalculatePayroll_Idempotent(t *testing.T) {
	in := standardInput()
	in.StudentLoanPlan = Plan2
	in.PensionOptIn = true
	in.PensionContributionBasisPoints = 500
	in.EmployerPensionBasisPoints = 300

	first, err := CalculatePayroll(in)
	require.NoError(t, err)
	second, err := CalculatePayroll(in)
	require.NoError(t, err)
	assert.Equal(t, first, second, "identical input must produce identical output")
}

func TestCalculatePayroll_MonotonicInGross(t *testing.T) {
	var lastTax, lastNI int64
	for gross := int64(0); gross <= 1500000; gross += 7919 {
		in := standardInput()
		in.GrossPayPence = gross
		res, err := CalculatePayroll(in)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, res.IncomeTaxPence, lastTax, "income tax fell when gross rose to %d", gross)
		assert.GreaterOrEqual(t, res.EmployeeNIPence, lastNI, "employee NI fell when gross rose to %d", gross)
		lastTax = res.IncomeTaxPence
		lastNI = res.EmployeeNIPence
	}
}

func TestCalculatePayroll_CumulativeChain(t *testing.T) {
	// Chain twelve months of steady £3,000 pay the way the payroll service
	// does: feed each period the previous period's new totals.
	in := standardInput()
	var lastPaid int64
	for period := int64(1); period <= 12; period++ {
		in.PeriodNumber = period
		res, err := CalculatePayroll(in)
		require.NoError(t, err)

		assert.Equal(t, int64(39050), res.IncomeTaxPence, "steady pay must tax evenly in period %d", period)
		assert.GreaterOrEqual(t, res.NewCumulativeTaxPaidPence, lastPaid, "cumulative tax paid must never fall")

		lastPaid = res.NewCumulativeTaxPaidPence
		in.CumulativeTaxableIncomePence = res.NewCumulativeTaxableIncomePence
		in.CumulativeTaxPaidPence = res.NewCumulativeTaxPaidPence
	}
	assert.Equal(t, int64(468600), lastPaid, "12 × £390.50")
}

func TestCalculatePayroll_PayCutYieldsZeroTaxNotRefund(t *testing.T) {
	// Period 1 on £10,000, period 2 on nothing: liability to date is now
	// below tax already paid and the engine clamps the period at zero.
	in := standardInput()
	in.GrossPayPence = 1000000
	first, err := CalculatePayroll(in)
	require.NoError(t, err)
	require.Positive(t, first.IncomeTaxPence)

	in.PeriodNumber = 2
	in.GrossPayPence = 0
	in.CumulativeTaxableIncomePence = first.NewCumulativeTaxableIncomePence
	in.CumulativeTaxPaidPence = first.NewCumulativeTaxPaidPence
	second, err := CalculatePayroll(in)
	require.NoError(t, err)

	assert.Zero(t, second.IncomeTaxPence)
	assert.Equal(t, first.NewCumulativeTaxPaidPence, second.NewCumulativeTaxPaidPence,
		"a zero-tax period leaves the cumulative total unchanged")
}

func TestCalculatePayroll_NonCumulativeStillAccumulatesTotals(t *testing.T) {
	in := standardInput()
	in.TaxCode = "1257L W1"
	in.PeriodNumber = 4
	in.CumulativeTaxableIncomePence = 585750
	in.CumulativeTaxPaidPence = 117150

	res, err := CalculatePayroll(in)
	require.NoError(t, err)

	// W1 taxes each period in isolation but the record-keeping totals
	// still grow.
	assert.Equal(t, int64(39050), res.IncomeTaxPence)
	assert.Equal(t, int64(585750+195250), res.NewCumulativeTaxableIncomePence)
	assert.Equal(t, int64(117150+39050), res.NewCumulativeTaxPaidPence)
}

func TestCalculatePayroll_HigherRateMonthly(t *testing.T) {
	in := standardInput()
	in.GrossPayPence = 1000000
	res, err := CalculatePayroll(in)
	require.NoError(t, err)

	// £10,000 gross: £8,952.50 taxable spans basic and higher bands; NI
	// picks up the 2% upper rate above the £4,189 UEL.
	assert.Equal(t, int64(295266), res.IncomeTaxPence)
	assert.Equal(t, int64(36750), res.EmployeeNIPence)
	assert.Equal(t, int64(127540), res.EmployerNIPence)
	require.Len(t, res.Breakdown, 2)
}

func TestCalculatePayroll_StudentLoanScenario(t *testing.T) {
	// Plan 2 monthly threshold is £2,274.58; £100 over repays £9 exactly.
	in := standardInput()
	in.StudentLoanPlan = Plan2
	in.GrossPayPence = 237458
	res, err := CalculatePayroll(in)
	require.NoError(t, err)
	assert.Equal(t, int64(900), res.StudentLoanDeductionPence)

	in.GrossPayPence = 200000
	res, err = CalculatePayroll(in)
	require.NoError(t, err)
	assert.Zero(t, res.StudentLoanDeductionPence)
}

func TestCalculatePayroll_UnsupportedTaxYear(t *testing.T) {
	in := standardInput()
	in.TaxYear = "2030-31" // well-formed, no table

	_, err := CalculatePayroll(in)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedTaxYear))

	var verrs validator.ValidationErrors
	assert.False(t, errors.As(err, &verrs), "a missing year is configuration, not input validation")
}

func TestCalculatePayroll_ValidationErrors(t *testing.T) {
	in := CalculationInput{
		TaxYear:                      "24-25",
		TaxCode:                      "NONSENSE",
		PayFrequency:                 PayFrequency("daily"),
		PeriodNumber:                 0,
		GrossPayPence:                -1,
		NICategory:                   NICategory("Q"),
		StudentLoanPlan:              StudentLoanPlan("plan9"),
		CumulativeTaxableIncomePence: -5,
	}
	_, err := CalculatePayroll(in)
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))

	fields := verrs.ToMap()
	for _, field := range []string{
		"tax_year", "tax_code", "pay_frequency", "gross_pay_pence",
		"ni_category", "student_loan_plan", "cumulative_taxable_income_pence",
	} {
		assert.Contains(t, fields, field)
	}
}

func TestPeriodizeAmount(t *testing.T) {
	cases := []struct {
		annual int64
		freq   PayFrequency
		want   int64
	}{
		{3000000, FrequencyMonthly, 250000},
		{1257000, FrequencyMonthly, 104750},
		{1000000, FrequencyWeekly, 19231},   // 19230.77 rounds up
		{1000000, FrequencyBiweekly, 38462}, // 38461.54 rounds up
		{0, FrequencyMonthly, 0},
	}
	for _, c := range cases {
		got, err := PeriodizeAmount(c.annual, c.freq)
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "PeriodizeAmount(%d, %s)", c.annual, c.freq)
	}

	_, err := PeriodizeAmount(100000, PayFrequency("daily"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidFrequency))
}

func TestPeriodizeAmount_RoundTripWithinHalfPennyPerPeriod(t *testing.T) {
	// Nearest-penny rounding loses at most half a penny per period, so a
	// year of periodized amounts reconstructs the annual figure within
	// periods/2 pence.
	for _, freq := range []PayFrequency{FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly} {
		periods := freq.PeriodsPerYear()
		for annual := int64(0); annual <= 10000000; annual += 13337 {
			periodized, err := PeriodizeAmount(annual, freq)
			require.NoError(t, err)

			diff := periodized*periods - annual
			if diff < 0 {
				diff = -diff
			}
			assert.LessOrEqual(t, diff, periods/2, "annual %d at %s", annual, freq)
		}
	}
}
