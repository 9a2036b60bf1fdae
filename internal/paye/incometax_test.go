package paye

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodAllowance_CumulativeSlicesSumToAnnual(t *testing.T) {
	code, err := ParseTaxCode("1257L")
	require.NoError(t, err)

	for _, freq := range []PayFrequency{FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly} {
		periods := freq.PeriodsPerYear()
		var total int64
		for n := int64(1); n <= periods; n++ {
			total += periodAllowance(code, n, periods)
		}
		assert.Equal(t, code.AllowancePence, total, "%s slices must sum to the annual allowance", freq)
	}
}

func TestPeriodAllowance_MonthlyStandardCode(t *testing.T) {
	code, err := ParseTaxCode("1257L")
	require.NoError(t, err)

	// £12,570 / 12 = £1,047.50 every month.
	for n := int64(1); n <= 12; n++ {
		assert.Equal(t, int64(104750), periodAllowance(code, n, 12), "month %d", n)
	}
}

func TestPeriodAllowance_NonCumulativeIsFlat(t *testing.T) {
	code, err := ParseTaxCode("1257L W1")
	require.NoError(t, err)

	for _, n := range []int64{1, 5, 12} {
		assert.Equal(t, int64(104750), periodAllowance(code, n, 12), "W1 period %d ignores period number", n)
	}
}

func TestPeriodAllowance_KCodeIsNegative(t *testing.T) {
	code, err := ParseTaxCode("K475")
	require.NoError(t, err)

	slice := periodAllowance(code, 1, 12)
	assert.Negative(t, slice)
	assert.Equal(t, int64(-39583), slice)

	// The negative slice raises taxable pay above earnings.
	assert.Equal(t, int64(339583), taxablePay(300000, slice))
}

func TestPeriodAllowance_FixedRateCodesHaveNone(t *testing.T) {
	for _, raw := range []string{"BR", "D0", "D1", "NT"} {
		code, err := ParseTaxCode(raw)
		require.NoError(t, err)
		assert.Zero(t, periodAllowance(code, 3, 12), "allowance for %s", raw)
	}
}

func TestTaxablePay_FloorsAtZero(t *testing.T) {
	assert.Equal(t, int64(0), taxablePay(100000, 104750))
	assert.Equal(t, int64(195250), taxablePay(300000, 104750))
}

func TestTaxOnAmount_SingleBand(t *testing.T) {
	tables, err := LoadTaxYearTables("2024-25")
	require.NoError(t, err)

	bands := tables.IncomeTax[RegimeRestOfUK]
	tax, breakdown := taxOnAmount(bands, 195250, 1, 12)
	assert.Equal(t, int64(39050), tax, "20%% of £1,952.50")
	require.Len(t, breakdown, 1)
	assert.Equal(t, "Basic rate", breakdown[0].BandLabel)
	assert.Equal(t, int64(195250), breakdown[0].AmountPence)
	assert.Equal(t, int64(39050), breakdown[0].TaxPence)
}

func TestTaxOnAmount_SpansBands(t *testing.T) {
	tables, err := LoadTaxYearTables("2024-25")
	require.NoError(t, err)

	// £8,952.50 of monthly taxable pay reaches the higher-rate band:
	// basic fills to round(£37,700/12) = £3,141.67.
	bands := tables.IncomeTax[RegimeRestOfUK]
	tax, breakdown := taxOnAmount(bands, 895250, 1, 12)
	require.Len(t, breakdown, 2)
	assert.Equal(t, int64(314167), breakdown[0].AmountPence)
	assert.Equal(t, int64(62833), breakdown[0].TaxPence)
	assert.Equal(t, int64(581083), breakdown[1].AmountPence)
	assert.Equal(t, int64(232433), breakdown[1].TaxPence)
	assert.Equal(t, int64(295266), tax)

	// The summed breakdown always equals the total.
	var sum int64
	for _, band := range breakdown {
		sum += band.TaxPence
	}
	assert.Equal(t, tax, sum)
}

func TestTaxOnAmount_BoundsScaleWithPeriodNumber(t *testing.T) {
	tables, err := LoadTaxYearTables("2024-25")
	require.NoError(t, err)

	// By period 2 the prorated basic band has doubled, so the same
	// year-to-date amount that spilled into higher rate at period 1 now
	// fits inside basic rate.
	bands := tables.IncomeTax[RegimeRestOfUK]
	taxP1, _ := taxOnAmount(bands, 400000, 1, 12)
	taxP2, _ := taxOnAmount(bands, 400000, 2, 12)
	assert.Greater(t, taxP1, taxP2)
	assert.Equal(t, int64(80000), taxP2, "all basic rate by period 2")
}

func TestCalculateIncomeTax_CumulativeClampsAtZero(t *testing.T) {
	tables, err := LoadTaxYearTables("2024-25")
	require.NoError(t, err)
	code, err := ParseTaxCode("1257L")
	require.NoError(t, err)

	// Period 2 after a big period 1: liability to date is below what was
	// already paid, so the period collects nothing rather than refunding.
	in := CalculationInput{
		TaxYear:                      "2024-25",
		TaxCode:                      "1257L",
		PayFrequency:                 FrequencyMonthly,
		PeriodNumber:                 2,
		GrossPayPence:                0,
		NICategory:                   NICategoryA,
		CumulativeTaxableIncomePence: 195250,
		CumulativeTaxPaidPence:       39050,
	}
	res := calculateIncomeTax(code, tables, in)
	assert.Zero(t, res.TaxPence)
	assert.Zero(t, res.TaxableIncomePence, "no earnings means no new taxable pay")
}

func TestCalculateIncomeTax_NonCumulativeIgnoresHistory(t *testing.T) {
	tables, err := LoadTaxYearTables("2024-25")
	require.NoError(t, err)
	code, err := ParseTaxCode("1257L W1")
	require.NoError(t, err)

	base := CalculationInput{
		TaxYear:       "2024-25",
		TaxCode:       "1257L W1",
		PayFrequency:  FrequencyMonthly,
		PeriodNumber:  7,
		GrossPayPence: 300000,
		NICategory:    NICategoryA,
	}
	clean := calculateIncomeTax(code, tables, base)

	loaded := base
	loaded.CumulativeTaxableIncomePence = 5000000
	loaded.CumulativeTaxPaidPence = 1000000
	withHistory := calculateIncomeTax(code, tables, loaded)

	assert.Equal(t, clean.TaxPence, withHistory.TaxPence, "W1 must not consult cumulative totals")
	assert.Equal(t, int64(39050), clean.TaxPence)
}

func TestCalculateIncomeTax_ScottishBands(t *testing.T) {
	tables, err := LoadTaxYearTables("2024-25")
	require.NoError(t, err)
	code, err := ParseTaxCode("S1257L")
	require.NoError(t, err)

	in := CalculationInput{
		TaxYear:       "2024-25",
		TaxCode:       "S1257L",
		PayFrequency:  FrequencyMonthly,
		PeriodNumber:  1,
		GrossPayPence: 300000,
		NICategory:    NICategoryA,
	}
	res := calculateIncomeTax(code, tables, in)

	// Starter 19% on £192.17, basic 20% to £1,165.92, intermediate 21%
	// on the rest of £1,952.50.
	require.Len(t, res.Breakdown, 3)
	assert.Equal(t, int64(3651), res.Breakdown[0].TaxPence)
	assert.Equal(t, int64(19475), res.Breakdown[1].TaxPence)
	assert.Equal(t, int64(16518), res.Breakdown[2].TaxPence)
	assert.Equal(t, int64(39644), res.TaxPence)
}

func TestCalculateIncomeTax_WelshMatchesRestOfUK(t *testing.T) {
	tables, err := LoadTaxYearTables("2024-25")
	require.NoError(t, err)

	welsh, err := ParseTaxCode("C1257L")
	require.NoError(t, err)
	ruk, err := ParseTaxCode("1257L")
	require.NoError(t, err)

	in := CalculationInput{
		TaxYear:       "2024-25",
		TaxCode:       "C1257L",
		PayFrequency:  FrequencyMonthly,
		PeriodNumber:  1,
		GrossPayPence: 300000,
		NICategory:    NICategoryA,
	}
	assert.Equal(t, calculateIncomeTax(ruk, tables, in).TaxPence, calculateIncomeTax(welsh, tables, in).TaxPence,
		"Welsh rates currently mirror the rest of the UK")
}
