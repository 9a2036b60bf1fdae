package paye

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTaxYearTables_SupportedYears(t *testing.T) {
	for _, year := range []string{"2024-25", "2025-26"} {
		tables, err := LoadTaxYearTables(year)
		require.NoError(t, err, "LoadTaxYearTables(%q)", year)
		assert.Equal(t, year, tables.TaxYear)

		for _, regime := range []Regime{RegimeRestOfUK, RegimeScotland, RegimeWales} {
			bands := tables.IncomeTax[regime]
			require.NotEmpty(t, bands, "bands for %s %s", year, regime)
			assert.Zero(t, bands[0].LowerPence, "first band must start at zero")
			assert.Nil(t, bands[len(bands)-1].UpperPence, "last band must be open-ended")
		}

		for _, freq := range []PayFrequency{FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly} {
			th, ok := tables.NI.Thresholds[freq]
			require.True(t, ok, "NI thresholds for %s %s", year, freq)
			assert.Greater(t, th.UpperPence, th.PrimaryPence)
		}

		for _, cat := range []NICategory{NICategoryA, NICategoryB, NICategoryC, NICategoryH, NICategoryJ, NICategoryM, NICategoryZ} {
			_, ok := tables.NI.Categories[cat]
			assert.True(t, ok, "NI category %s missing in %s", cat, year)
		}

		for _, plan := range []StudentLoanPlan{Plan1, Plan2, Plan4, PlanPostgrad} {
			_, ok := tables.StudentLoans[plan]
			assert.True(t, ok, "student-loan plan %s missing in %s", plan, year)
		}
	}
}

func TestLoadTaxYearTables_KnownFigures(t *testing.T) {
	tables, err := LoadTaxYearTables("2024-25")
	require.NoError(t, err)

	ruk := tables.IncomeTax[RegimeRestOfUK]
	require.Len(t, ruk, 3)
	assert.Equal(t, int64(3770000), *ruk[0].UpperPence, "basic-rate band top")
	assert.Equal(t, int64(200), ruk[0].RatePermille)
	assert.Equal(t, int64(400), ruk[1].RatePermille)
	assert.Equal(t, int64(450), ruk[2].RatePermille)

	scot := tables.IncomeTax[RegimeScotland]
	require.Len(t, scot, 6)
	assert.Equal(t, int64(190), scot[0].RatePermille, "Scottish starter rate")
	assert.Equal(t, int64(480), scot[5].RatePermille, "Scottish top rate")

	monthly := tables.NI.Thresholds[FrequencyMonthly]
	assert.Equal(t, int64(104800), monthly.PrimaryPence)
	assert.Equal(t, int64(418900), monthly.UpperPence)
	assert.Equal(t, int64(75800), monthly.SecondaryPence)

	assert.Equal(t, int64(2729500), tables.StudentLoans[Plan2].AnnualThresholdPence)
	assert.Equal(t, int64(60), tables.StudentLoans[PlanPostgrad].RatePermille)
}

func TestLoadTaxYearTables_EmployerRateChange(t *testing.T) {
	prev, err := LoadTaxYearTables("2024-25")
	require.NoError(t, err)
	next, err := LoadTaxYearTables("2025-26")
	require.NoError(t, err)

	assert.Equal(t, int64(1380), prev.NI.Categories[NICategoryA].EmployerBasisPoints)
	assert.Equal(t, int64(1500), next.NI.Categories[NICategoryA].EmployerBasisPoints)
	assert.Equal(t, int64(41700), next.NI.Thresholds[FrequencyMonthly].SecondaryPence, "2025-26 secondary threshold")
}

func TestLoadTaxYearTables_UnsupportedYear(t *testing.T) {
	for _, year := range []string{"2030-31", "1999-00"} {
		_, err := LoadTaxYearTables(year)
		require.Error(t, err, "LoadTaxYearTables(%q)", year)
		assert.True(t, errors.Is(err, ErrUnsupportedTaxYear), "LoadTaxYearTables(%q) error = %v, want ErrUnsupportedTaxYear", year, err)
	}
}

func TestTaxYearForDate(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"2024-04-05", "2023-24"},
		{"2024-04-06", "2024-25"},
		{"2024-12-31", "2024-25"},
		{"2025-01-01", "2024-25"},
		{"2025-04-05", "2024-25"},
		{"2025-04-06", "2025-26"},
		{"2025-08-25", "2025-26"},
		{"2099-04-06", "2099-00"},
	}

	for _, tt := range tests {
		date, err := time.Parse("2006-01-02", tt.date)
		require.NoError(t, err)
		assert.Equal(t, tt.want, TaxYearForDate(date), "TaxYearForDate(%s)", tt.date)
	}
}

func TestLoadTaxYearTables_CachesParsedTables(t *testing.T) {
	first, err := LoadTaxYearTables("2024-25")
	require.NoError(t, err)
	second, err := LoadTaxYearTables("2024-25")
	require.NoError(t, err)
	assert.Same(t, first, second, "repeated loads must return the cached tables")
}
