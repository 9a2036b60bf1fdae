package paye

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateNationalInsurance_CategoryA(t *testing.T) {
	tables, err := LoadTaxYearTables("2024-25")
	require.NoError(t, err)

	cases := []struct {
		name     string
		earnings int64
		freq     PayFrequency
		employee int64
		employer int64
	}{
		// Monthly PT £1,048, UEL £4,189, ST £758.
		{"monthly below PT", 100000, FrequencyMonthly, 0, 3340},
		{"monthly between PT and UEL", 300000, FrequencyMonthly, 15616, 30940},
		{"monthly above UEL", 500000, FrequencyMonthly, 26750, 58540},
		// Weekly PT £242, UEL £967, ST £175.
		{"weekly between PT and UEL", 50000, FrequencyWeekly, 2064, 4485},
		// Biweekly PT £484, UEL £1,934, ST £350.
		{"biweekly between PT and UEL", 100000, FrequencyBiweekly, 4128, 8970},
		{"zero earnings", 0, FrequencyMonthly, 0, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ni, err := calculateNationalInsurance(c.earnings, NICategoryA, c.freq, tables)
			require.NoError(t, err)
			assert.Equal(t, c.employee, ni.EmployeePence, "employee NI")
			assert.Equal(t, c.employer, ni.EmployerPence, "employer NI")
		})
	}
}

func TestCalculateNationalInsurance_CategoryRates(t *testing.T) {
	tables, err := LoadTaxYearTables("2024-25")
	require.NoError(t, err)

	// All at monthly earnings of £3,000, between PT and UEL.
	cases := []struct {
		category NICategory
		employee int64
		employer int64
	}{
		{NICategoryA, 15616, 30940},
		{NICategoryB, 3611, 30940}, // married women's reduced rate 1.85%
		{NICategoryC, 0, 30940},    // over state pension age: no employee NI
		{NICategoryH, 15616, 0},    // apprentice under 25: employer relieved
		{NICategoryJ, 3904, 30940}, // deferred 2%
		{NICategoryM, 15616, 0},    // under 21: employer relieved
		{NICategoryZ, 3904, 0},     // under 21 deferred
	}
	for _, c := range cases {
		t.Run(string(c.category), func(t *testing.T) {
			ni, err := calculateNationalInsurance(300000, c.category, FrequencyMonthly, tables)
			require.NoError(t, err)
			assert.Equal(t, c.employee, ni.EmployeePence, "employee NI for category %s", c.category)
			assert.Equal(t, c.employer, ni.EmployerPence, "employer NI for category %s", c.category)
		})
	}
}

func TestCalculateNationalInsurance_EmployerRateRise(t *testing.T) {
	tables, err := LoadTaxYearTables("2025-26")
	require.NoError(t, err)

	// 15% above the lowered £417 monthly secondary threshold.
	ni, err := calculateNationalInsurance(300000, NICategoryA, FrequencyMonthly, tables)
	require.NoError(t, err)
	assert.Equal(t, int64(15616), ni.EmployeePence, "employee rates unchanged")
	assert.Equal(t, int64(38745), ni.EmployerPence)
}

func TestCalculateNationalInsurance_PerPeriodOnly(t *testing.T) {
	tables, err := LoadTaxYearTables("2024-25")
	require.NoError(t, err)

	// Two identical periods produce identical NI; there is no year-to-date
	// carry in NI regardless of how much was earned before.
	first, err := calculateNationalInsurance(300000, NICategoryA, FrequencyMonthly, tables)
	require.NoError(t, err)
	second, err := calculateNationalInsurance(300000, NICategoryA, FrequencyMonthly, tables)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCalculateNationalInsurance_UnknownCategory(t *testing.T) {
	tables, err := LoadTaxYearTables("2024-25")
	require.NoError(t, err)

	_, err = calculateNationalInsurance(300000, NICategory("Q"), FrequencyMonthly, tables)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownNICategory))
}
