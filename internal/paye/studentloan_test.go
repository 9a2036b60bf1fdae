package paye

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateStudentLoan_Plan2MonthlyThreshold(t *testing.T) {
	tables, err := LoadTaxYearTables("2024-25")
	require.NoError(t, err)

	// Plan 2 threshold £27,295/year periodizes to £2,274.58 a month.
	cases := []struct {
		name     string
		earnings int64
		want     int64
	}{
		{"below threshold", 200000, 0},
		{"at threshold", 227458, 0},
		{"£100 above threshold", 237458, 900}, // 9% of £100 exactly
		{"floor rounding", 237459, 900},       // 9% of £100.01 = £9.0009, floored
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := calculateStudentLoan(c.earnings, Plan2, FrequencyMonthly, tables)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestCalculateStudentLoan_PlanThresholdsDiffer(t *testing.T) {
	tables, err := LoadTaxYearTables("2024-25")
	require.NoError(t, err)

	// Same monthly earnings, different plan, different deduction.
	const earnings = 300000
	plan1, err := calculateStudentLoan(earnings, Plan1, FrequencyMonthly, tables)
	require.NoError(t, err)
	plan2, err := calculateStudentLoan(earnings, Plan2, FrequencyMonthly, tables)
	require.NoError(t, err)
	plan4, err := calculateStudentLoan(earnings, Plan4, FrequencyMonthly, tables)
	require.NoError(t, err)
	postgrad, err := calculateStudentLoan(earnings, PlanPostgrad, FrequencyMonthly, tables)
	require.NoError(t, err)

	// Plan 1 round(£24,990/12) = £2,082.50; 9% of £917.50 floored.
	assert.Equal(t, int64(8257), plan1)
	// Plan 2 9% of £725.42 floored.
	assert.Equal(t, int64(6528), plan2)
	// Plan 4 round(£31,395/12) = £2,616.25; 9% of £383.75 floored.
	assert.Equal(t, int64(3453), plan4)
	// Postgraduate 6% of £1,250 exactly.
	assert.Equal(t, int64(7500), postgrad)

	assert.Greater(t, plan1, plan2, "lower threshold repays more")
	assert.Greater(t, plan2, plan4, "lower threshold repays more")
}

func TestCalculateStudentLoan_WeeklyThreshold(t *testing.T) {
	tables, err := LoadTaxYearTables("2024-25")
	require.NoError(t, err)

	// Plan 1 round(£24,990/52) = £480.58; 9% of £119.42 = £10.7478 floored.
	got, err := calculateStudentLoan(60000, Plan1, FrequencyWeekly, tables)
	require.NoError(t, err)
	assert.Equal(t, int64(1074), got)
}

func TestCalculateStudentLoan_NoPlan(t *testing.T) {
	tables, err := LoadTaxYearTables("2024-25")
	require.NoError(t, err)

	got, err := calculateStudentLoan(1000000, PlanNone, FrequencyMonthly, tables)
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestCalculateStudentLoan_UnknownPlan(t *testing.T) {
	tables, err := LoadTaxYearTables("2024-25")
	require.NoError(t, err)

	_, err = calculateStudentLoan(300000, StudentLoanPlan("plan9"), FrequencyMonthly, tables)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownLoanPlan))
}
