package paye

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculatePension_OptedOut(t *testing.T) {
	res := calculatePension(CalculationInput{
		GrossPayPence:                  300000,
		PensionOptIn:                   false,
		PensionContributionBasisPoints: 500,
		EmployerPensionBasisPoints:     300,
	})
	assert.Zero(t, res.EmployeePence)
	assert.Zero(t, res.EmployerPence)
}

func TestCalculatePension_AutoEnrolmentRates(t *testing.T) {
	// 5% employee / 3% employer on £3,000.
	res := calculatePension(CalculationInput{
		GrossPayPence:                  300000,
		PensionOptIn:                   true,
		PensionContributionBasisPoints: 500,
		EmployerPensionBasisPoints:     300,
	})
	assert.Equal(t, int64(15000), res.EmployeePence)
	assert.Equal(t, int64(9000), res.EmployerPence)
}

func TestCalculatePension_BonusAndCommissionArePensionable(t *testing.T) {
	res := calculatePension(CalculationInput{
		GrossPayPence:                  300000,
		BonusPence:                     50000,
		CommissionPence:                25000,
		PensionOptIn:                   true,
		PensionContributionBasisPoints: 500,
		EmployerPensionBasisPoints:     300,
	})
	assert.Equal(t, int64(18750), res.EmployeePence, "5%% of £3,750")
	assert.Equal(t, int64(11250), res.EmployerPence, "3%% of £3,750")
}

func TestCalculatePension_IndependentRounding(t *testing.T) {
	// Each side rounds its own product to the nearest penny; the employer
	// figure is never derived from the employee one.
	res := calculatePension(CalculationInput{
		GrossPayPence:                  300001,
		PensionOptIn:                   true,
		PensionContributionBasisPoints: 125,
		EmployerPensionBasisPoints:     175,
	})
	assert.Equal(t, int64(3750), res.EmployeePence, "1.25%% of £3,000.01 = £37.500125")
	assert.Equal(t, int64(5250), res.EmployerPence, "1.75%% of £3,000.01 = £52.500175")
}
