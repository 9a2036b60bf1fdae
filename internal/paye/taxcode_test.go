package paye

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTaxCode_NumericCodes(t *testing.T) {
	cases := []struct {
		raw            string
		regime         Regime
		allowancePence int64
		cumulative     bool
	}{
		{"1257L", RegimeRestOfUK, 1257000, true},
		{"1185L", RegimeRestOfUK, 1185000, true},
		{"45T", RegimeRestOfUK, 45000, true},
		{"1257M", RegimeRestOfUK, 1257000, true},
		{"1257N", RegimeRestOfUK, 1257000, true},
		{"2Y", RegimeRestOfUK, 2000, true},
		{"S1257L", RegimeScotland, 1257000, true},
		{"C1257L", RegimeWales, 1257000, true},
		{"1257L W1", RegimeRestOfUK, 1257000, false},
		{"1257LW1", RegimeRestOfUK, 1257000, false},
		{"1257L M1", RegimeRestOfUK, 1257000, false},
		{"1257LX", RegimeRestOfUK, 1257000, false},
		{"S1257L X", RegimeScotland, 1257000, false},
		{" 1257l ", RegimeRestOfUK, 1257000, true}, // normalized
	}
	for _, c := range cases {
		code, err := ParseTaxCode(c.raw)
		require.NoError(t, err, "ParseTaxCode(%q)", c.raw)
		assert.Equal(t, TaxCodeBanded, code.Kind, "kind for %q", c.raw)
		assert.Equal(t, c.regime, code.Regime, "regime for %q", c.raw)
		assert.Equal(t, c.allowancePence, code.AllowancePence, "allowance for %q", c.raw)
		assert.Equal(t, c.cumulative, code.Cumulative, "cumulative flag for %q", c.raw)
		assert.False(t, code.NegativeAllowance(), "negative allowance for %q", c.raw)
	}
}

func TestParseTaxCode_KCodes(t *testing.T) {
	cases := []struct {
		raw            string
		regime         Regime
		allowancePence int64
		cumulative     bool
	}{
		{"K475", RegimeRestOfUK, -475000, true},
		{"SK475", RegimeScotland, -475000, true},
		{"CK475", RegimeWales, -475000, true},
		{"K475 W1", RegimeRestOfUK, -475000, false},
		{"K475X", RegimeRestOfUK, -475000, false},
	}
	for _, c := range cases {
		code, err := ParseTaxCode(c.raw)
		require.NoError(t, err, "ParseTaxCode(%q)", c.raw)
		assert.Equal(t, TaxCodeBanded, code.Kind, "kind for %q", c.raw)
		assert.Equal(t, c.regime, code.Regime, "regime for %q", c.raw)
		assert.Equal(t, c.allowancePence, code.AllowancePence, "allowance for %q", c.raw)
		assert.Equal(t, c.cumulative, code.Cumulative, "cumulative flag for %q", c.raw)
		assert.True(t, code.NegativeAllowance(), "%q must flag a negative allowance", c.raw)
	}
}

func TestParseTaxCode_FixedRateCodes(t *testing.T) {
	cases := []struct {
		raw          string
		regime       Regime
		ratePermille int64
	}{
		{"BR", RegimeRestOfUK, 200},
		{"SBR", RegimeScotland, 200},
		{"CBR", RegimeWales, 200},
		{"D0", RegimeRestOfUK, 400},
		{"SD0", RegimeScotland, 400},
		{"D1", RegimeRestOfUK, 450},
		{"CD1", RegimeWales, 450},
	}
	for _, c := range cases {
		code, err := ParseTaxCode(c.raw)
		require.NoError(t, err, "ParseTaxCode(%q)", c.raw)
		assert.Equal(t, TaxCodeFixedRate, code.Kind, "kind for %q", c.raw)
		assert.Equal(t, c.regime, code.Regime, "regime for %q", c.raw)
		assert.Equal(t, c.ratePermille, code.FixedRatePermille, "rate for %q", c.raw)
		assert.Zero(t, code.AllowancePence, "allowance for %q", c.raw)
		assert.True(t, code.Cumulative)
	}

	code, err := ParseTaxCode("BR W1")
	require.NoError(t, err)
	assert.False(t, code.Cumulative)
}

func TestParseTaxCode_ZeroAllowanceCode(t *testing.T) {
	// 0T runs the band table with no allowance rather than a flat rate.
	code, err := ParseTaxCode("0T")
	require.NoError(t, err)
	assert.Equal(t, TaxCodeBanded, code.Kind)
	assert.Zero(t, code.AllowancePence)
	assert.True(t, code.Cumulative)

	code, err = ParseTaxCode("S0T")
	require.NoError(t, err)
	assert.Equal(t, RegimeScotland, code.Regime)
}

func TestParseTaxCode_NoTax(t *testing.T) {
	code, err := ParseTaxCode("NT")
	require.NoError(t, err)
	assert.Equal(t, TaxCodeNoTax, code.Kind)
	assert.True(t, code.Cumulative)

	code, err = ParseTaxCode("NT X")
	require.NoError(t, err)
	assert.False(t, code.Cumulative)
}

func TestParseTaxCode_Invalid(t *testing.T) {
	invalid := []string{
		"", " ", "L", "K", "1257", "12570L", "1257A", "K475L",
		"X1257L", "SNT", "D2", "1257L W2", "1257L-W1", "1257 L", "BRL",
	}
	for _, raw := range invalid {
		_, err := ParseTaxCode(raw)
		require.Error(t, err, "ParseTaxCode(%q)", raw)
		assert.True(t, errors.Is(err, ErrInvalidTaxCode), "ParseTaxCode(%q) error = %v, want ErrInvalidTaxCode", raw, err)
	}
}

func TestIsValidTaxCode(t *testing.T) {
	assert.True(t, IsValidTaxCode("1257L"))
	assert.True(t, IsValidTaxCode("sk475 m1"))
	assert.False(t, IsValidTaxCode("NONSENSE"))
}
