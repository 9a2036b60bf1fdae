package paye

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Tax-code grammar. A leading S or C selects the Scottish or Welsh band
// table; K flips the numeric allowance negative; a trailing W1, M1, or X
// (optionally space-separated) makes the code non-cumulative. NT takes no
// regime prefix.
var (
	numericCodeRegex = regexp.MustCompile(`^(S|C)?(\d{1,4})(L|M|N|T|Y)( ?(W1|M1|X))?$`)
	kCodeRegex       = regexp.MustCompile(`^(S|C)?K(\d{1,4})( ?(W1|M1|X))?$`)
	fixedCodeRegex   = regexp.MustCompile(`^(S|C)?(BR|D0|D1|0T)( ?(W1|M1|X))?$`)
	noTaxCodeRegex   = regexp.MustCompile(`^NT( ?(W1|M1|X))?$`)
)

// Flat rates for the fixed codes, in permille. These are part of the code's
// definition rather than the yearly tables: BR taxes everything at basic
// rate, D0 at higher, D1 at additional.
var fixedRatePermille = map[string]int64{
	"BR": 200,
	"D0": 400,
	"D1": 450,
}

// ParseTaxCode decodes a raw tax-code string into its computation
// parameters. Input is normalized (trimmed, upper-cased) before matching;
// anything outside the recognized grammar returns ErrInvalidTaxCode. One
// code unit equals £10 of annual allowance, so 1257L carries £12,570.
func ParseTaxCode(raw string) (TaxCode, error) {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if code == "" {
		return TaxCode{}, fmt.Errorf("empty tax code: %w", ErrInvalidTaxCode)
	}

	if m := noTaxCodeRegex.FindStringSubmatch(code); m != nil {
		return TaxCode{
			Raw:        code,
			Regime:     RegimeRestOfUK,
			Kind:       TaxCodeNoTax,
			Cumulative: m[2] == "",
		}, nil
	}

	if m := fixedCodeRegex.FindStringSubmatch(code); m != nil {
		tc := TaxCode{
			Raw:        code,
			Regime:     regimeFromPrefix(m[1]),
			Cumulative: m[4] == "",
		}
		if m[2] == "0T" {
			// 0T runs the full band table with no allowance.
			tc.Kind = TaxCodeBanded
			return tc, nil
		}
		tc.Kind = TaxCodeFixedRate
		tc.FixedRatePermille = fixedRatePermille[m[2]]
		return tc, nil
	}

	if m := kCodeRegex.FindStringSubmatch(code); m != nil {
		n, err := strconv.ParseInt(m[2], 10, 64)
		if err != nil {
			return TaxCode{}, fmt.Errorf("tax code %q: %w", code, ErrInvalidTaxCode)
		}
		return TaxCode{
			Raw:            code,
			Regime:         regimeFromPrefix(m[1]),
			Kind:           TaxCodeBanded,
			AllowancePence: -n * 1000,
			Cumulative:     m[4] == "",
		}, nil
	}

	if m := numericCodeRegex.FindStringSubmatch(code); m != nil {
		n, err := strconv.ParseInt(m[2], 10, 64)
		if err != nil {
			return TaxCode{}, fmt.Errorf("tax code %q: %w", code, ErrInvalidTaxCode)
		}
		return TaxCode{
			Raw:            code,
			Regime:         regimeFromPrefix(m[1]),
			Kind:           TaxCodeBanded,
			AllowancePence: n * 1000,
			Cumulative:     m[5] == "",
		}, nil
	}

	return TaxCode{}, fmt.Errorf("tax code %q: %w", code, ErrInvalidTaxCode)
}

// IsValidTaxCode reports whether raw matches the recognized tax-code grammar.
func IsValidTaxCode(raw string) bool {
	_, err := ParseTaxCode(raw)
	return err == nil
}

func regimeFromPrefix(prefix string) Regime {
	switch prefix {
	case "S":
		return RegimeScotland
	case "C":
		return RegimeWales
	default:
		return RegimeRestOfUK
	}
}
