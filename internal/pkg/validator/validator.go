package validator

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// UUIDv7 regex: version 7 (the 15th character must be '7'), all lowercase hex digits.
var uuidv7Regex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-7[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// UUIDv7 validation
func IsValidUUID(uuid string) bool {
	return uuidv7Regex.MatchString(strings.ToLower(uuid))
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// Date validation (YYYY-MM-DD)
func IsValidDate(dateStr string) bool {
	_, err := time.Parse("2006-01-02", dateStr)
	return err == nil
}

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse("2006-01-02", dateStr)
}

// Before reports whether date a falls strictly before date b. Malformed
// dates compare false; validate them first.
func Before(a, b string) bool {
	ta, errA := time.Parse("2006-01-02", a)
	tb, errB := time.Parse("2006-01-02", b)
	if errA != nil || errB != nil {
		return false
	}
	return ta.Before(tb)
}

// Tax-code regex: numeric codes with an L/M/N/T/Y suffix, K codes, the fixed
// codes BR/D0/D1/0T (all four groups take an optional S or C regime prefix),
// NT, and an optional space-separated W1/M1/X non-cumulative flag. This is
// the upstream gate; the engine's parser re-checks the same grammar.
var taxCodeRegex = regexp.MustCompile(`^((S|C)?\d{1,4}[LMNTY]|(S|C)?K\d{1,4}|(S|C)?(BR|D0|D1|0T)|NT)( ?(W1|M1|X))?$`)

// UK tax code validation (e.g. 1257L, K475, BR, S1257L M1)
func IsValidTaxCode(code string) bool {
	return taxCodeRegex.MatchString(strings.ToUpper(strings.TrimSpace(code)))
}

var taxYearRegex = regexp.MustCompile(`^(\d{4})-(\d{2})$`)

// Tax year validation: YYYY-YY where the short year follows the full year,
// e.g. 2024-25 or 2099-00.
func IsValidTaxYear(taxYear string) bool {
	m := taxYearRegex.FindStringSubmatch(taxYear)
	if m == nil {
		return false
	}
	start, _ := strconv.Atoi(m[1])
	end, _ := strconv.Atoi(m[2])
	return (start+1)%100 == end
}

// National Insurance numbers never use D, F, I, Q, U, or V in the prefix,
// never O as the second letter, and a handful of prefixes are reserved.
var (
	ninoRegex            = regexp.MustCompile(`^[A-CEGHJ-PR-TW-Z][A-CEGHJ-NPR-TW-Z][0-9]{6}[A-D]$`)
	ninoReservedPrefixes = []string{"BG", "GB", "KN", "NK", "NT", "TN", "ZZ"}
)

// NINO validation (UK National Insurance number, e.g. QQ123456C)
func IsValidNINO(nino string) bool {
	n := strings.ToUpper(strings.ReplaceAll(nino, " ", ""))
	if !ninoRegex.MatchString(n) {
		return false
	}
	return !IsInSlice(n[:2], ninoReservedPrefixes)
}

// Sort code validation: six digits, dashes or spaces allowed (12-34-56).
func IsValidSortCode(sortCode string) bool {
	s := strings.ReplaceAll(sortCode, "-", "")
	s = strings.ReplaceAll(s, " ", "")
	return len(s) == 6 && IsNumeric(s)
}

// Bank account number validation: exactly eight digits.
func IsValidAccountNumber(accountNumber string) bool {
	return len(accountNumber) == 8 && IsNumeric(accountNumber)
}

// VAT registration number validation: nine digits, optional GB prefix.
func IsValidVATNumber(vatNumber string) bool {
	v := strings.ToUpper(strings.ReplaceAll(vatNumber, " ", ""))
	v = strings.TrimPrefix(v, "GB")
	return len(v) == 9 && IsNumeric(v)
}

var payeReferenceRegex = regexp.MustCompile(`^\d{3}/[A-Z0-9]{1,10}$`)

// Employer PAYE reference validation: tax office number, slash, office
// reference (e.g. 123/AB45678).
func IsValidPAYEReference(ref string) bool {
	return payeReferenceRegex.MatchString(strings.ToUpper(strings.TrimSpace(ref)))
}

// Phone number validation: UK numbers starting 0 or +44, 10-11 digits after
// normalization.
func IsValidPhoneNumber(phone string) bool {
	p := strings.ReplaceAll(phone, " ", "")
	p = strings.ReplaceAll(p, "-", "")

	if strings.HasPrefix(p, "+44") {
		p = "0" + strings.TrimPrefix(p, "+44")
	}
	if !strings.HasPrefix(p, "0") {
		return false
	}
	return (len(p) == 10 || len(p) == 11) && IsNumeric(p)
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}
