package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // valid UUIDv7
		"0188D0F2-7B8C-7B4A-8A2B-6B8B8B8B8B8B", // valid UUIDv7 (uppercase)
	}
	invalid := []string{
		"123e4567-e89b-12d3-a456-426614174000", // not v7
		"123E4567-E89B-12D3-A456-426614174000", // not v7
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",     // missing dashes
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // invalid hex
		"",                                     // empty
	}
	for _, uuid := range valid {
		if !IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = false, want true", uuid)
		}
	}
	for _, uuid := range invalid {
		if IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = true, want false", uuid)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	valid := []string{"123", "0", "9876543210"}
	invalid := []string{"abc", "123a", "", "-123"}
	for _, s := range valid {
		if !IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", "01-01-2023", ""}
	for _, s := range valid {
		if !IsValidDate(s) {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidDate(s) {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestBefore(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"2025-01-01", "2025-01-02", true},
		{"2025-01-02", "2025-01-01", false},
		{"2025-01-01", "2025-01-01", false},
		{"not-a-date", "2025-01-01", false},
		{"2025-01-01", "not-a-date", false},
	}
	for _, c := range cases {
		if got := Before(c.a, c.b); got != c.want {
			t.Errorf("Before(%q, %q) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestIsValidTaxCode(t *testing.T) {
	valid := []string{
		"1257L", "1257l", " 1257L ", "45T", "1257M", "1257N", "2Y",
		"K475", "SK475", "CK475",
		"S1257L", "C1257L",
		"BR", "SBR", "CBR", "D0", "SD0", "D1", "CD1", "0T", "S0T", "NT",
		"1257L W1", "1257LW1", "1257L M1", "1257LX", "K475 X", "BR W1", "NT X",
	}
	invalid := []string{
		"", "L", "12570L", "1257", "1257A", "K", "K475L", "X1257L",
		"SNT", "D2", "B R", "1257L W2", "1257L-W1", "1257 L",
	}
	for _, code := range valid {
		if !IsValidTaxCode(code) {
			t.Errorf("IsValidTaxCode(%q) = false, want true", code)
		}
	}
	for _, code := range invalid {
		if IsValidTaxCode(code) {
			t.Errorf("IsValidTaxCode(%q) = true, want false", code)
		}
	}
}

func TestIsValidTaxYear(t *testing.T) {
	valid := []string{"2024-25", "2025-26", "1999-00", "2089-90"}
	invalid := []string{"", "2024", "2024-2025", "2024-26", "2024-24", "24-25", "2024/25"}
	for _, y := range valid {
		if !IsValidTaxYear(y) {
			t.Errorf("IsValidTaxYear(%q) = false, want true", y)
		}
	}
	for _, y := range invalid {
		if IsValidTaxYear(y) {
			t.Errorf("IsValidTaxYear(%q) = true, want false", y)
		}
	}
}

func TestIsValidNINO(t *testing.T) {
	valid := []string{"AB123456C", "ab 12 34 56 d", "JR054321A", "CE987654B"}
	invalid := []string{
		"", "A123456C", "AB12345C", "AB1234567C", "AB123456E",
		"QQ123456C",                                        // Q not allowed in the prefix
		"DA123456C",                                        // D not allowed in the prefix
		"AO123456C",                                        // O not allowed as second letter
		"BG123456A", "GB123456A", "NT123456A", "ZZ123456A", // reserved prefixes
	}
	for _, n := range valid {
		if !IsValidNINO(n) {
			t.Errorf("IsValidNINO(%q) = false, want true", n)
		}
	}
	for _, n := range invalid {
		if IsValidNINO(n) {
			t.Errorf("IsValidNINO(%q) = true, want false", n)
		}
	}
}

func TestIsValidSortCode(t *testing.T) {
	valid := []string{"123456", "12-34-56", "12 34 56"}
	invalid := []string{"", "12345", "1234567", "12-34-5a", "ab-cd-ef"}
	for _, s := range valid {
		if !IsValidSortCode(s) {
			t.Errorf("IsValidSortCode(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidSortCode(s) {
			t.Errorf("IsValidSortCode(%q) = true, want false", s)
		}
	}
}

func TestIsValidAccountNumber(t *testing.T) {
	valid := []string{"12345678", "00000000"}
	invalid := []string{"", "1234567", "123456789", "1234567a"}
	for _, s := range valid {
		if !IsValidAccountNumber(s) {
			t.Errorf("IsValidAccountNumber(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidAccountNumber(s) {
			t.Errorf("IsValidAccountNumber(%q) = true, want false", s)
		}
	}
}

func TestIsValidVATNumber(t *testing.T) {
	valid := []string{"123456789", "GB123456789", "gb 123 456 789"}
	invalid := []string{"", "12345678", "1234567890", "GB12345678", "GBX23456789"}
	for _, v := range valid {
		if !IsValidVATNumber(v) {
			t.Errorf("IsValidVATNumber(%q) = false, want true", v)
		}
	}
	for _, v := range invalid {
		if IsValidVATNumber(v) {
			t.Errorf("IsValidVATNumber(%q) = true, want false", v)
		}
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	valid := []string{"07700900123", "0770 090 0123", "+447700900123", "020 7946 0958"}
	invalid := []string{"", "7700900123", "0770090", "077009001234567", "07700abc123"}
	for _, phone := range valid {
		if !IsValidPhoneNumber(phone) {
			t.Errorf("IsValidPhoneNumber(%q) = false, want true", phone)
		}
	}
	for _, phone := range invalid {
		if IsValidPhoneNumber(phone) {
			t.Errorf("IsValidPhoneNumber(%q) = true, want false", phone)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"a", "b", "c"}
	if !IsInSlice("a", slice) {
		t.Errorf("IsInSlice('a') = false, want true")
	}
	if IsInSlice("d", slice) {
		t.Errorf("IsInSlice('d') = true, want false")
	}
}

func TestIsValidPAYEReference(t *testing.T) {
	valid := []string{"123/AB45678", "951/Z1", "123/ab45678", " 075/ABCDEFGHIJ "}
	invalid := []string{"", "123AB45678", "12/AB45678", "1234/AB45678", "123/", "123/AB456789012"}
	for _, ref := range valid {
		if !IsValidPAYEReference(ref) {
			t.Errorf("IsValidPAYEReference(%q) = false, want true", ref)
		}
	}
	for _, ref := range invalid {
		if IsValidPAYEReference(ref) {
			t.Errorf("IsValidPAYEReference(%q) = true, want false", ref)
		}
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "invalid"},
		{Field: "tax_code", Message: "required"},
	}
	got := errs.Error()
	want := "email: invalid; tax_code: required"
	if got != want {
		t.Errorf("ValidationErrors.Error() = %q, want %q", got, want)
	}
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "invalid"},
		{Field: "tax_code", Message: "required"},
	}
	got := errs.ToMap()
	want := map[string]string{"email": "invalid", "tax_code": "required"}
	if len(got) != len(want) {
		t.Errorf("ValidationErrors.ToMap() length = %d, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("ValidationErrors.ToMap()[%q] = %q, want %q", k, got[k], v)
		}
	}
}
