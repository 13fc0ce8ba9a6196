package parser

import "testing"

func TestIsDateFormat(t *testing.T) {
	tests := []struct {
		id       int
		code     string
		expected bool
	}{
		{0, "", false},
		{0, "General", false},
		{2, "0.00", false},
		{14, "", true},
		{22, "", true},
		{0, "yyyy-mm-dd", true},
		{0, "mm-dd-yy", true},
		{0, "h:mm:ss", true},
		{0, "[h]:mm", true},
		{0, "#,##0.00", false},
		{0, `0.00" days"`, false},
		{0, `[Red]0.00`, false},
		{0, `[$-409]d-mmm-yy`, true},
		{0, `0.00;[Red]-0.00`, false},
		{0, "@", false},
	}

	for _, tt := range tests {
		result := isDateFormat(tt.id, tt.code)
		if result != tt.expected {
			t.Errorf("isDateFormat(%d, %q) = %v, expected %v", tt.id, tt.code, result, tt.expected)
		}
	}
}

func TestIsDateFormatCurrencyLocale(t *testing.T) {
	for _, code := range []string{`[$USD] #,##0.00`, `[$-en-US]#,##0`, `[Magenta]0`} {
		if isDateFormatCode(code) {
			t.Errorf("isDateFormatCode(%q) = true, expected false", code)
		}
	}
	for _, code := range []string{`[mm]:ss`, `[ss]`, `[hh]`} {
		if !isDateFormatCode(code) {
			t.Errorf("isDateFormatCode(%q) = false, expected true", code)
		}
	}
}
