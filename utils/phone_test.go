package utils

import "testing"

func TestValidatePhoneNumber(t *testing.T) {
	valid := []string{"09171234567", "+63 917 123 4567", "639171234567", "0917-123-4567"}
	for _, number := range valid {
		if !ValidatePhoneNumber(number) {
			t.Errorf("expected %q to be valid", number)
		}
	}

	invalid := []string{"", "12345", "08171234567", "091712345", "abcdefghij"}
	for _, number := range invalid {
		if ValidatePhoneNumber(number) {
			t.Errorf("expected %q to be invalid", number)
		}
	}
}

func TestFormatPhoneNumber(t *testing.T) {
	if got := FormatPhoneNumber("0917 123 4567"); got != "639171234567" {
		t.Errorf("FormatPhoneNumber = %q, want 639171234567", got)
	}
	if got := FormatPhoneNumber("639171234567"); got != "639171234567" {
		t.Errorf("FormatPhoneNumber should keep country code, got %q", got)
	}
}
