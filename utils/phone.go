package utils

import (
	"regexp"
	"strings"
)

// FormatPhoneNumber formats a phone number to a standard format
// Removes all non-digit characters and ensures it starts with country code
func FormatPhoneNumber(phoneNumber string) string {
	// Remove all non-digit characters
	re := regexp.MustCompile(`\D`)
	digits := re.ReplaceAllString(phoneNumber, "")

	// If it doesn't start with country code, assume Philippines (+63)
	if len(digits) > 0 && !strings.HasPrefix(digits, "63") {
		// Remove leading zeros
		digits = strings.TrimLeft(digits, "0")
		// Add Philippines country code
		digits = "63" + digits
	}

	return digits
}

// ValidatePhoneNumber validates if a phone number is a correct
// Philippine mobile number
func ValidatePhoneNumber(phoneNumber string) bool {
	re := regexp.MustCompile(`\D`)
	cleaned := re.ReplaceAllString(phoneNumber, "")

	// Drop country code or trunk zero before checking
	cleaned = strings.TrimPrefix(cleaned, "63")
	cleaned = strings.TrimPrefix(cleaned, "0")

	// Mobile numbers are 10 digits starting with 9
	if len(cleaned) != 10 {
		return false
	}
	return strings.HasPrefix(cleaned, "9")
}

// NormalizePhoneNumber normalizes phone number for database storage
func NormalizePhoneNumber(phoneNumber string) string {
	return FormatPhoneNumber(phoneNumber)
}

// DisplayPhoneNumber formats phone number for display
func DisplayPhoneNumber(phoneNumber string) string {
	formatted := FormatPhoneNumber(phoneNumber)
	if len(formatted) == 12 && strings.HasPrefix(formatted, "63") {
		// Format as +63 XXX XXX XXXX
		return "+" + formatted[:2] + " " + formatted[2:5] + " " + formatted[5:8] + " " + formatted[8:]
	}
	return phoneNumber
}
