package util

import (
	"fmt"
	"strings"
)

// LocalNumberLength is the digit count of a canonical local contact number.
const LocalNumberLength = 10

// NormalizeLocalNumber reduces a contact number to its canonical 10-digit form.
// Non-digits are stripped and any leading country or trunk prefix is dropped by
// keeping the last 10 digits. It returns "" when fewer than 10 digits remain.
func NormalizeLocalNumber(raw string) string {
	var digits strings.Builder
	digits.Grow(len(raw))

	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	s := digits.String()
	if len(s) < LocalNumberLength {
		return ""
	}

	return s[len(s)-LocalNumberLength:]
}

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}
