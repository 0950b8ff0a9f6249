package usecase

import "strings"

// FormatPassphrase normalizes a raw passphrase into the dd-mm-yyyy shape the
// identity table stores: non-digits are stripped, at most 8 digits are kept,
// and hyphens are inserted after the day and month groups.
func FormatPassphrase(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) > 8 {
		digits = digits[:8]
	}

	switch {
	case len(digits) >= 5:
		return digits[:2] + "-" + digits[2:4] + "-" + digits[4:]
	case len(digits) >= 3:
		return digits[:2] + "-" + digits[2:]
	default:
		return digits
	}
}
