package secrets

import "strings"

const maskInfix = "****"

// Mask returns a display-safe representation of a secret for the UI.
// Values of four characters or fewer are fully redacted; longer values
// keep the first two and last four characters. Masking is a one-way
// presentation transform and is never applied before storage or
// re-encryption.
func Mask(value string) string {
	if value == "" {
		return ""
	}

	runes := []rune(value)
	if len(runes) <= 4 { //nolint:mnd
		return strings.Repeat("*", len(runes))
	}

	return string(runes[:2]) + maskInfix + string(runes[len(runes)-4:])
}
