package domain

import "strings"

// NormalizePhone strips formatting characters (whitespace, parentheses,
// hyphens) so that differently formatted renditions of the same number
// compare equal. Digits and a leading + are preserved untouched.
// Normalization is idempotent.
func NormalizePhone(phone string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '(', ')', '-':
			return -1
		}
		return r
	}, phone)
}
