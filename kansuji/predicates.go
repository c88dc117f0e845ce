// Input format predicates for numeral conversion.
package kansuji

import "golang.org/x/text/width"

// IsDecimalInteger reports whether s is a non-empty string of ASCII
// digits.
func IsDecimalInteger(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// IsDecimalNumber reports whether s is a non-empty string of ASCII digits
// with at most one decimal point. A trailing point ("123456.") is
// accepted.
func IsDecimalNumber(s string) bool {
	if s == "" {
		return false
	}
	points := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			points++
			if points >= 2 {
				return false
			}
		} else if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// IsArabicNumber reports whether s is non-empty and every rune is a
// half-width or full-width decimal digit.
func IsArabicNumber(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isArabicDigit(r) {
			return false
		}
	}
	return true
}

// isArabicDigit reports whether r is a half-width or full-width decimal
// digit. Full-width digits are detected by their East Asian width
// property and fold to their half-width counterparts.
func isArabicDigit(r rune) bool {
	if r >= '0' && r <= '9' {
		return true
	}
	p := width.LookupRune(r)
	if p.Kind() != width.EastAsianFullwidth {
		return false
	}
	f := p.Folded()
	return f >= '0' && f <= '9'
}
