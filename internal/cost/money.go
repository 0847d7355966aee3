package cost

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// FormatCents renders an amount in cents as a euro string with a
// decimal comma, e.g. 123456 -> "€1234,56".
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	return fmt.Sprintf("%s€%d,%02d", sign, cents/100, cents%100)
}

// ParseDecimalToCents converts a decimal euro string to cents. Both
// "12.34" and "12,34" are accepted. A third decimal digit is rounded
// half-up. Only positive amounts are valid.
func ParseDecimalToCents(s string) (int64, error) {
	s = strings.TrimSpace(strings.TrimPrefix(s, "€"))
	if s == "" {
		return 0, ErrInvalidAmount
	}

	s = strings.ReplaceAll(s, ",", ".")

	intPart, fracPart, _ := strings.Cut(s, ".")
	if intPart == "" {
		intPart = "0"
	}

	if strings.Contains(fracPart, ".") {
		return 0, ErrInvalidAmount
	}

	for _, r := range intPart + fracPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}

	euros, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}

	// Normalize the fraction to three digits so the third can be used
	// for half-up rounding.
	fracPart += "000"

	frac, err := strconv.ParseInt(fracPart[:3], 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}

	cents := euros*100 + frac/10
	if frac%10 >= 5 {
		cents++
	}

	if cents <= 0 {
		return 0, ErrInvalidAmount
	}

	return cents, nil
}
