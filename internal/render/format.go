package render

import (
	"math"
	"strconv"
	"strings"
)

// decimal formats f with two fractional digits, rounding half up on the
// shortest decimal representation of f (12.345 -> "12.35").
func decimal(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'f', 2, 64)
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	whole, frac, _ := strings.Cut(s, ".")
	if len(frac) <= 2 {
		return sign + whole + "." + frac + strings.Repeat("0", 2-len(frac))
	}

	digits := whole + frac[:2]
	if frac[2] >= '5' {
		digits = increment(digits)
	}
	return sign + digits[:len(digits)-2] + "." + digits[len(digits)-2:]
}

// increment adds one to a string of decimal digits.
func increment(digits string) string {
	b := []byte(digits)
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] < '9' {
			b[i]++
			return string(b)
		}
		b[i] = '0'
	}
	return "1" + string(b)
}
