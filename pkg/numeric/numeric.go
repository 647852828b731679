// Package numeric is the single place where user-supplied text becomes a
// number. Parsing never fails: callers either get ok=false or zero.
package numeric

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// leading numeric prefix, the same text parseFloat-style input accepts
var numberPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// Limits of a double: larger magnitudes overflow to Infinity, which is not a
// number here, smaller ones underflow to zero.
const (
	maxMagnitude   = 308
	minMagnitude   = -324
	maxSignificant = 17
)

// Parse reads the longest leading number in s. A comma is accepted as the
// decimal separator. Text without a numeric prefix is not a number.
func Parse(s string) (decimal.Decimal, bool) {
	s = strings.Replace(strings.TrimSpace(s), ",", ".", 1)
	m := numberPrefix.FindString(s)
	if m == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(m)
	if err != nil {
		return decimal.Zero, false
	}
	return bound(d)
}

// bound keeps d within double range and precision so later arithmetic stays
// small and exponents cannot overflow.
func bound(d decimal.Decimal) (decimal.Decimal, bool) {
	if d.IsZero() {
		return decimal.Zero, true
	}
	digits := int64(len(d.Coefficient().Text(10)))
	if d.Sign() < 0 {
		digits--
	}
	magnitude := int64(d.Exponent()) + digits - 1
	switch {
	case magnitude > maxMagnitude:
		return decimal.Zero, false
	case magnitude < minMagnitude:
		return decimal.Zero, true
	}
	if digits > maxSignificant {
		d = d.Round(int32(maxSignificant - 1 - magnitude))
	}
	return d, true
}

// ParseOrZero is Parse with zero for anything that is not a number.
func ParseOrZero(s string) decimal.Decimal {
	d, _ := Parse(s)
	return d
}
