// Package money handles fixed-point currency amounts. Catalog prices arrive as
// strings like "$19.99" or "10"; everything downstream works in integer cents.
package money

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Cents is an amount in hundredths of the currency unit.
type Cents int64

// Parse normalizes a price string to cents. A single leading "$" is tolerated.
// Amounts with more than two fraction digits are rounded half-up at two
// decimals. Negative or malformed amounts are rejected.
func Parse(s string) (Cents, error) {
	raw := strings.TrimSpace(s)
	raw = strings.TrimPrefix(raw, "$")
	if raw == "" {
		return 0, fmt.Errorf("money: empty amount %q", s)
	}
	if strings.HasPrefix(raw, "-") {
		return 0, fmt.Errorf("money: negative amount %q", s)
	}

	whole, frac := raw, ""
	if i := strings.IndexByte(raw, '.'); i >= 0 {
		whole, frac = raw[:i], raw[i+1:]
	}
	if whole == "" {
		whole = "0"
	}
	if !digits(whole) || (frac != "" && !digits(frac)) {
		return 0, fmt.Errorf("money: malformed amount %q", s)
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("money: amount %q out of range", s)
	}
	// scaling to cents (plus up to 99 from the fraction) must not wrap
	if units > (math.MaxInt64-99)/100 {
		return 0, fmt.Errorf("money: amount %q out of range", s)
	}
	c := Cents(units) * 100

	switch {
	case len(frac) == 0:
	case len(frac) == 1:
		d, _ := strconv.Atoi(frac)
		c += Cents(d * 10)
	default:
		d, err := strconv.Atoi(frac[:2])
		if err != nil {
			return 0, fmt.Errorf("money: malformed amount %q", s)
		}
		c += Cents(d)
		// round half-up on the third fraction digit
		if len(frac) > 2 && frac[2] >= '5' {
			c++
		}
	}
	return c, nil
}

func digits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

// String renders the amount with exactly two fraction digits, e.g. "25.50".
func (c Cents) String() string {
	return fmt.Sprintf("%d.%02d", int64(c)/100, int64(c)%100)
}

// MarshalJSON renders the amount as a quoted fixed-point string so clients
// never see binary-float artifacts.
func (c Cents) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(c.String())), nil
}

// Mul scales a unit price by a line quantity.
func (c Cents) Mul(qty int) Cents { return c * Cents(qty) }
