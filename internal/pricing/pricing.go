// Package pricing is the single home of the storefront's money rules: price
// string parsing, the tax and shipping constants, and display rounding. The
// cart and checkout views must never reimplement these.
package pricing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"grocery-storefront/internal/domain"
)

const (
	taxRate               = 0.08
	freeShippingThreshold = 50.0
	shippingFlat          = 5.99
)

// ParsePrice converts a display-formatted price string into a plain amount.
// Currency symbols, whitespace and thousands separators are stripped; a
// string that still fails to parse counts as zero so stale snapshot data can
// never break cart math. Catalog input goes through ValidatePrice instead.
func ParsePrice(s string) float64 {
	v, err := strconv.ParseFloat(stripPrice(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// ValidatePrice rejects price strings that would silently degrade to zero in
// ParsePrice. Catalog data is internal, so a malformed price is a startup
// error rather than something to tolerate in the hot path.
func ValidatePrice(s string) error {
	stripped := stripPrice(s)
	if stripped == "" {
		return fmt.Errorf("price %q contains no amount", s)
	}
	v, err := strconv.ParseFloat(stripped, 64)
	if err != nil {
		return fmt.Errorf("price %q is not a valid amount", s)
	}
	if v <= 0 {
		return fmt.Errorf("price %q must be positive", s)
	}
	return nil
}

func stripPrice(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Compute derives order totals from a cart subtotal: flat 8% tax, 5.99
// shipping waived only strictly above the free-shipping threshold. All four
// values stay unrounded; rounding happens at display time via Format.
func Compute(subtotal float64) domain.Totals {
	tax := subtotal * taxRate
	shipping := shippingFlat
	if subtotal > freeShippingThreshold {
		shipping = 0
	}
	return domain.Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Total:    subtotal + tax + shipping,
	}
}

// Format renders an amount with two decimals, rounding half away from zero.
// Each displayed figure is rounded independently, so a displayed total can
// differ by a cent from the sum of the displayed components.
func Format(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// FormatEuro is Format with the storefront's currency symbol prefixed.
func FormatEuro(v float64) string {
	return "€" + Format(v)
}
