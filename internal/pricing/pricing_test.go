package pricing

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"€12.99", 12.99},
		{"€1,234.56", 1234.56},
		{"$1234.56", 1234.56},
		{" € 5.00 ", 5.00},
		{"free", 0},
		{"", 0},
		{"€", 0},
	}
	for _, tc := range cases {
		if got := ParsePrice(tc.in); !almostEqual(got, tc.want) {
			t.Errorf("ParsePrice(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestValidatePrice(t *testing.T) {
	for _, ok := range []string{"€12.99", "$1,234.56", "0.50"} {
		if err := ValidatePrice(ok); err != nil {
			t.Errorf("ValidatePrice(%q) = %v, want nil", ok, err)
		}
	}
	for _, bad := range []string{"free", "", "€", "€0.00", "1.2.3"} {
		if err := ValidatePrice(bad); err == nil {
			t.Errorf("ValidatePrice(%q) = nil, want error", bad)
		}
	}
}

func TestComputeFreeShippingBoundary(t *testing.T) {
	if got := Compute(50.00); !almostEqual(got.Shipping, 5.99) {
		t.Fatalf("shipping at exactly 50.00 = %v, want 5.99", got.Shipping)
	}
	if got := Compute(50.01); got.Shipping != 0 {
		t.Fatalf("shipping at 50.01 = %v, want 0", got.Shipping)
	}
}

func TestComputeOrderScenario(t *testing.T) {
	// Basmati Rice at €20.00 x 2.
	got := Compute(40.00)
	if !almostEqual(got.Subtotal, 40.00) {
		t.Errorf("subtotal = %v, want 40.00", got.Subtotal)
	}
	if !almostEqual(got.Tax, 3.20) {
		t.Errorf("tax = %v, want 3.20", got.Tax)
	}
	if !almostEqual(got.Shipping, 5.99) {
		t.Errorf("shipping = %v, want 5.99", got.Shipping)
	}
	if !almostEqual(got.Total, 49.19) {
		t.Errorf("total = %v, want 49.19", got.Total)
	}
}

func TestComputeTotalIsUnroundedSum(t *testing.T) {
	got := Compute(10.10)
	if !almostEqual(got.Total, got.Subtotal+got.Tax+got.Shipping) {
		t.Fatalf("total %v != subtotal+tax+shipping", got.Total)
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{49.19, "49.19"},
		{3.2, "3.20"},
		{0, "0.00"},
		{5.994999, "5.99"},
		{5.995001, "6.00"},
	}
	for _, tc := range cases {
		if got := Format(tc.in); got != tc.want {
			t.Errorf("Format(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
	if got := FormatEuro(12.9); got != "€12.90" {
		t.Errorf("FormatEuro(12.9) = %q, want \"€12.90\"", got)
	}
}
