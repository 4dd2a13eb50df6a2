package main

import (
	"math"
	"testing"
)

// =============================================================================
// Extended Precision (80-bit) Tests
// =============================================================================

func TestExtendedRealFromFloat64(t *testing.T) {
	tests := []struct {
		name  string
		input float64
	}{
		{"positive_zero", 0.0},
		{"negative_zero", math.Copysign(0, -1)},
		{"one", 1.0},
		{"negative_one", -1.0},
		{"pi", math.Pi},
		{"small_subnormal_f64", math.SmallestNonzeroFloat64},
		{"max_f64", math.MaxFloat64},
		{"positive_inf", math.Inf(1)},
		{"negative_inf", math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ext := ExtendedRealFromFloat64(tt.input)
			if math.IsInf(tt.input, 0) && !ext.IsInf() {
				t.Errorf("expected IsInf() for %v, got %+v", tt.input, ext)
			}
		})
	}
}

func TestExtendedRealNaN(t *testing.T) {
	ext := ExtendedRealFromFloat64(math.NaN())
	if !ext.IsNaN() {
		t.Errorf("expected IsNaN() true, got %+v", ext)
	}
}

func TestExtendedRealRoundTrip(t *testing.T) {
	// float64 -> ExtendedReal -> float64 must preserve value, since the
	// 80-bit mantissa is strictly wider than the 64-bit source.
	values := []float64{
		0.0, 1.0, -1.0, math.Pi, 2.5, -123456.789,
		1e-300, 1e300, math.SmallestNonzeroFloat64, math.MaxFloat64,
	}

	for _, v := range values {
		ext := ExtendedRealFromFloat64(v)
		got := ext.ToFloat64()
		if got != v {
			t.Errorf("round trip of %v: got %v", v, got)
		}
	}
}

func TestExtendedRealZeroSign(t *testing.T) {
	pos := ExtendedRealFromFloat64(0.0)
	neg := ExtendedRealFromFloat64(math.Copysign(0, -1))

	if pos.Sign != 0 {
		t.Errorf("positive zero: expected Sign=0, got %d", pos.Sign)
	}
	if neg.Sign != 1 {
		t.Errorf("negative zero: expected Sign=1, got %d", neg.Sign)
	}
	if !pos.IsZero() || !neg.IsZero() {
		t.Errorf("both signed zeros should report IsZero()")
	}
}
