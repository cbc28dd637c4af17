package padic

import (
	"math/big"
	"testing"
)

func TestSplitValuation(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			num, den int64
			p        int64
			wantVal  int
			wantNum  int64
			wantDen  int64
		}{
			{1, 1, 5, 0, 1, 1},
			{42, 1, 5, 0, 42, 1},
			{5, 1, 5, 1, 1, 1},
			{25, 1, 5, 2, 1, 1},
			{50, 1, 5, 2, 2, 1},
			{-45, 1, 5, 1, -9, 1},
			{7, 25, 5, -2, 7, 1},
			{1, 5, 5, -1, 1, 1},
			{15, 4, 5, 1, 3, 4},
			{2, 9, 3, -2, 2, 1},
			{3, 8, 2, -3, 3, 1},
			{14, 3, 7, 1, 2, 3},
		}
		for _, tt := range tests {
			val, num, den, err := splitValuation(big.NewInt(tt.num), big.NewInt(tt.den), tt.p)
			if err != nil {
				t.Errorf("splitValuation(%v, %v, %v) failed: %v", tt.num, tt.den, tt.p, err)
				continue
			}
			if val != tt.wantVal || num.Int64() != tt.wantNum || den.Int64() != tt.wantDen {
				t.Errorf("splitValuation(%v, %v, %v) = (%v, %v, %v), want (%v, %v, %v)",
					tt.num, tt.den, tt.p, val, num, den, tt.wantVal, tt.wantNum, tt.wantDen)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []struct {
			num, den int64
		}{
			{42, 0},
			{0, 1},
		}
		for _, tt := range tests {
			_, _, _, err := splitValuation(big.NewInt(tt.num), big.NewInt(tt.den), 5)
			if err == nil {
				t.Errorf("splitValuation(%v, %v, 5) did not fail", tt.num, tt.den)
			}
		}
	})

	t.Run("inputs unchanged", func(t *testing.T) {
		num, den := big.NewInt(50), big.NewInt(25)
		_, _, _, err := splitValuation(num, den, 5)
		if err != nil {
			t.Fatalf("splitValuation(50, 25, 5) failed: %v", err)
		}
		if num.Int64() != 50 || den.Int64() != 25 {
			t.Errorf("splitValuation mutated its inputs to (%v, %v)", num, den)
		}
	})
}

func TestExpand(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			num, den  int64
			p         int64
			n         int
			want      []int64
			wantExact bool
		}{
			{1, 1, 5, 10, []int64{1}, true},
			{42, 1, 5, 10, []int64{2, 3, 1}, true},
			{42, 1, 5, 2, []int64{2, 3}, false},
			{-1, 1, 5, 3, []int64{4, 4, 4}, false},
			{1, 3, 5, 4, []int64{2, 3, 1, 3}, false},
			{1, 2, 5, 4, []int64{3, 2, 2, 2}, false},
			{3, 1, 2, 5, []int64{1, 1}, true},
			{-7, 1, 5, 4, []int64{3, 3, 4, 4}, false},
		}
		for _, tt := range tests {
			digits, exact, err := expand(big.NewInt(tt.num), big.NewInt(tt.den), tt.p, tt.n)
			if err != nil {
				t.Errorf("expand(%v, %v, %v, %v) failed: %v", tt.num, tt.den, tt.p, tt.n, err)
				continue
			}
			if !equalDigits(digits, tt.want) || exact != tt.wantExact {
				t.Errorf("expand(%v, %v, %v, %v) = (%v, %v), want (%v, %v)",
					tt.num, tt.den, tt.p, tt.n, digits, exact, tt.want, tt.wantExact)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		_, _, err := expand(big.NewInt(1), big.NewInt(10), 5, 4)
		if err == nil {
			t.Errorf("expand(1, 10, 5, 4) did not fail on a denominator sharing a factor with p")
		}
	})

	t.Run("digit range", func(t *testing.T) {
		digits, _, err := expand(big.NewInt(-3), big.NewInt(7), 5, 30)
		if err != nil {
			t.Fatalf("expand(-3, 7, 5, 30) failed: %v", err)
		}
		if len(digits) != 30 {
			t.Fatalf("expand(-3, 7, 5, 30) produced %v digits, want 30", len(digits))
		}
		if digits[0] == 0 {
			t.Errorf("expand(-3, 7, 5, 30) produced a leading zero digit")
		}
		for i, a := range digits {
			if a < 0 || a >= 5 {
				t.Errorf("expand(-3, 7, 5, 30) digit %v at position %v is outside [0, 5)", a, i)
			}
		}
	})
}

func TestHorner(t *testing.T) {
	tests := []struct {
		digits []int64
		val    int
		p      int64
		want   string
	}{
		{nil, 0, 5, "0"},
		{[]int64{2, 1, 3}, 0, 5, "82"},
		{[]int64{2, 1}, -2, 5, "7/25"},
		{[]int64{1}, 3, 5, "125"},
		{[]int64{1, 1}, 0, 2, "3"},
		{[]int64{2, 3, 1}, 0, 5, "42"},
	}
	for _, tt := range tests {
		got := horner(tt.digits, tt.val, tt.p)
		if got.RatString() != tt.want {
			t.Errorf("horner(%v, %v, %v) = %v, want %v", tt.digits, tt.val, tt.p, got.RatString(), tt.want)
		}
	}
}

func TestBalance(t *testing.T) {
	tests := []struct {
		n    int64
		p    int64
		len  int
		want int64
	}{
		{42, 5, 3, 42},
		{62, 5, 3, 62},
		{63, 5, 3, -62},
		{123, 5, 3, -2},
		{124, 5, 3, -1},
		{0, 5, 3, 0},
		{-2, 5, 3, -2},
	}
	for _, tt := range tests {
		got := balance(big.NewInt(tt.n), tt.p, tt.len)
		if got.Int64() != tt.want {
			t.Errorf("balance(%v, %v, %v) = %v, want %v", tt.n, tt.p, tt.len, got, tt.want)
		}
	}
}

func equalDigits(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
