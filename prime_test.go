package padic

import "testing"

func TestIsPrime(t *testing.T) {
	tests := []struct {
		n    int64
		want bool
	}{
		{-5, false},
		{0, false},
		{1, false},
		{2, true},
		{3, true},
		{4, false},
		{5, true},
		{6, false},
		{7, true},
		{9, false},
		{11, true},
		{15, false},
		{25, false},
		{91, false},
		{97, true},
		{7919, true},
		{1000003, true},
		{1000005, false},
	}
	for _, tt := range tests {
		if got := IsPrime(tt.n); got != tt.want {
			t.Errorf("IsPrime(%v) = %v, want %v", tt.n, got, tt.want)
		}
	}
}
