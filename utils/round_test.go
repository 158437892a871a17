// SPDX-License-Identifier: EPL-2.0

package utils

import "testing"

func TestRound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		x        float64
		decimals int
		want     float64
	}{
		{x: 1.23456789, decimals: 2, want: 1.23},
		{x: 1.235, decimals: 0, want: 1},
		{x: -0.5, decimals: 0, want: -1},
		{x: 0.123456789123, decimals: 8, want: 0.12345679},
		{x: 1250, decimals: -2, want: 1300},
	}

	for _, tt := range tests {
		if got := Round(tt.x, tt.decimals); got != tt.want {
			t.Errorf("Round(%v, %d) = %v, want %v", tt.x, tt.decimals, got, tt.want)
		}
	}
}

func TestRoundSlice(t *testing.T) {
	t.Parallel()

	a := RoundSlice([]float32{0.1, 0.2}, 4)
	b := RoundSlice([]float32{0.10000001, 0.19999999}, 4)
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("RoundSlice mismatch at %d: %v vs %v", i, a[i], b[i])
		}
	}
	if len(RoundSlice(nil, 3)) != 0 {
		t.Error("RoundSlice(nil) not empty")
	}
}
