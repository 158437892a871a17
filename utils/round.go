// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Round rounds x half away from zero to the given number of decimals.
func Round(x float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(x*p) / p
}

// RoundSlice returns a copy of samples rounded to decimals, the
// comparison granularity used when checking augmented output.
func RoundSlice(samples []float32, decimals int) []float64 {
	out := make([]float64, len(samples))
	for i, v := range samples {
		out[i] = Round(float64(v), decimals)
	}
	return out
}
