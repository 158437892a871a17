// SPDX-License-Identifier: EPL-2.0

package utils

// CubicInterpolate evaluates the Catmull-Rom spline through four
// consecutive samples y0..y3 at x in [0, 1] between y1 and y2.
func CubicInterpolate(y0, y1, y2, y3, x float32) float32 {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2

	return ((a0*x+a1)*x+a2)*x + y1
}

// CubicAt samples buf at fractional position pos, clamping the taps at
// both edges.
func CubicAt(buf []float32, pos float64) float32 {
	if len(buf) == 0 {
		return 0
	}
	if pos <= 0 {
		return buf[0]
	}
	last := len(buf) - 1
	if pos >= float64(last) {
		return buf[last]
	}

	i := int(pos)
	x := float32(pos - float64(i))
	at := func(k int) float32 {
		return buf[max(0, min(last, k))]
	}

	return CubicInterpolate(at(i-1), at(i), at(i+1), at(i+2), x)
}

// Stretch resamples buf to exactly n samples, mapping the first and last
// samples onto each other.
func Stretch(buf []float32, n int) []float32 {
	if n <= 0 || len(buf) == 0 {
		return nil
	}
	out := make([]float32, n)
	if n == 1 || len(buf) == 1 {
		for i := range out {
			out[i] = buf[0]
		}
		return out
	}

	step := float64(len(buf)-1) / float64(n-1)
	for i := range out {
		out[i] = CubicAt(buf, float64(i)*step)
	}
	return out
}
