// SPDX-License-Identifier: EPL-2.0

// Package spectral estimates simple spectral features of a waveform.
package spectral

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	vecmath "github.com/cwbudde/algo-vecmath"
)

var (
	ErrTooShort    = errors.New("spectral: need at least two samples")
	ErrInvalidRate = errors.New("spectral: sample rate must be positive")
)

// Magnitudes returns |X[k]| for k in [0, size/2] of a Hann-windowed FFT
// over the mean-removed samples, zero-padded to the next power of two,
// plus that size.
func Magnitudes(samples []float32) ([]float64, int, error) {
	if len(samples) < 2 {
		return nil, 0, ErrTooShort
	}

	var mean float64
	for _, v := range samples {
		mean += float64(v)
	}
	mean /= float64(len(samples))

	// remove DC so it cannot leak past bin 0 through the window
	sig := make([]float64, len(samples))
	for i, v := range samples {
		sig[i] = float64(v) - mean
	}
	vecmath.MulBlockInPlace(sig, hann(len(sig)))

	size := nextPow2(len(sig))
	in := make([]complex128, size)
	for i, v := range sig {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, 0, fmt.Errorf("spectral: fft plan: %w", err)
	}
	out := make([]complex128, size)
	if err := plan.Forward(out, in); err != nil {
		return nil, 0, fmt.Errorf("spectral: forward fft: %w", err)
	}

	bins := size/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := range bins {
		re[k], im[k] = real(out[k]), imag(out[k])
	}
	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	return mag, size, nil
}

// DominantFrequency returns the centre frequency in Hz of the strongest
// non-DC bin.
func DominantFrequency(samples []float32, sampleRate int) (float64, error) {
	if sampleRate <= 0 {
		return 0, ErrInvalidRate
	}

	mag, size, err := Magnitudes(samples)
	if err != nil {
		return 0, err
	}

	peak := 1
	for k := 2; k < len(mag); k++ {
		if mag[k] > mag[peak] {
			peak = k
		}
	}

	return float64(peak) * float64(sampleRate) / float64(size), nil
}

func hann(n int) []float64 {
	w := make([]float64, n)
	if n == 1 {
		w[0] = 1
		return w
	}
	for i := range w {
		w[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n-1))
	}
	return w
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
