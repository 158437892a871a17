// SPDX-License-Identifier: EPL-2.0

package augmenter

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

const defaultNoiseLevel = 0.1

// FillFunc produces n replacement samples for Mask.
type FillFunc func(n int, rng *rand.Rand) ([]float32, error)

// Fill names a built-in replacement policy.
type Fill int

const (
	// FillNoise writes Gaussian noise, clipped to [-1, 1].
	FillNoise Fill = iota
	// FillSilence writes zeros.
	FillSilence
)

func (f Fill) String() string {
	if f == FillSilence {
		return "silence"
	}
	return "noise"
}

// ParseFill accepts "noise" and "silence"; empty means noise.
func ParseFill(s string) (Fill, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "noise":
		return FillNoise, nil
	case "silence", "zero", "zeros":
		return FillSilence, nil
	}
	return FillNoise, fmt.Errorf("unknown fill %q", s)
}

func (f Fill) fn(level float64) FillFunc {
	if f == FillSilence {
		return silence
	}
	return gaussian(level)
}

func silence(n int, _ *rand.Rand) ([]float32, error) {
	return make([]float32, n), nil
}

func gaussian(level float64) FillFunc {
	return func(n int, rng *rand.Rand) ([]float32, error) {
		out := make([]float32, n)
		for i := range out {
			out[i] = clip(float32(rng.NormFloat64() * level))
		}
		return out, nil
	}
}

func clip(v float32) float32 {
	return max(-1, min(1, v))
}
