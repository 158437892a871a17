// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"math"
	"math/rand/v2"
)

// Sine returns n samples of a sine at freq Hz.
func Sine(freq float64, sampleRate, n int, amplitude float32) []float32 {
	out := make([]float32, n)
	step := 2 * math.Pi * freq / float64(sampleRate)
	for i := range out {
		out[i] = amplitude * float32(math.Sin(step*float64(i)))
	}
	return out
}

// Noise returns n samples of uniform white noise, reproducible per seed.
func Noise(seed uint64, n int, amplitude float32) []float32 {
	rng := rand.New(rand.NewPCG(seed, seed))
	out := make([]float32, n)
	for i := range out {
		out[i] = amplitude * float32(rng.Float64()*2-1)
	}
	return out
}

// Ramp returns 0, 1/n, 2/n, ... so every sample is distinct.
func Ramp(n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(i) / float32(n)
	}
	return out
}

// Beat synthesizes a rock pattern at bpm: kick on beats 1 and 3, snare on
// 2 and 4, closed hi-hat on every eighth note.
func Beat(sampleRate int, seconds, bpm float64) []float32 {
	n := int(seconds * float64(sampleRate))
	out := make([]float32, n)
	eighth := int(60 / bpm / 2 * float64(sampleRate))
	if eighth <= 0 {
		return out
	}

	rng := rand.New(rand.NewPCG(120, 120))
	for step, at := 0, 0; at < n; step, at = step+1, at+eighth {
		switch step % 8 {
		case 0, 4:
			addKick(out[at:], sampleRate)
		case 2, 6:
			addSnare(out[at:], sampleRate, rng)
		}
		addHat(out[at:], sampleRate, rng)
	}

	for i, v := range out {
		out[i] = max(-1, min(1, v))
	}
	return out
}

func addKick(dst []float32, rate int) {
	n := min(len(dst), rate/4)
	for i := range n {
		t := float64(i) / float64(rate)
		freq := 50 + 100*math.Exp(-t*30)
		dst[i] += float32(0.8 * math.Exp(-t*12) * math.Sin(2*math.Pi*freq*t))
	}
}

func addSnare(dst []float32, rate int, rng *rand.Rand) {
	n := min(len(dst), rate/5)
	for i := range n {
		t := float64(i) / float64(rate)
		env := math.Exp(-t * 20)
		tone := math.Sin(2 * math.Pi * 190 * t)
		dst[i] += float32(env * (0.3*tone + 0.35*(rng.Float64()*2-1)))
	}
}

func addHat(dst []float32, rate int, rng *rand.Rand) {
	n := min(len(dst), rate/20)
	for i := range n {
		t := float64(i) / float64(rate)
		dst[i] += float32(0.12 * math.Exp(-t*90) * (rng.Float64()*2 - 1))
	}
}
