// SPDX-License-Identifier: EPL-2.0

package spectral

import (
	"errors"
	"math"
	"testing"

	"github.com/ik5/audaug/internal/audiotest"
)

func TestDominantFrequency(t *testing.T) {
	t.Parallel()

	tests := []struct {
		freq float64
		rate int
		n    int
	}{
		{freq: 440, rate: 16000, n: 16000},
		{freq: 1000, rate: 44100, n: 8192},
		{freq: 100, rate: 8000, n: 4000},
		{freq: 3500, rate: 8000, n: 8000},
	}

	for _, tt := range tests {
		in := audiotest.Sine(tt.freq, tt.rate, tt.n, 0.7)
		got, err := DominantFrequency(in, tt.rate)
		if err != nil {
			t.Fatalf("DominantFrequency(%v Hz) error = %v", tt.freq, err)
		}

		bin := float64(tt.rate) / float64(nextPow2(tt.n))
		if math.Abs(got-tt.freq) > bin {
			t.Errorf("DominantFrequency(%v Hz @ %d) = %v, want within %v", tt.freq, tt.rate, got, bin)
		}
	}
}

func TestDominantFrequency_IgnoresDC(t *testing.T) {
	t.Parallel()

	in := audiotest.Sine(500, 8000, 4096, 0.2)
	for i := range in {
		in[i] += 0.5
	}

	got, err := DominantFrequency(in, 8000)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got-500) > 8000.0/4096 {
		t.Errorf("DominantFrequency() = %v, want ≈500", got)
	}
}

func TestMagnitudes(t *testing.T) {
	t.Parallel()

	mag, size, err := Magnitudes(make([]float32, 1000))
	if err != nil {
		t.Fatal(err)
	}
	if size != 1024 || len(mag) != 513 {
		t.Errorf("size = %d, bins = %d; want 1024, 513", size, len(mag))
	}
	for k, v := range mag {
		if v != 0 {
			t.Fatalf("silence has energy %v at bin %d", v, k)
		}
	}
}

func TestErrors(t *testing.T) {
	t.Parallel()

	if _, err := DominantFrequency([]float32{1}, 8000); !errors.Is(err, ErrTooShort) {
		t.Errorf("one sample: error = %v, want ErrTooShort", err)
	}
	if _, err := DominantFrequency(make([]float32, 64), 0); !errors.Is(err, ErrInvalidRate) {
		t.Errorf("zero rate: error = %v, want ErrInvalidRate", err)
	}
}

func TestNextPow2(t *testing.T) {
	t.Parallel()

	for in, want := range map[int]int{1: 1, 2: 2, 3: 4, 1000: 1024, 1024: 1024, 1025: 2048} {
		if got := nextPow2(in); got != want {
			t.Errorf("nextPow2(%d) = %d, want %d", in, got, want)
		}
	}
}
