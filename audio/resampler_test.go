// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"math"
	"testing"

	"github.com/ik5/audaug/internal/audiotest"
)

func TestResampler_Metadata(t *testing.T) {
	t.Parallel()

	r := NewResampler(audiotest.NewSilentSource(44100, 2, 1000), 8000)
	if r.SampleRate() != 8000 {
		t.Errorf("SampleRate() = %d, want 8000", r.SampleRate())
	}
	if r.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", r.Channels())
	}
}

func TestResampler_Length(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		from, to int
		frames   int
	}{
		{name: "same rate", from: 16000, to: 16000, frames: 16000},
		{name: "down", from: 44100, to: 16000, frames: 44100},
		{name: "up", from: 8000, to: 22050, frames: 8000},
		{name: "odd ratio", from: 22050, to: 48000, frames: 5000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := NewResampler(audiotest.NewSineSource(tt.from, 1, tt.frames, 200), tt.to)
			got, err := ReadAll(r, 1000)
			if err != nil {
				t.Fatalf("ReadAll() error = %v", err)
			}

			want := float64(tt.frames) * float64(tt.to) / float64(tt.from)
			if math.Abs(float64(len(got))-want) > 3 {
				t.Errorf("resampled length = %d, want ≈%.0f", len(got), want)
			}
		})
	}
}

func TestResampler_SameRateIsIdentity(t *testing.T) {
	t.Parallel()

	in := audiotest.Noise(9, 500, 0.8)
	got, err := ReadAll(NewResampler(audiotest.NewSliceMock(8000, 1, in), 8000), 64)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(in) {
		t.Fatalf("len = %d, want %d", len(got), len(in))
	}
	for i := range in {
		if math.Abs(float64(got[i]-in[i])) > 1e-6 {
			t.Fatalf("sample %d = %v, want %v", i, got[i], in[i])
		}
	}
}

func TestResampler_PreservesFrequency(t *testing.T) {
	t.Parallel()

	const freq = 440.0
	got, err := ReadAll(NewResampler(audiotest.NewSineSource(8000, 1, 8000, freq), 16000), 0)
	if err != nil {
		t.Fatal(err)
	}

	// count rising zero crossings over one second
	crossings := 0
	for i := 1; i < len(got); i++ {
		if got[i-1] < 0 && got[i] >= 0 {
			crossings++
		}
	}
	if math.Abs(float64(crossings)-freq) > 3 {
		t.Errorf("rising zero crossings = %d, want ≈%.0f", crossings, freq)
	}
}

func TestResampler_Stereo(t *testing.T) {
	t.Parallel()

	src := audiotest.NewMockSource(16000, 2, 1600, func(_, ch int) float32 {
		if ch == 0 {
			return 0.5
		}
		return -0.5
	})

	got, err := ReadAll(NewResampler(src, 8000), 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(got)%2 != 0 {
		t.Fatalf("odd sample count %d", len(got))
	}
	for f := 0; f < len(got); f += 2 {
		if math.Abs(float64(got[f]-0.5)) > 1e-4 || math.Abs(float64(got[f+1]+0.5)) > 1e-4 {
			t.Fatalf("frame %d = (%v, %v), want (0.5, -0.5)", f/2, got[f], got[f+1])
		}
	}
}

func TestResampler_InvalidDst(t *testing.T) {
	t.Parallel()

	r := NewResampler(audiotest.NewSilentSource(8000, 2, 10), 16000)
	if _, err := r.ReadSamples(make([]float32, 3)); err != ErrInvalidDstSize {
		t.Errorf("ReadSamples() error = %v, want ErrInvalidDstSize", err)
	}
}

func TestResampler_EmptySource(t *testing.T) {
	t.Parallel()

	r := NewResampler(audiotest.NewSilentSource(8000, 1, 0), 16000)
	if n, err := r.ReadSamples(make([]float32, 10)); n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() = %d, %v; want 0, EOF", n, err)
	}
}

func TestResampler_Close(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(8000, 1, 10)
	if err := NewResampler(src, 16000).Close(); err != nil {
		t.Fatal(err)
	}
	if !src.Closed {
		t.Error("source not closed")
	}
}
