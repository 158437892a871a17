// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/audaug/utils"
)

// Resampler streams from src to a target sample rate using cubic
// interpolation. Works on interleaved samples and preserves the channel
// count. A one-pole low-pass runs on the input when downsampling.
type Resampler struct {
	src      Source
	dstRate  int
	step     float64 // source frames consumed per output frame
	channels int

	// taps holds frames t-1, t, t+1 and t+2 around the read position;
	// live marks which of them came from the source rather than padding.
	taps   [4][]float32
	live   [4]bool
	frac   float64
	primed bool

	srcBuf []float32
	srcEOF bool

	lowpass bool
	alpha   float32
	state   []float32
	warm    bool
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	step := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		step:     step,
		channels: channels,
		srcBuf:   make([]float32, channels),
		lowpass:  step > 1.0,
		state:    make([]float32, channels),
	}
	if r.lowpass {
		// simplified cutoff around the destination Nyquist
		r.alpha = 0.5
	}
	for i := range r.taps {
		r.taps[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("resampler: close source: %w", err)
	}
	return nil
}

// pull reads the next source frame into dst. It reports false once the
// source is exhausted.
func (r *Resampler) pull(dst []float32) (bool, error) {
	if r.srcEOF {
		return false, nil
	}

	for range maxEmptyReads {
		n, err := r.src.ReadSamples(r.srcBuf)
		if err != nil && err != io.EOF {
			return false, fmt.Errorf("resampler: read source: %w", err)
		}
		if err == io.EOF {
			r.srcEOF = true
		}

		if n >= r.channels {
			copy(dst, r.srcBuf)
			r.filter(dst)
			return true, nil
		}
		if r.srcEOF {
			return false, nil
		}
	}

	return false, io.ErrNoProgress
}

func (r *Resampler) filter(frame []float32) {
	if !r.lowpass {
		return
	}
	if !r.warm {
		// seed with the first frame to avoid a fade-in transient
		copy(r.state, frame)
		r.warm = true
	}
	for c := range frame {
		frame[c] = r.alpha*frame[c] + (1-r.alpha)*r.state[c]
		r.state[c] = frame[c]
	}
}

func (r *Resampler) prime() error {
	ok, err := r.pull(r.taps[1])
	if err != nil {
		return err
	}
	if !ok {
		return io.EOF
	}
	copy(r.taps[0], r.taps[1])
	r.live[0], r.live[1] = true, true

	for i := 2; i < len(r.taps); i++ {
		ok, err := r.pull(r.taps[i])
		if err != nil {
			return err
		}
		if !ok {
			copy(r.taps[i], r.taps[i-1])
		}
		r.live[i] = ok
	}

	r.primed = true
	return nil
}

// advance moves the taps one source frame forward.
func (r *Resampler) advance() error {
	oldest := r.taps[0]
	copy(r.taps[:], r.taps[1:])
	copy(r.live[:], r.live[1:])
	r.taps[3] = oldest

	ok, err := r.pull(r.taps[3])
	if err != nil {
		return err
	}
	if !ok {
		copy(r.taps[3], r.taps[2])
	}
	r.live[3] = ok

	return nil
}

// ReadSamples produces samples at the destination rate. dst length must
// be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0
	for written < frames {
		for r.frac >= 1.0 {
			r.frac -= 1.0
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}

		// never interpolate past the last real frame
		if !r.live[1] || (!r.live[2] && r.frac > 0) {
			return written * r.channels, io.EOF
		}

		x := float32(r.frac)
		base := written * r.channels
		for c := range r.channels {
			dst[base+c] = utils.CubicInterpolate(
				r.taps[0][c], r.taps[1][c], r.taps[2][c], r.taps[3][c], x)
		}

		written++
		r.frac += r.step
	}

	return written * r.channels, nil
}
