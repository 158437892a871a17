// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"bytes"
	"fmt"
	"io"
)

// maxEmptyReads bounds how many (0, nil) reads ReadAll tolerates in a row.
const maxEmptyReads = 100

// SliceSource serves an in-memory interleaved buffer as a Source, so a
// decoded waveform can be fed back into Resampler or MonoMixer.
type SliceSource struct {
	samples    []float32
	sampleRate int
	channels   int
	pos        int
}

// NewSliceSource wraps samples without copying them. The caller must not
// modify samples while the source is being read.
func NewSliceSource(samples []float32, sampleRate, channels int) (*SliceSource, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidRate
	}
	if channels <= 0 {
		return nil, ErrNoChannels
	}
	if len(samples)%channels != 0 {
		return nil, ErrInvalidDstSize
	}

	return &SliceSource{
		samples:    samples,
		sampleRate: sampleRate,
		channels:   channels,
	}, nil
}

func (s *SliceSource) SampleRate() int { return s.sampleRate }
func (s *SliceSource) Channels() int   { return s.channels }
func (s *SliceSource) BufSize() int    { return 4096 }
func (s *SliceSource) Close() error    { return nil }

// Len is the number of values not read yet.
func (s *SliceSource) Len() int { return len(s.samples) - s.pos }

func (s *SliceSource) ReadSamples(dst []float32) (int, error) {
	if s.pos >= len(s.samples) {
		return 0, io.EOF
	}

	// whole frames only
	want := len(dst) - len(dst)%s.channels
	n := copy(dst[:want], s.samples[s.pos:])
	s.pos += n

	if s.pos >= len(s.samples) {
		return n, io.EOF
	}
	return n, nil
}

// ReadAll drains src and returns every sample it produced. bufSize <= 0
// falls back to src.BufSize().
func ReadAll(src Source, bufSize int) ([]float32, error) {
	if bufSize <= 0 {
		bufSize = src.BufSize()
	}
	if ch := src.Channels(); ch > 0 && bufSize%ch != 0 {
		bufSize += ch - bufSize%ch
	}

	var out []float32
	buf := make([]float32, bufSize)
	empty := 0
	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)

		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}

		if n == 0 {
			empty++
			if empty >= maxEmptyReads {
				return out, io.ErrNoProgress
			}
			continue
		}
		empty = 0
	}
}

// Seekable returns r itself when it already seeks, otherwise it buffers
// the whole stream in memory. go-audio decoders need an io.ReadSeeker.
func Seekable(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffering input: %w", err)
	}
	return bytes.NewReader(data), nil
}
