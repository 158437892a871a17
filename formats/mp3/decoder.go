// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/audaug/audio"
)

// go-mp3 always emits interleaved stereo, 16-bit little-endian.
const (
	outChannels = 2
	bytesPerVal = 2
)

// pcmStream is the part of gomp3.Decoder the source reads from.
type pcmStream interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        pcmStream
	sampleRate int
	buf        []byte
	carry      []byte // odd trailing byte from the previous read
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return outChannels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / bytesPerVal }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	need := len(dst)*bytesPerVal - len(s.carry)
	if cap(s.buf) < len(dst)*bytesPerVal {
		s.buf = make([]byte, len(dst)*bytesPerVal)
	}
	s.buf = s.buf[:len(s.carry)+need]
	copy(s.buf, s.carry)

	n, err := s.dec.Read(s.buf[len(s.carry):])
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("mp3: read: %w", err)
	}

	avail := len(s.carry) + n
	vals := avail / bytesPerVal
	s.carry = append(s.carry[:0], s.buf[vals*bytesPerVal:avail]...)

	for i := range vals {
		v := int16(binary.LittleEndian.Uint16(s.buf[i*bytesPerVal:]))
		dst[i] = float32(v) / 32768.0
	}

	if err == io.EOF {
		return vals, io.EOF
	}
	return vals, nil
}

// Decoder decodes MPEG-1/2 Layer III streams.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMP3File, err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
	}, nil
}
