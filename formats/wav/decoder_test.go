// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"testing"

	goaudio "github.com/go-audio/audio"
)

type wavSpec struct {
	format   uint16
	channels int
	rate     int
	bits     int
	extra    bool // insert an unknown chunk between fmt and data
}

// buildWAV lays out a RIFF/WAVE file around already encoded PCM bytes.
func buildWAV(s wavSpec, data []byte) []byte {
	blockAlign := s.channels * s.bits / 8

	var chunks bytes.Buffer
	chunks.WriteString("fmt ")
	binary.Write(&chunks, binary.LittleEndian, uint32(16))
	binary.Write(&chunks, binary.LittleEndian, s.format)
	binary.Write(&chunks, binary.LittleEndian, uint16(s.channels))
	binary.Write(&chunks, binary.LittleEndian, uint32(s.rate))
	binary.Write(&chunks, binary.LittleEndian, uint32(s.rate*blockAlign))
	binary.Write(&chunks, binary.LittleEndian, uint16(blockAlign))
	binary.Write(&chunks, binary.LittleEndian, uint16(s.bits))

	if s.extra {
		chunks.WriteString("junk")
		binary.Write(&chunks, binary.LittleEndian, uint32(4))
		chunks.Write([]byte{1, 2, 3, 4})
	}

	chunks.WriteString("data")
	binary.Write(&chunks, binary.LittleEndian, uint32(len(data)))
	chunks.Write(data)

	var out bytes.Buffer
	out.WriteString("RIFF")
	binary.Write(&out, binary.LittleEndian, uint32(4+chunks.Len()))
	out.WriteString("WAVE")
	out.Write(chunks.Bytes())
	return out.Bytes()
}

func pcm16(samples ...int16) []byte {
	out := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[2*i:], uint16(s))
	}
	return out
}

func pcm24(samples ...int32) []byte {
	out := make([]byte, 0, 3*len(samples))
	for _, s := range samples {
		out = append(out, byte(s), byte(s>>8), byte(s>>16))
	}
	return out
}

func decodeAll(t *testing.T, data []byte) ([]float32, int, int) {
	t.Helper()

	src, err := Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	var out []float32
	buf := make([]float32, 64)
	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
	return out, src.SampleRate(), src.Channels()
}

func TestDecoder_PCM16(t *testing.T) {
	t.Parallel()

	data := buildWAV(wavSpec{format: formatPCM, channels: 1, rate: 8000, bits: 16},
		pcm16(0, 16384, -16384, 32767, -32768))

	got, rate, ch := decodeAll(t, data)
	if rate != 8000 || ch != 1 {
		t.Fatalf("metadata = %d Hz %d ch, want 8000 Hz 1 ch", rate, ch)
	}

	want := []float32{0, 0.5, -0.5, 32767.0 / 32768, -1}
	if len(got) != len(want) {
		t.Fatalf("decoded %d samples, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(float64(got[i]-want[i])) > 1e-6 {
			t.Errorf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDecoder_Stereo24WithExtraChunk(t *testing.T) {
	t.Parallel()

	data := buildWAV(wavSpec{format: formatPCM, channels: 2, rate: 44100, bits: 24, extra: true},
		pcm24(4194304, -4194304, 0, 8388607))

	got, rate, ch := decodeAll(t, data)
	if rate != 44100 || ch != 2 {
		t.Fatalf("metadata = %d Hz %d ch, want 44100 Hz 2 ch", rate, ch)
	}

	want := []float32{0.5, -0.5, 0, 8388607.0 / 8388608}
	if len(got) != len(want) {
		t.Fatalf("decoded %d samples, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(float64(got[i]-want[i])) > 1e-6 {
			t.Errorf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDecoder_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{name: "not riff", data: []byte("this is not a wav file at all, honest"), want: ErrNotWavFile},
		{name: "empty", data: nil, want: ErrNotWavFile},
		{
			name: "ieee float",
			data: buildWAV(wavSpec{format: 3, channels: 1, rate: 8000, bits: 32}, make([]byte, 16)),
			want: ErrUnsupportedWavLayout,
		},
		{
			name: "8 bit",
			data: buildWAV(wavSpec{format: formatPCM, channels: 1, rate: 8000, bits: 8}, make([]byte, 8)),
			want: ErrUnsupportedBitDepth,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(tt.data))
			if !errors.Is(err, tt.want) {
				t.Errorf("Decode() error = %v, want %v", err, tt.want)
			}
		})
	}
}

// scriptedPCM hands out fixed values in chunks of at most step.
type scriptedPCM struct {
	values []int
	step   int
	err    error
}

func (s *scriptedPCM) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	n := min(len(buf.Data), s.step, len(s.values))
	copy(buf.Data, s.values[:n])
	s.values = s.values[n:]
	return n, nil
}

func TestSource_ShortReadIsEOF(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &scriptedPCM{values: []int{16384, 16384, 16384}, step: 100},
		sampleRate: 8000,
		channels:   1,
		bitDepth:   16,
	}

	buf := make([]float32, 8)
	n, err := src.ReadSamples(buf)
	if n != 3 || err != io.EOF {
		t.Fatalf("ReadSamples() = %d, %v; want 3, EOF", n, err)
	}
	if buf[0] != 0.5 {
		t.Errorf("buf[0] = %v, want 0.5", buf[0])
	}
	if src.BufSize() != 8 {
		t.Errorf("BufSize() = %d, want 8", src.BufSize())
	}
}

func TestSource_FullReadsThenEOF(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &scriptedPCM{values: make([]int, 8), step: 4},
		sampleRate: 8000,
		channels:   2,
		bitDepth:   16,
	}

	buf := make([]float32, 4)
	for range 2 {
		if n, err := src.ReadSamples(buf); n != 4 || err != nil {
			t.Fatalf("ReadSamples() = %d, %v; want 4, nil", n, err)
		}
	}
	if n, err := src.ReadSamples(buf); n != 0 || err != io.EOF {
		t.Fatalf("ReadSamples() after end = %d, %v; want 0, EOF", n, err)
	}
	if n, err := src.ReadSamples(nil); n != 0 || err != nil {
		t.Fatalf("ReadSamples(nil) = %d, %v", n, err)
	}
}

func TestSource_ReadError(t *testing.T) {
	t.Parallel()

	src := &source{dec: &scriptedPCM{err: io.ErrUnexpectedEOF}, channels: 1, bitDepth: 16}
	if _, err := src.ReadSamples(make([]float32, 4)); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want wrapped io.ErrUnexpectedEOF", err)
	}
}
