// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/audaug/utils"
)

const (
	headerSize = 44
	chunkSize  = 8192 // samples per Write call
)

// WriteWAV16 writes a mono 16-bit PCM WAV to a plain io.Writer. The sizes
// are known up front, so unlike Encode it never seeks.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	if sampleRate <= 0 {
		return ErrInvalidSampleRate
	}

	if _, err := w.Write(header16(sampleRate, len(samples))); err != nil {
		return fmt.Errorf("wav: write header: %w", err)
	}

	buf := make([]byte, 2*min(len(samples), chunkSize))
	for start := 0; start < len(samples); start += chunkSize {
		chunk := samples[start:min(start+chunkSize, len(samples))]
		out := buf[:2*len(chunk)]
		for i, s := range chunk {
			binary.LittleEndian.PutUint16(out[2*i:], uint16(s))
		}
		if _, err := w.Write(out); err != nil {
			return fmt.Errorf("wav: write samples: %w", err)
		}
	}

	return nil
}

// WriteFloat32 clamps samples to [-1, 1] and writes them with WriteWAV16.
func WriteFloat32(w io.Writer, sampleRate int, samples []float32) error {
	pcm := make([]int16, len(samples))
	for i, v := range samples {
		pcm[i] = utils.Float32ToInt16(v)
	}
	return WriteWAV16(w, sampleRate, pcm)
}

func header16(sampleRate, count int) []byte {
	const (
		channels  = 1
		bits      = 16
		blockSize = channels * bits / 8
	)
	dataSize := uint32(count * blockSize)

	h := make([]byte, headerSize)
	copy(h[0:4], "RIFF")
	binary.LittleEndian.PutUint32(h[4:8], 36+dataSize)
	copy(h[8:12], "WAVE")

	copy(h[12:16], "fmt ")
	binary.LittleEndian.PutUint32(h[16:20], 16)
	binary.LittleEndian.PutUint16(h[20:22], formatPCM)
	binary.LittleEndian.PutUint16(h[22:24], channels)
	binary.LittleEndian.PutUint32(h[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(h[28:32], uint32(sampleRate*blockSize))
	binary.LittleEndian.PutUint16(h[32:34], blockSize)
	binary.LittleEndian.PutUint16(h[34:36], bits)

	copy(h[36:40], "data")
	binary.LittleEndian.PutUint32(h[40:44], dataSize)

	return h
}
