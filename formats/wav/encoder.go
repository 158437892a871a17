// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/audaug/utils"
)

// Encode writes mono float samples as a 16-bit PCM WAV through the
// go-audio encoder, which patches the chunk sizes by seeking back into ws.
func Encode(ws io.WriteSeeker, sampleRate int, samples []float32) error {
	if sampleRate <= 0 {
		return ErrInvalidSampleRate
	}

	enc := gowav.NewEncoder(ws, sampleRate, 16, 1, formatPCM)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           utils.Float32ToInts(samples),
		SourceBitDepth: 16,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wav: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wav: finalize: %w", err)
	}
	return nil
}
