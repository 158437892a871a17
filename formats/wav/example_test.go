// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"

	"github.com/ik5/audaug/audio"
	"github.com/ik5/audaug/formats/wav"
)

func tone(n, rate int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(0.5 * math.Sin(2*math.Pi*440*float64(i)/float64(rate)))
	}
	return out
}

// Example streams a tone into memory and decodes it again.
func Example() {
	var buf bytes.Buffer
	if err := wav.WriteFloat32(&buf, 16000, tone(1600, 16000)); err != nil {
		log.Fatal(err)
	}

	src, err := wav.Decoder{}.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		log.Fatal(err)
	}
	samples, err := audio.ReadAll(src, 4096)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%d Hz, %d channel(s), %d samples\n", src.SampleRate(), src.Channels(), len(samples))
	// Output:
	// 16000 Hz, 1 channel(s), 1600 samples
}

// ExampleEncode writes a file through the go-audio encoder.
func ExampleEncode() {
	dir, err := os.MkdirTemp("", "wav-example")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "tone.wav")
	out, err := os.Create(path)
	if err != nil {
		log.Fatal(err)
	}
	if err := wav.Encode(out, 8000, tone(800, 8000)); err != nil {
		log.Fatal(err)
	}
	out.Close()

	f, err := os.Open(path)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	src, err := wav.Decoder{}.Decode(f)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%d Hz, %d channel(s)\n", src.SampleRate(), src.Channels())
	// Output:
	// 8000 Hz, 1 channel(s)
}

// ExampleDecoder_Decode_invalid shows the sentinel returned for non-WAV input.
func ExampleDecoder_Decode_invalid() {
	_, err := wav.Decoder{}.Decode(bytes.NewReader([]byte("ID3 this is an mp3 really")))
	fmt.Println(errors.Is(err, wav.ErrNotWavFile))
	// Output:
	// true
}
