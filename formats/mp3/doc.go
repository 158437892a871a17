// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files with github.com/hajimehoshi/go-mp3.
//
// # Decoding
//
// Decoder implements audio.Decoder and is registered for the ".mp3"
// extension in the default registry:
//
//	f, _ := os.Open("speech.mp3")
//	src, err := mp3.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//	buf := make([]float32, 4096)
//	n, err := src.ReadSamples(buf)
//
// # Output Format
//
// go-mp3 always produces interleaved stereo 16-bit little-endian PCM:
//   - Sample format: float32 in [-1, 1), value/32768
//   - Channels: 2, even for mono files (the channel is duplicated)
//   - Sample rate: taken from the first frame header
//
// Wrap the source in audio.NewMonoMixer when a single channel is needed,
// and in audio.NewResampler to change the rate:
//
//	mono := audio.NewMonoMixer(audio.NewResampler(src, 16000))
//	samples, err := audio.ReadAll(mono, 4096)
//
// # Partial Reads
//
// go-mp3 may return an odd number of bytes from a single Read. The
// leftover byte is carried into the next ReadSamples call, so a sample
// is never split or dropped.
//
// # Errors
//
// Decode wraps every failure go-mp3 reports while locating the first
// frame in ErrNotMP3File:
//
//	if errors.Is(err, mp3.ErrNotMP3File) {
//	    // not an MP3 stream, or truncated before the first frame
//	}
//
// Errors from later reads are passed through unchanged.
//
// # Limitations
//
//   - Decoding only; use the wav package to write output
//   - No seeking: the stream is read front to back once
package mp3
