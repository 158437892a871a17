// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes WAV files.
//
// # Decoding
//
// Decoding goes through github.com/go-audio/wav, so files with extra
// chunks (LIST, INFO, fact, ...) before the data chunk are accepted.
// Decoder implements audio.Decoder and is registered for the ".wav" and
// ".wave" extensions in the default registry:
//
//	f, _ := os.Open("beat.wav")
//	src, err := wav.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//	samples, err := audio.ReadAll(src, 4096)
//
// go-audio needs to seek, so readers that are not an io.ReadSeeker are
// buffered in memory first.
//
// # Supported Formats
//
//   - Audio format 1 (PCM) and 0xFFFE (WAVE_FORMAT_EXTENSIBLE)
//   - Integer PCM at 16, 24 and 32 bits
//   - Any channel count and sample rate
//
// Samples are scaled by 2^(bitDepth-1) into [-1, 1) and interleaved in
// the order they are stored.
//
// # Encoding
//
// Two writers are provided, both producing mono 16-bit PCM. Encode uses
// the go-audio encoder and needs an io.WriteSeeker such as *os.File:
//
//	out, _ := os.Create("augmented.wav")
//	defer out.Close()
//	err := wav.Encode(out, 44100, samples)
//
// WriteWAV16 and WriteFloat32 write a canonical 44-byte header followed
// by the samples to any io.Writer, which suits pipes and in-memory
// buffers:
//
//	var buf bytes.Buffer
//	err := wav.WriteFloat32(&buf, 16000, samples)
//
// Float samples are clamped to [-1, 1] before conversion, so values that
// an augmentation pushed past full scale saturate instead of wrapping.
//
// # Errors
//
//   - ErrNotWavFile: the RIFF/WAVE header is missing
//   - ErrUnsupportedWavLayout: compressed audio, no channels, no sample
//     rate, or no data chunk
//   - ErrUnsupportedBitDepth: depths other than 16, 24 and 32
//   - ErrInvalidSampleRate: a writer was given a rate <= 0
//
// All of them work with errors.Is.
package wav
