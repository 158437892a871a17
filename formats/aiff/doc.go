// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes PCM AIFF files with github.com/go-audio/aiff.
//
// # Decoding
//
// Decoder implements audio.Decoder and is registered for the ".aiff" and
// ".aif" extensions in the default registry:
//
//	f, _ := os.Open("take.aiff")
//	src, err := aiff.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//	mono := audio.NewMonoMixer(src)
//
// go-audio needs to seek, so readers that are not an io.ReadSeeker are
// buffered in memory before decoding.
//
// # Supported Formats
//
//   - Bit depths: 8, 16, 24 and 32 bit signed big-endian PCM
//   - Any channel count, interleaved
//   - Any sample rate stored in the COMM chunk
//
// Samples are scaled by 2^(bitDepth-1), so the output lies in [-1, 1).
//
// # Errors
//
//   - ErrNotAiffFile: the FORM/AIFF header is missing
//   - ErrUnsupportedBitDepth: depths other than 8, 16, 24 and 32
//   - ErrUnsupportedAiffLayout: no channels or no sample rate
//
// Failures while parsing chunks are wrapped with an "aiff:" prefix.
//
// # Limitations
//
//   - AIFC compressed variants are not supported
//   - Decoding only
package aiff
