// SPDX-License-Identifier: EPL-2.0

// Package audaug augments audio for training data: it loads recordings,
// perturbs regions of them and writes the result back out.
//
// # Loading
//
// LoadAudio decodes a file by extension and returns mono float32 samples
// in [-1, 1] together with the sampling rate:
//
//	samples, rate, err := audaug.LoadAudio("beat.wav")
//
// WAV (16, 24 and 32 bit integer PCM), MP3, Ogg Vorbis and AIFF (8 to 32 bit)
// are understood. Multi-channel input is averaged down to mono.
// WithTargetRate resamples while decoding:
//
//	samples, rate, err := audaug.LoadAudio("speech.mp3", audaug.WithTargetRate(16000))
//
// SaveAudio writes mono samples as a 16-bit WAV.
//
// # Augmenting
//
// The augmenter package holds the transforms. Each one works on a zone,
// a fractional [lo, hi] window of the input, and keeps the output length
// equal to the input length:
//
//	mask, err := augmenter.NewMask(rate, augmenter.Zone{Lo: 0.3, Hi: 0.7}, 0.1)
//	out, err := mask.Augment(samples)
//
//	pitch, err := augmenter.NewPitch(rate)
//	out, err = pitch.Augment(out)
//
// AugmentWithState returns the changed span (start, end and replacement
// data) next to the output, so callers can check or undo the edit.
//
// # Pipelines
//
// The config package reads a YAML pipeline and builds an
// augmenter.Sequential from it. cmd/audaug runs such a pipeline over a
// file from the command line.
package audaug
