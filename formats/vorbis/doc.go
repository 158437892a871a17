// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files with github.com/jfreymuth/oggvorbis.
//
// # Decoding
//
// Decoder implements audio.Decoder and is registered for the ".ogg" and
// ".oga" extensions in the default registry:
//
//	f, _ := os.Open("music.ogg")
//	src, err := vorbis.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//	samples, err := audio.ReadAll(audio.NewMonoMixer(src), 4096)
//
// # Output Format
//
// oggvorbis already produces float32 samples, so reads go straight into
// the caller's buffer without conversion:
//   - Sample format: float32, nominally in [-1, 1]
//   - Channels: as stored in the identification header
//   - Sample rate: as stored in the identification header
//
// Vorbis is lossy and its reconstruction can overshoot full scale
// slightly. Values are passed through unclipped; the wav writers clamp
// to full scale when the result is saved.
//
// # Errors
//
// Decode wraps any error oggvorbis reports while reading the three
// Vorbis headers in ErrNotVorbisFile:
//
//	if errors.Is(err, vorbis.ErrNotVorbisFile) {
//	    // no Ogg capture pattern, or not a Vorbis logical stream
//	}
//
// # Limitations
//
//   - Decoding only
//   - Chained streams with a changing channel count are not supported
package vorbis
