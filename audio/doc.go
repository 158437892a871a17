// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming primitives the loaders and
// augmenters are built on.
//
//   - Source: interleaved float32 stream in [-1, 1]
//   - Registry: decoders keyed by file extension
//   - Resampler: sample rate conversion with cubic interpolation
//   - MonoMixer: channel averaging
//   - SliceSource and ReadAll: move between whole buffers and streams
//
// # Pipelines
//
// Stages wrap each other and are read until io.EOF:
//
//	src, _ := wav.Decoder{}.Decode(f)
//	mono := audio.NewMonoMixer(audio.NewResampler(src, 16000))
//	samples, err := audio.ReadAll(mono, 4096)
//
// A decoded buffer can be turned back into a stream:
//
//	src, _ := audio.NewSliceSource(samples, 44100, 1)
//	down := audio.NewResampler(src, 22050)
//
// # End of stream
//
// ReadSamples may return data together with io.EOF. A read that returns
// n == 0 and io.EOF means the stream is finished:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    process(buf[:n])
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
//
// ReadAll follows this contract and also gives up after a long run of
// (0, nil) reads, returning io.ErrNoProgress instead of spinning.
//
// # Decoders and Registry
//
// A Decoder turns an io.Reader into a Source. Registry maps lower-case
// extensions without the leading dot to decoders:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	dec, ok := reg.Get("WAV")
//
// Lookups are case-insensitive and a leading dot is ignored. Register
// replaces an existing entry. The registry is safe for concurrent use.
//
// # Resampling
//
// Resampler converts between rates with 4-tap cubic (Catmull-Rom)
// interpolation. When downsampling it first runs a simple one-pole
// low-pass over each frame to soften aliasing. Channels are handled
// independently and stay interleaved.
//
// # Mixing
//
// MonoMixer averages every frame into a single sample. A mono source
// passes through unchanged.
//
// # Errors
//
//   - ErrInvalidRate: a sample rate <= 0
//   - ErrNoChannels: a channel count <= 0
//   - ErrInvalidDstSize: a buffer that is not a whole number of frames
package audio
