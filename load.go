// SPDX-License-Identifier: EPL-2.0

package audaug

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ik5/audaug/audio"
	"github.com/ik5/audaug/formats/aiff"
	"github.com/ik5/audaug/formats/mp3"
	"github.com/ik5/audaug/formats/vorbis"
	"github.com/ik5/audaug/formats/wav"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	ErrEmptyAudio        = errors.New("audio contains no samples")
)

const defaultBufferSize = 4096

type loadConfig struct {
	targetRate int
	bufSize    int
	registry   *audio.Registry
}

// LoadOption adjusts LoadAudio and LoadAudioFrom.
type LoadOption func(*loadConfig)

// WithTargetRate resamples the decoded audio to rate Hz. Zero or a
// negative rate keeps the file's own rate.
func WithTargetRate(rate int) LoadOption {
	return func(c *loadConfig) { c.targetRate = rate }
}

// WithBufferSize sets the read buffer used while draining the decoder.
func WithBufferSize(n int) LoadOption {
	return func(c *loadConfig) {
		if n > 0 {
			c.bufSize = n
		}
	}
}

// WithRegistry replaces the decoder registry, e.g. to add a format.
func WithRegistry(r *audio.Registry) LoadOption {
	return func(c *loadConfig) { c.registry = r }
}

// DefaultRegistry returns a registry with every bundled decoder.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	return reg
}

// LoadAudio decodes the file at path, choosing the decoder by extension,
// and returns its samples mixed down to mono together with the sampling
// rate.
func LoadAudio(path string, opts ...LoadOption) ([]float32, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("load audio: %w", err)
	}
	defer f.Close()

	samples, rate, err := LoadAudioFrom(f, filepath.Ext(path), opts...)
	if err != nil {
		return nil, 0, fmt.Errorf("load audio %q: %w", path, err)
	}
	return samples, rate, nil
}

// LoadAudioFrom is LoadAudio for an already opened stream. format is a
// registry key such as "wav" or ".mp3".
func LoadAudioFrom(r io.Reader, format string, opts ...LoadOption) ([]float32, int, error) {
	cfg := loadConfig{bufSize: defaultBufferSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.registry == nil {
		cfg.registry = DefaultRegistry()
	}

	dec, ok := cfg.registry.Get(format)
	if !ok {
		return nil, 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	src, err := dec.Decode(r)
	if err != nil {
		return nil, 0, fmt.Errorf("decode: %w", err)
	}
	defer src.Close()

	stream := src
	if cfg.targetRate > 0 && cfg.targetRate != src.SampleRate() {
		stream = audio.NewResampler(stream, cfg.targetRate)
	}
	stream = audio.NewMonoMixer(stream)

	samples, err := audio.ReadAll(stream, cfg.bufSize)
	if err != nil {
		return nil, 0, fmt.Errorf("read samples: %w", err)
	}
	if len(samples) == 0 {
		return nil, 0, ErrEmptyAudio
	}

	return samples, stream.SampleRate(), nil
}

// SaveAudio writes mono samples to path as a 16-bit PCM WAV.
func SaveAudio(path string, samples []float32, rate int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save audio: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("save audio: %w", cerr)
		}
	}()

	if err := wav.Encode(f, rate, samples); err != nil {
		return fmt.Errorf("save audio %q: %w", path, err)
	}
	return nil
}
