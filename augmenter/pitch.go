// SPDX-License-Identifier: EPL-2.0

package augmenter

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
)

const (
	// MinPitchShift is the smallest |semitones| Pitch applies, so a draw
	// never degenerates into an identity transform.
	MinPitchShift = 0.5
	// MaxPitchShift keeps the ratio within two octaves either way.
	MaxPitchShift = 24.0

	pitchRedraws = 32
)

var (
	DefaultPitchZone   = Zone{Lo: 0.2, Hi: 0.8}
	DefaultPitchFactor = [2]float64{-10, 10}
)

// Pitch shifts the pitch of a span inside its zone by a random number of
// semitones while keeping the waveform length.
type Pitch struct {
	retainer

	samplingRate int
	zone         Zone
	coverage     float64
	placement    Placement
	factor       [2]float64
	rng          *rand.Rand
	logger       *slog.Logger
	shifter      *wsola
}

// NewPitch returns a Pitch over zone (0.2, 0.8) with full coverage and a
// (-10, 10) semitone range unless overridden.
func NewPitch(samplingRate int, opts ...Option) (*Pitch, error) {
	if samplingRate <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSampleRate, samplingRate)
	}

	cfg := newConfig(DefaultPitchZone, 1, DefaultPitchFactor, opts)
	if err := cfg.zone.Validate(); err != nil {
		return nil, err
	}
	if err := validateCoverage(cfg.coverage); err != nil {
		return nil, err
	}
	if err := validateSemitones(cfg.factor); err != nil {
		return nil, err
	}

	return &Pitch{
		retainer:     retainer{stateless: cfg.stateless},
		samplingRate: samplingRate,
		zone:         cfg.zone,
		coverage:     cfg.coverage,
		placement:    cfg.placement,
		factor:       cfg.factor,
		rng:          cfg.rng,
		logger:       cfg.logger,
		shifter:      newWSOLA(samplingRate),
	}, nil
}

func validateSemitones(f [2]float64) error {
	lo, hi := f[0], f[1]
	switch {
	case !isFinite(lo) || !isFinite(hi) || lo > hi:
		return fmt.Errorf("%w: semitones (%g, %g)", ErrInvalidFactor, lo, hi)
	case lo < -MaxPitchShift || hi > MaxPitchShift:
		return fmt.Errorf("%w: semitones must stay within ±%g", ErrInvalidFactor, MaxPitchShift)
	case math.Max(math.Abs(lo), math.Abs(hi)) < MinPitchShift:
		return fmt.Errorf("%w: range (%g, %g) never reaches %g semitones",
			ErrInvalidFactor, lo, hi, MinPitchShift)
	}
	return nil
}

func (p *Pitch) SamplingRate() int        { return p.samplingRate }
func (p *Pitch) Zone() Zone               { return p.zone }
func (p *Pitch) Coverage() float64        { return p.coverage }
func (p *Pitch) Factor() (lo, hi float64) { return p.factor[0], p.factor[1] }

// Augment returns a copy of samples with the selected span pitch-shifted.
func (p *Pitch) Augment(samples []float32) ([]float32, error) {
	out, st, err := p.AugmentWithState(samples)
	if err != nil {
		return nil, err
	}
	p.keep(st)
	return out, nil
}

// AugmentWithState is Augment returning the State explicitly. Factor holds
// the applied shift in semitones.
func (p *Pitch) AugmentWithState(samples []float32) ([]float32, State, error) {
	if len(samples) == 0 {
		return nil, State{}, ErrEmptyInput
	}

	start, end := p.zone.Region(len(samples), p.coverage, p.placement, p.rng)
	semitones := p.drawSemitones()
	ratio := math.Pow(2, semitones/12)

	shifted := p.shifter.shift(samples[start:end], ratio)
	for i, v := range shifted {
		shifted[i] = clip(v)
	}

	out := make([]float32, len(samples))
	copy(out, samples)
	copy(out[start:end], shifted)

	p.logger.Debug("pitch applied",
		"start", start,
		"end", end,
		"semitones", semitones,
		"samples", len(samples),
	)

	return out, State{StartPos: start, EndPos: end, AugData: shifted, Factor: semitones}, nil
}

func (p *Pitch) drawSemitones() float64 {
	lo, hi := p.factor[0], p.factor[1]
	for range pitchRedraws {
		s := lo + p.rng.Float64()*(hi-lo)
		if math.Abs(s) >= MinPitchShift {
			return s
		}
	}

	// the usable part of the range is tiny; take its widest end
	if math.Abs(lo) > math.Abs(hi) {
		return lo
	}
	return hi
}
