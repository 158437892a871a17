// SPDX-License-Identifier: EPL-2.0

package augmenter

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
)

var (
	DefaultLoudnessZone   = Zone{Lo: 0.2, Hi: 0.8}
	DefaultLoudnessFactor = [2]float64{0.5, 2}
)

// Loudness scales a span inside its zone by a random linear gain and
// clips the result to [-1, 1].
type Loudness struct {
	retainer

	zone      Zone
	coverage  float64
	placement Placement
	factor    [2]float64
	rng       *rand.Rand
	logger    *slog.Logger
}

func NewLoudness(opts ...Option) (*Loudness, error) {
	cfg := newConfig(DefaultLoudnessZone, 1, DefaultLoudnessFactor, opts)
	if err := cfg.zone.Validate(); err != nil {
		return nil, err
	}
	if err := validateCoverage(cfg.coverage); err != nil {
		return nil, err
	}
	lo, hi := cfg.factor[0], cfg.factor[1]
	if !isFinite(lo) || !isFinite(hi) || lo <= 0 || lo > hi {
		return nil, fmt.Errorf("%w: gain (%g, %g)", ErrInvalidFactor, lo, hi)
	}

	return &Loudness{
		retainer:  retainer{stateless: cfg.stateless},
		zone:      cfg.zone,
		coverage:  cfg.coverage,
		placement: cfg.placement,
		factor:    cfg.factor,
		rng:       cfg.rng,
		logger:    cfg.logger,
	}, nil
}

func (l *Loudness) Augment(samples []float32) ([]float32, error) {
	out, st, err := l.AugmentWithState(samples)
	if err != nil {
		return nil, err
	}
	l.keep(st)
	return out, nil
}

func (l *Loudness) AugmentWithState(samples []float32) ([]float32, State, error) {
	if len(samples) == 0 {
		return nil, State{}, ErrEmptyInput
	}

	start, end := l.zone.Region(len(samples), l.coverage, l.placement, l.rng)
	gain := l.factor[0] + l.rng.Float64()*(l.factor[1]-l.factor[0])

	scaled := make([]float32, end-start)
	for i, v := range samples[start:end] {
		scaled[i] = clip(v * float32(gain))
	}

	out := make([]float32, len(samples))
	copy(out, samples)
	copy(out[start:end], scaled)

	l.logger.Debug("loudness applied", "start", start, "end", end, "gain", gain)

	return out, State{StartPos: start, EndPos: end, AugData: scaled, Factor: gain}, nil
}
