// SPDX-License-Identifier: EPL-2.0

package augmenter

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
)

// DefaultMaskZone is the zone a Mask built from configuration uses when
// none is given.
var DefaultMaskZone = Zone{Lo: 0.2, Hi: 0.8}

// Mask overwrites a contiguous span inside its zone with generated data.
// The span length is round(N * (zone.Hi-zone.Lo) * coverage).
type Mask struct {
	retainer

	samplingRate int
	zone         Zone
	coverage     float64
	placement    Placement
	fill         FillFunc
	rng          *rand.Rand
	logger       *slog.Logger
}

// NewMask validates the configuration and returns a stateless Mask.
func NewMask(samplingRate int, zone Zone, coverage float64, opts ...Option) (*Mask, error) {
	if samplingRate <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSampleRate, samplingRate)
	}

	cfg := newConfig(zone, coverage, [2]float64{}, opts)
	if err := cfg.zone.Validate(); err != nil {
		return nil, err
	}
	if err := validateCoverage(cfg.coverage); err != nil {
		return nil, err
	}
	if cfg.fillFunc == nil && (!isFinite(cfg.noiseLevel) || cfg.noiseLevel < 0) {
		return nil, fmt.Errorf("%w: noise level %g", ErrInvalidFactor, cfg.noiseLevel)
	}

	fill := cfg.fillFunc
	if fill == nil {
		fill = cfg.fill.fn(cfg.noiseLevel)
	}

	return &Mask{
		retainer:     retainer{stateless: cfg.stateless},
		samplingRate: samplingRate,
		zone:         cfg.zone,
		coverage:     cfg.coverage,
		placement:    cfg.placement,
		fill:         fill,
		rng:          cfg.rng,
		logger:       cfg.logger,
	}, nil
}

func (m *Mask) SamplingRate() int    { return m.samplingRate }
func (m *Mask) Zone() Zone           { return m.zone }
func (m *Mask) Coverage() float64    { return m.coverage }
func (m *Mask) Placement() Placement { return m.placement }

// Augment returns a masked copy of samples. When the mask is not
// stateless the resulting State is kept for LastState.
func (m *Mask) Augment(samples []float32) ([]float32, error) {
	out, st, err := m.AugmentWithState(samples)
	if err != nil {
		return nil, err
	}
	m.keep(st)
	return out, nil
}

// AugmentWithState is Augment returning the State explicitly instead of
// retaining it.
func (m *Mask) AugmentWithState(samples []float32) ([]float32, State, error) {
	if len(samples) == 0 {
		return nil, State{}, ErrEmptyInput
	}

	start, end := m.zone.Region(len(samples), m.coverage, m.placement, m.rng)

	data, err := m.fill(end-start, m.rng)
	if err != nil {
		return nil, State{}, fmt.Errorf("%w: mask fill: %w", ErrAugmentFailed, err)
	}
	if len(data) != end-start {
		return nil, State{}, fmt.Errorf("%w: mask fill returned %d samples, want %d",
			ErrAugmentFailed, len(data), end-start)
	}

	out := make([]float32, len(samples))
	copy(out, samples)
	copy(out[start:end], data)

	m.logger.Debug("mask applied",
		"start", start,
		"end", end,
		"samples", len(samples),
		"zone", m.zone.String(),
		"coverage", m.coverage,
	)

	return out, State{StartPos: start, EndPos: end, AugData: data}, nil
}
