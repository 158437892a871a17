// SPDX-License-Identifier: EPL-2.0

package augmenter

import (
	"log/slog"
	"math/rand/v2"
)

type config struct {
	zone       Zone
	coverage   float64
	placement  Placement
	fill       Fill
	fillFunc   FillFunc
	noiseLevel float64
	factor     [2]float64
	stateless  bool
	rng        *rand.Rand
	logger     *slog.Logger
}

func newConfig(zone Zone, coverage float64, factor [2]float64, opts []Option) config {
	cfg := config{
		zone:       zone,
		coverage:   coverage,
		factor:     factor,
		noiseLevel: defaultNoiseLevel,
		stateless:  true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.rng == nil {
		cfg.rng = newRand(rand.Uint64())
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	return cfg
}

// Option configures an augmenter at construction time.
type Option func(*config)

// WithSeed makes every random draw reproducible.
func WithSeed(seed uint64) Option {
	return func(c *config) { c.rng = newRand(seed) }
}

// WithRand injects the random source. It is not safe to share between
// augmenters used from different goroutines.
func WithRand(r *rand.Rand) Option {
	return func(c *config) { c.rng = r }
}

// WithZone overrides the zone.
func WithZone(z Zone) Option {
	return func(c *config) { c.zone = z }
}

// WithCoverage overrides the coverage.
func WithCoverage(coverage float64) Option {
	return func(c *config) { c.coverage = coverage }
}

func WithPlacement(p Placement) Option {
	return func(c *config) { c.placement = p }
}

// WithFill selects a built-in replacement policy for Mask.
func WithFill(f Fill) Option {
	return func(c *config) { c.fill = f }
}

// WithFillFunc installs a custom replacement generator for Mask. It takes
// precedence over WithFill.
func WithFillFunc(fn FillFunc) Option {
	return func(c *config) { c.fillFunc = fn }
}

// WithNoiseLevel sets the standard deviation of FillNoise.
func WithNoiseLevel(level float64) Option {
	return func(c *config) { c.noiseLevel = level }
}

// WithFactor sets the range a factor is drawn from: semitones for Pitch,
// linear gain for Loudness.
func WithFactor(lo, hi float64) Option {
	return func(c *config) { c.factor = [2]float64{lo, hi} }
}

// WithStateless sets whether the latest State is dropped (true, the
// default) or kept for LastState.
func WithStateless(stateless bool) Option {
	return func(c *config) { c.stateless = stateless }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
