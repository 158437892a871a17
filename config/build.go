// SPDX-License-Identifier: EPL-2.0

package config

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/ik5/audaug/augmenter"
)

// seedStride spreads per-step seeds apart.
const seedStride = 0x9e3779b97f4a7c15

// Build turns a validated Config into a pipeline for audio sampled at
// samplingRate. Step i is seeded with Seed + i*seedStride, so a fixed
// Seed reproduces the whole pipeline.
func Build(cfg *Config, samplingRate int, logger *slog.Logger) (*augmenter.Sequential, error) {
	if logger == nil {
		logger = slog.Default()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	steps := make([]augmenter.Augmenter, 0, len(cfg.Steps))
	for i, st := range cfg.Steps {
		opts, err := stepOptions(st)
		if err != nil {
			return nil, fmt.Errorf("config: steps[%d]: %w", i, err)
		}
		opts = append(opts,
			augmenter.WithSeed(seed+uint64(i)*seedStride),
			augmenter.WithLogger(logger.With("step", i, "type", string(st.Type))),
		)

		aug, err := newStep(st, samplingRate, opts)
		if err != nil {
			return nil, fmt.Errorf("config: steps[%d]: %w", i, err)
		}
		steps = append(steps, aug)
	}

	return augmenter.NewSequential(steps...), nil
}

func newStep(st Step, samplingRate int, opts []augmenter.Option) (augmenter.Augmenter, error) {
	switch st.Type {
	case StepMask:
		return augmenter.NewMask(samplingRate, augmenter.DefaultMaskZone, 1, opts...)
	case StepPitch:
		return augmenter.NewPitch(samplingRate, opts...)
	case StepLoudness:
		return augmenter.NewLoudness(opts...)
	}
	return nil, fmt.Errorf("unknown step type %q", st.Type)
}

func stepOptions(st Step) ([]augmenter.Option, error) {
	var opts []augmenter.Option

	if len(st.Zone) == 2 {
		opts = append(opts, augmenter.WithZone(augmenter.Zone{Lo: st.Zone[0], Hi: st.Zone[1]}))
	}
	if st.Coverage != nil {
		opts = append(opts, augmenter.WithCoverage(*st.Coverage))
	}
	if len(st.Factor) == 2 {
		opts = append(opts, augmenter.WithFactor(st.Factor[0], st.Factor[1]))
	}

	placement, err := augmenter.ParsePlacement(st.Placement)
	if err != nil {
		return nil, err
	}
	opts = append(opts, augmenter.WithPlacement(placement))

	if st.Type == StepMask {
		fill, err := augmenter.ParseFill(st.Fill)
		if err != nil {
			return nil, err
		}
		opts = append(opts, augmenter.WithFill(fill))
		if st.Noise != nil {
			opts = append(opts, augmenter.WithNoiseLevel(*st.Noise))
		}
	}

	return opts, nil
}
