// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ik5/audaug/augmenter"
)

// Load reads the YAML pipeline at path and returns a validated [Config].
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes a YAML pipeline from r and validates it. Unknown
// keys are rejected.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field and returns all failures joined.
func Validate(cfg *Config) error {
	var errs []error

	if cfg.LogLevel != "" && !cfg.LogLevel.IsValid() {
		errs = append(errs, fmt.Errorf("log_level %q is invalid; valid values: debug, info, warn, error", cfg.LogLevel))
	}
	if cfg.TargetRate < 0 {
		errs = append(errs, fmt.Errorf("target_rate must not be negative, got %d", cfg.TargetRate))
	}
	if len(cfg.Steps) == 0 {
		errs = append(errs, errors.New("steps: at least one step is required"))
	}

	for i, st := range cfg.Steps {
		for _, err := range validateStep(st) {
			errs = append(errs, fmt.Errorf("steps[%d]: %w", i, err))
		}
	}

	return errors.Join(errs...)
}

func validateStep(st Step) []error {
	var errs []error

	if !st.Type.IsValid() {
		errs = append(errs, fmt.Errorf("type %q is invalid; valid values: mask, pitch, loudness", st.Type))
	}

	if st.Zone != nil {
		if len(st.Zone) != 2 {
			errs = append(errs, fmt.Errorf("zone needs exactly two values, got %d", len(st.Zone)))
		} else if err := (augmenter.Zone{Lo: st.Zone[0], Hi: st.Zone[1]}).Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if st.Coverage != nil && (!isFinite(*st.Coverage) || *st.Coverage <= 0 || *st.Coverage > 1) {
		errs = append(errs, fmt.Errorf("%w: got %g", augmenter.ErrInvalidCoverage, *st.Coverage))
	}
	if st.Factor != nil && len(st.Factor) != 2 {
		errs = append(errs, fmt.Errorf("factor needs exactly two values, got %d", len(st.Factor)))
	}
	for _, f := range st.Factor {
		if !isFinite(f) {
			errs = append(errs, fmt.Errorf("%w: factor must be finite, got %g", augmenter.ErrInvalidFactor, f))
			break
		}
	}
	if _, err := augmenter.ParsePlacement(st.Placement); err != nil {
		errs = append(errs, err)
	}

	if st.Type != StepMask {
		if st.Fill != "" {
			errs = append(errs, errors.New("fill only applies to mask steps"))
		}
		if st.Noise != nil {
			errs = append(errs, errors.New("noise_level only applies to mask steps"))
		}
		if len(st.Factor) == 2 && st.Factor[0] > st.Factor[1] {
			errs = append(errs, fmt.Errorf("%w: factor lower bound exceeds upper bound", augmenter.ErrInvalidFactor))
		}
		return errs
	}

	if st.Factor != nil {
		errs = append(errs, errors.New("factor does not apply to mask steps"))
	}
	if _, err := augmenter.ParseFill(st.Fill); err != nil {
		errs = append(errs, err)
	}
	if st.Noise != nil && (!isFinite(*st.Noise) || *st.Noise < 0) {
		errs = append(errs, fmt.Errorf("noise_level must be finite and not negative, got %g", *st.Noise))
	}

	return errs
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
