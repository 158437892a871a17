// SPDX-License-Identifier: EPL-2.0

// Package config loads augmentation pipelines from YAML.
package config

import "log/slog"

// StepType names an augmenter.
type StepType string

const (
	StepMask     StepType = "mask"
	StepPitch    StepType = "pitch"
	StepLoudness StepType = "loudness"
)

// IsValid reports whether t is a known step type.
func (t StepType) IsValid() bool {
	switch t {
	case StepMask, StepPitch, StepLoudness:
		return true
	}
	return false
}

// LogLevel is a slog level name.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

func (l LogLevel) IsValid() bool {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return true
	}
	return false
}

// Level converts l to a slog.Level; unknown or empty names map to info.
func (l LogLevel) Level() slog.Level {
	switch l {
	case LogDebug:
		return slog.LevelDebug
	case LogWarn:
		return slog.LevelWarn
	case LogError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Config is the top-level pipeline document.
type Config struct {
	LogLevel LogLevel `yaml:"log_level"`
	// Seed makes the pipeline reproducible. Zero picks a random seed.
	Seed uint64 `yaml:"seed"`
	// TargetRate resamples input audio before augmenting. Zero keeps the
	// file's rate.
	TargetRate int    `yaml:"target_rate"`
	Steps      []Step `yaml:"steps"`
}

// Step configures one augmenter. Unset fields take the augmenter's
// defaults.
type Step struct {
	Type      StepType  `yaml:"type"`
	Zone      []float64 `yaml:"zone,omitempty"`
	Coverage  *float64  `yaml:"coverage,omitempty"`
	Factor    []float64 `yaml:"factor,omitempty"`
	Fill      string    `yaml:"fill,omitempty"`
	Placement string    `yaml:"placement,omitempty"`
	Noise     *float64  `yaml:"noise_level,omitempty"`
}
