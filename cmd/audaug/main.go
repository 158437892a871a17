// SPDX-License-Identifier: EPL-2.0

// Command audaug augments an audio file with a configurable pipeline and
// writes the result as a 16-bit mono WAV.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/ik5/audaug"
	"github.com/ik5/audaug/config"
	"github.com/ik5/audaug/formats/wav"
	"github.com/ik5/audaug/internal/spectral"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// defaults may come from .env; a missing file is fine
	_ = godotenv.Load()

	fs := flag.NewFlagSet("audaug", flag.ContinueOnError)
	inPath := fs.String("in", "", "input audio file (wav, mp3, ogg, aiff)")
	outPath := fs.String("out", "", "output WAV file, or - for stdout")
	configPath := fs.String("config", os.Getenv("AUDAUG_CONFIG"), "YAML pipeline; empty applies a mask then a pitch shift")
	seed := fs.Uint64("seed", 0, "random seed; overrides the config when non-zero")
	logLevel := fs.String("log-level", os.Getenv("AUDAUG_LOG_LEVEL"), "debug, info, warn or error; overrides the config")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *inPath == "" || *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: audaug -in <input> -out <output.wav|-> [-config pipeline.yaml] [-seed N]")
		return 2
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "audaug: config file %q not found\n", *configPath)
		} else {
			fmt.Fprintf(os.Stderr, "audaug: %v\n", err)
		}
		return 1
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *logLevel != "" {
		cfg.LogLevel = config.LogLevel(*logLevel)
	}
	if cfg.LogLevel != "" && !cfg.LogLevel.IsValid() {
		fmt.Fprintf(os.Stderr, "audaug: log level %q is invalid; valid values: debug, info, warn, error\n", cfg.LogLevel)
		return 2
	}

	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	samples, rate, err := audaug.LoadAudio(*inPath, audaug.WithTargetRate(cfg.TargetRate))
	if err != nil {
		logger.Error("failed to load input", "path", *inPath, "err", err)
		return 1
	}
	logger.Info("input loaded", "path", *inPath, "samples", len(samples), "rate", rate)
	logDominant(logger, "input", samples, rate)

	pipeline, err := config.Build(cfg, rate, logger)
	if err != nil {
		logger.Error("failed to build pipeline", "err", err)
		return 1
	}

	out, err := pipeline.Augment(samples)
	if err != nil {
		logger.Error("augmentation failed", "err", err)
		return 1
	}
	logDominant(logger, "output", out, rate)

	if err := write(*outPath, out, rate); err != nil {
		logger.Error("failed to write output", "path", *outPath, "err", err)
		return 1
	}

	logger.Info("output written", "path", *outPath, "steps", pipeline.Len())
	return 0
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return defaultConfig(), nil
	}
	return config.Load(path)
}

// defaultConfig masks a tenth of the middle of the clip, then shifts its pitch.
func defaultConfig() *config.Config {
	coverage := 0.1
	return &config.Config{
		LogLevel: config.LogInfo,
		Steps: []config.Step{
			{Type: config.StepMask, Zone: []float64{0.3, 0.7}, Coverage: &coverage},
			{Type: config.StepPitch},
		},
	}
}

func write(path string, samples []float32, rate int) error {
	if path == "-" {
		return wav.WriteFloat32(os.Stdout, rate, samples)
	}
	return audaug.SaveAudio(path, samples, rate)
}

func logDominant(logger *slog.Logger, label string, samples []float32, rate int) {
	freq, err := spectral.DominantFrequency(samples, rate)
	if err != nil {
		logger.Debug("dominant frequency unavailable", "signal", label, "err", err)
		return
	}
	logger.Debug("dominant frequency", "signal", label, "hz", freq)
}

// newLogger writes text logs to stderr so stdout stays free for WAV data.
func newLogger(level config.LogLevel) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level.Level()}))
}
