// SPDX-License-Identifier: EPL-2.0

// Package augmenter implements waveform augmentations for training data.
//
// # Zones and Coverage
//
// Every augmenter works on a zone, the proportional part of the waveform
// it may touch, and a coverage, the share of that zone it actually
// replaces. For a waveform of N samples the replaced span is
//
//	round(N * (zone.Hi - zone.Lo) * coverage)
//
// samples long and lies inside [floor(N*zone.Lo), ceil(N*zone.Hi)].
// Placement decides where inside the zone the span starts:
//   - PlaceRandom: uniform over every start that keeps the span in the zone
//   - PlaceCenter: centred in the zone
//   - PlaceStart: aligned with the zone start
//
// Samples outside the span are copied unchanged and the output always
// has the input's length. The input slice is never modified.
//
// # Augmenters
//
// Mask replaces the span with noise or silence:
//
//	mask, err := augmenter.NewMask(rate, augmenter.Zone{Lo: 0.3, Hi: 0.7}, 0.1,
//	    augmenter.WithFill(augmenter.FillSilence))
//
// The default fill is Gaussian noise with standard deviation 0.1 (see
// WithNoiseLevel); WithFillFunc plugs in any other generator.
//
// Pitch shifts the span by a random number of semitones drawn from its
// factor range (default -10 to 10, at most 24 either way). Draws closer
// to zero than MinPitchShift are redrawn. The span is time-stretched
// with WSOLA and then resampled back to its own length, so its duration
// is kept while its pitch changes:
//
//	pitch, err := augmenter.NewPitch(rate, augmenter.WithFactor(-4, 4))
//
// Loudness scales the span by a random gain drawn from its factor range
// (default 0.5 to 2).
//
// Sequential chains augmenters, feeding each one the previous output.
//
// # State
//
// AugmentWithState returns the changed span next to the output:
//
//	out, st, err := mask.AugmentWithState(samples)
//	// st.StartPos, st.EndPos, st.AugData
//	// out == st.Reconstruct(samples)
//
// Augmenters are stateless by default. Call SetStateless(false) (or pass
// WithStateless(false)) to have Augment keep the latest State on the
// instance, then read it back with LastState. Each call overwrites it,
// so a retaining augmenter must not be shared between goroutines.
//
// # Randomness
//
// Randomness comes from an explicit math/rand/v2 source. WithSeed gives
// reproducible output; WithRand shares a caller-owned generator.
//
// # Errors
//
// Construction fails with ErrInvalidSampleRate, ErrInvalidZone,
// ErrInvalidCoverage or ErrInvalidFactor. Augment returns ErrEmptyInput
// for an empty waveform and wraps any fault while producing replacement
// data in ErrAugmentFailed.
package augmenter
