// SPDX-License-Identifier: EPL-2.0

package augmenter

import "errors"

var (
	ErrInvalidSampleRate = errors.New("sampling rate must be positive")
	ErrInvalidZone       = errors.New("zone must satisfy 0 <= lo < hi <= 1")
	ErrInvalidCoverage   = errors.New("coverage must be in (0, 1]")
	ErrInvalidFactor     = errors.New("invalid factor range")
	ErrEmptyInput        = errors.New("waveform is empty")

	// ErrAugmentFailed wraps faults raised while producing replacement
	// data, so a failure is never mistaken for an unmodified result.
	ErrAugmentFailed = errors.New("augmentation failed")
)
