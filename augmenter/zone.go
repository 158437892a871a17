// SPDX-License-Identifier: EPL-2.0

package augmenter

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
)

// Zone is the proportional part of a waveform an augmenter may touch.
type Zone struct {
	Lo float64
	Hi float64
}

// FullZone covers the whole waveform.
var FullZone = Zone{Lo: 0, Hi: 1}

func (z Zone) String() string {
	return fmt.Sprintf("(%g, %g)", z.Lo, z.Hi)
}

func (z Zone) Validate() error {
	if !isFinite(z.Lo) || !isFinite(z.Hi) || z.Lo < 0 || z.Hi > 1 || z.Lo >= z.Hi {
		return fmt.Errorf("%w: got %s", ErrInvalidZone, z)
	}
	return nil
}

// Bounds returns the zone in sample indices for a waveform of n samples:
// floor(n*Lo) and ceil(n*Hi), clamped to [0, n].
func (z Zone) Bounds(n int) (lo, hi int) {
	lo = int(math.Floor(float64(n) * z.Lo))
	hi = int(math.Ceil(float64(n) * z.Hi))
	return max(0, min(lo, n)), max(0, min(hi, n))
}

// Span is the number of samples replaced for coverage:
// round(n * (Hi-Lo) * coverage), never wider than the zone itself.
func (z Zone) Span(n int, coverage float64) int {
	lo, hi := z.Bounds(n)
	span := int(math.Round(float64(n) * (z.Hi - z.Lo) * coverage))
	return max(0, min(span, hi-lo))
}

// Region picks the [start, end) range to replace. rng is only consulted
// for PlaceRandom.
func (z Zone) Region(n int, coverage float64, p Placement, rng *rand.Rand) (start, end int) {
	lo, hi := z.Bounds(n)
	span := z.Span(n, coverage)
	slack := hi - lo - span

	start = lo
	switch p {
	case PlaceStart:
	case PlaceCenter:
		start += slack / 2
	default:
		if slack > 0 {
			start += rng.IntN(slack + 1)
		}
	}

	return start, start + span
}

func validateCoverage(c float64) error {
	if !isFinite(c) || c <= 0 || c > 1 {
		return fmt.Errorf("%w: got %g", ErrInvalidCoverage, c)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Placement decides where inside the zone the replaced span starts.
type Placement int

const (
	// PlaceRandom draws the start uniformly so the span fits in the zone.
	PlaceRandom Placement = iota
	// PlaceCenter centres the span in the zone.
	PlaceCenter
	// PlaceStart aligns the span with the start of the zone.
	PlaceStart
)

func (p Placement) String() string {
	switch p {
	case PlaceCenter:
		return "center"
	case PlaceStart:
		return "start"
	default:
		return "random"
	}
}

// ParsePlacement accepts "random", "center" and "start"; empty means random.
func ParsePlacement(s string) (Placement, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "random":
		return PlaceRandom, nil
	case "center", "centre":
		return PlaceCenter, nil
	case "start":
		return PlaceStart, nil
	}
	return PlaceRandom, fmt.Errorf("unknown placement %q", s)
}
