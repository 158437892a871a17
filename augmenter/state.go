// SPDX-License-Identifier: EPL-2.0

package augmenter

import "slices"

// State describes what one Augment call changed.
type State struct {
	// StartPos and EndPos delimit the replaced samples, [StartPos, EndPos).
	StartPos int
	EndPos   int
	// AugData holds the samples written into that range.
	AugData []float32
	// Factor is the drawn parameter: semitones for Pitch, gain for
	// Loudness, zero for Mask.
	Factor float64
}

// Len is the number of replaced samples.
func (s State) Len() int { return s.EndPos - s.StartPos }

// Reconstruct splices AugData into original the way Augment does.
func (s State) Reconstruct(original []float32) []float32 {
	out := make([]float32, 0, len(original))
	out = append(out, original[:s.StartPos]...)
	out = append(out, s.AugData...)
	return append(out, original[s.EndPos:]...)
}

// retainer keeps the latest State when the augmenter is not stateless.
// Each call overwrites the previous one.
type retainer struct {
	stateless bool
	last      State
	has       bool
}

// Stateless reports whether per-call state is dropped.
func (r *retainer) Stateless() bool { return r.stateless }

// SetStateless toggles retention. Turning it on forgets any kept state.
func (r *retainer) SetStateless(stateless bool) {
	r.stateless = stateless
	if stateless {
		r.last, r.has = State{}, false
	}
}

// LastState returns the state of the most recent Augment call, if kept.
func (r *retainer) LastState() (State, bool) {
	if !r.has {
		return State{}, false
	}
	st := r.last
	st.AugData = slices.Clone(st.AugData)
	return st, true
}

func (r *retainer) keep(st State) {
	if r.stateless {
		return
	}
	r.last, r.has = st, true
}
