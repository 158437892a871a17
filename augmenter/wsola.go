// SPDX-License-Identifier: EPL-2.0

package augmenter

import (
	"math"

	"github.com/ik5/audaug/utils"
)

// Window sizes tuned for music: a long sequence keeps several beats in
// the correlation window.
const (
	sequenceMs = 82.0
	overlapMs  = 10.0
	searchMs   = 28.0

	minSequenceLen = 32
	minOverlapLen  = 8

	energyFloor = 1e-12
)

// wsola shifts pitch by time-stretching with waveform-similarity overlap-add
// and then resampling the stretched signal back to its original length.
type wsola struct {
	sequenceLen int
	overlapLen  int
	searchLen   int
	stepOut     int

	fadeIn  []float32
	fadeOut []float32
}

func newWSOLA(samplingRate int) *wsola {
	rate := float64(samplingRate)
	w := &wsola{
		sequenceLen: max(minSequenceLen, int(math.Round(sequenceMs*0.001*rate))),
		overlapLen:  max(minOverlapLen, int(math.Round(overlapMs*0.001*rate))),
		searchLen:   max(1, int(math.Round(searchMs*0.001*rate))),
	}
	if w.overlapLen >= w.sequenceLen {
		w.overlapLen = w.sequenceLen / 4
	}
	w.stepOut = w.sequenceLen - w.overlapLen

	w.fadeIn = make([]float32, w.overlapLen)
	w.fadeOut = make([]float32, w.overlapLen)
	for i := range w.overlapLen {
		t := float64(i) / float64(w.overlapLen-1)
		in := float32(0.5 - 0.5*math.Cos(math.Pi*t))
		w.fadeIn[i] = in
		w.fadeOut[i] = 1 - in
	}

	return w
}

// shift returns input pitch-shifted by ratio (2 is one octave up) with
// the same length as input.
func (w *wsola) shift(input []float32, ratio float64) []float32 {
	if len(input) < 2 || ratio == 1 {
		out := make([]float32, len(input))
		copy(out, input)
		return out
	}

	return utils.Stretch(w.stretch(input, ratio), len(input))
}

func (w *wsola) stretch(input []float32, ratio float64) []float32 {
	target := max(1, int(math.Round(float64(len(input))*ratio)))
	inStep := max(1, float64(w.stepOut)/ratio)

	out := make([]float32, (target/w.stepOut+4)*w.stepOut+w.sequenceLen+1)
	for i := range w.sequenceLen {
		out[i] = at(input, i)
	}

	outLen := w.sequenceLen
	prev := 0
	nominal := inStep
	ref := make([]float32, w.overlapLen)

	for outLen < target+w.sequenceLen {
		refStart := prev + w.stepOut
		for i := range ref {
			ref[i] = at(input, refStart+i)
		}

		cand := w.bestOverlap(ref, input, int(math.Round(nominal)))

		// cross-fade the tail already written with the new candidate
		base := outLen - w.overlapLen
		for i := range w.overlapLen {
			out[base+i] = out[base+i]*w.fadeOut[i] + at(input, cand+i)*w.fadeIn[i]
		}
		for i := w.overlapLen; i < w.sequenceLen; i++ {
			out[base+i] = at(input, cand+i)
		}

		outLen = base + w.sequenceLen
		prev = cand
		nominal += inStep

		if prev > len(input)+w.sequenceLen {
			break
		}
	}

	if target <= len(out) {
		return out[:target]
	}
	padded := make([]float32, target)
	copy(padded, out)
	return padded
}

// bestOverlap searches around predicted for the segment most similar to ref
// by normalized cross-correlation.
func (w *wsola) bestOverlap(ref, input []float32, predicted int) int {
	var refEnergy float64 = energyFloor
	for _, v := range ref {
		refEnergy += float64(v) * float64(v)
	}

	best := predicted
	bestScore := math.Inf(-1)
	for cand := predicted - w.searchLen; cand <= predicted+w.searchLen; cand++ {
		var dot float64
		var energy float64 = energyFloor
		for i, r := range ref {
			c := float64(at(input, cand+i))
			dot += float64(r) * c
			energy += c * c
		}

		if score := dot / math.Sqrt(refEnergy*energy); score > bestScore {
			bestScore = score
			best = cand
		}
	}

	return best
}

// at reads x[i], treating out-of-range indices as silence.
func at(x []float32, i int) float32 {
	if i < 0 || i >= len(x) {
		return 0
	}
	return x[i]
}
