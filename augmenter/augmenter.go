// SPDX-License-Identifier: EPL-2.0

package augmenter

import "fmt"

// Augmenter transforms a mono waveform. Implementations never modify
// their input and return a waveform of the same length.
type Augmenter interface {
	Augment(samples []float32) ([]float32, error)
}

// Inspector is implemented by augmenters that can report what a call
// changed.
type Inspector interface {
	Augmenter
	AugmentWithState(samples []float32) ([]float32, State, error)
	Stateless() bool
	SetStateless(stateless bool)
	LastState() (State, bool)
}

var (
	_ Inspector = (*Mask)(nil)
	_ Inspector = (*Pitch)(nil)
	_ Inspector = (*Loudness)(nil)
	_ Augmenter = (*Sequential)(nil)
)

// Sequential applies augmenters in order, feeding each one the output of
// the previous.
type Sequential struct {
	steps []Augmenter
}

func NewSequential(steps ...Augmenter) *Sequential {
	return &Sequential{steps: steps}
}

// Len is the number of steps.
func (s *Sequential) Len() int { return len(s.steps) }

func (s *Sequential) Augment(samples []float32) ([]float32, error) {
	if len(samples) == 0 {
		return nil, ErrEmptyInput
	}

	cur := make([]float32, len(samples))
	copy(cur, samples)
	for i, step := range s.steps {
		out, err := step.Augment(cur)
		if err != nil {
			return nil, fmt.Errorf("step %d (%T): %w", i, step, err)
		}
		cur = out
	}

	return cur, nil
}
