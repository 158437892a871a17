// SPDX-License-Identifier: EPL-2.0

package augmenter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/audaug/internal/audiotest"
)

func TestNewLoudness_Validation(t *testing.T) {
	t.Parallel()

	for name, opts := range map[string][]Option{
		"zero gain":     {WithFactor(0, 2)},
		"negative gain": {WithFactor(-1, 2)},
		"reversed":      {WithFactor(2, 1)},
	} {
		_, err := NewLoudness(opts...)
		assert.ErrorIs(t, err, ErrInvalidFactor, name)
	}

	_, err := NewLoudness(WithCoverage(2))
	assert.ErrorIs(t, err, ErrInvalidCoverage)
}

func TestLoudness_ScalesRegion(t *testing.T) {
	t.Parallel()

	l, err := NewLoudness(WithSeed(4))
	require.NoError(t, err)

	in := audiotest.Sine(330, testRate, 8000, 0.4)
	for range 10 {
		out, st, err := l.AugmentWithState(in)
		require.NoError(t, err)
		require.Len(t, out, len(in))

		assert.GreaterOrEqual(t, st.Factor, DefaultLoudnessFactor[0])
		assert.LessOrEqual(t, st.Factor, DefaultLoudnessFactor[1])

		for i := st.StartPos; i < st.EndPos; i++ {
			want := clip(in[i] * float32(st.Factor))
			require.InDelta(t, want, out[i], 1e-6, "sample %d", i)
		}
		assert.Equal(t, in[:st.StartPos], out[:st.StartPos])
		assert.Equal(t, in[st.EndPos:], out[st.EndPos:])
	}
}

func TestLoudness_Clips(t *testing.T) {
	t.Parallel()

	l, err := NewLoudness(WithZone(FullZone), WithFactor(4, 4))
	require.NoError(t, err)

	out, err := l.Augment([]float32{0.5, -0.5, 0.1})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float32{1, -1, 0.4}, out, 1e-6)
}
