// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 clamps x to [-1, 1] and scales it to 16-bit PCM.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}
	// 32767 for positive max to avoid overflow
	return int16(x * 32767.0)
}

// PCMScale returns the divisor that maps signed integer PCM of the given
// bit depth to [-1, 1]. Unknown depths fall back to 16-bit.
func PCMScale(bitDepth int) float32 {
	switch bitDepth {
	case 8:
		return 128.0
	case 24:
		return 8388608.0
	case 32:
		return 2147483648.0
	default:
		return 32768.0
	}
}

// IntsToFloat32 converts signed integer PCM into dst and returns the
// number of values converted.
func IntsToFloat32(dst []float32, src []int, bitDepth int) int {
	scale := PCMScale(bitDepth)
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = float32(src[i]) / scale
	}
	return n
}

// Float32ToInts converts samples to 16-bit PCM stored as int, the layout
// go-audio buffers use.
func Float32ToInts(src []float32) []int {
	out := make([]int, len(src))
	for i, v := range src {
		out[i] = int(Float32ToInt16(v))
	}
	return out
}
