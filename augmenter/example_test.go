// SPDX-License-Identifier: EPL-2.0

package augmenter_test

import (
	"fmt"

	"github.com/ik5/audaug/augmenter"
)

func ExampleMask_AugmentWithState() {
	mask, err := augmenter.NewMask(8000, augmenter.Zone{Lo: 0.25, Hi: 0.75}, 0.5,
		augmenter.WithFill(augmenter.FillSilence),
		augmenter.WithPlacement(augmenter.PlaceStart),
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	in := []float32{1, 1, 1, 1, 1, 1, 1, 1}
	out, st, err := mask.AugmentWithState(in)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(out)
	fmt.Println(st.StartPos, st.EndPos)
	// Output:
	// [1 1 0 0 1 1 1 1]
	// 2 4
}

func ExampleZone_Span() {
	zone := augmenter.Zone{Lo: 0.3, Hi: 0.7}
	fmt.Println(zone.Span(44100, 0.1))
	// Output: 1764
}
