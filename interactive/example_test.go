package interactive_test

import (
	"fmt"

	"github.com/cwbudde/algo-wavelab/interactive"
)

func ExampleInteract() {
	freq := interactive.NewFloatSlider(220, 880, 1, 440)

	plot := func(vals map[string]float64) error {
		fmt.Printf("drawing at %.0f Hz\n", vals["freq"])
		return nil
	}

	if _, err := interactive.Interact(plot, []*interactive.FloatSlider{freq}, []string{"freq"}); err != nil {
		fmt.Println(err)
		return
	}

	// Dragging is debounced: only the release triggers a redraw.
	freq.SetValue(660)
	freq.Release()

	// Output:
	// drawing at 440 Hz
	// drawing at 660 Hz
}
