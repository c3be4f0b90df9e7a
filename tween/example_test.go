package tween_test

import (
	"fmt"

	"github.com/256dpi/max-easing/curve"
	"github.com/256dpi/max-easing/tween"
)

func Example() {
	t := tween.NewFloat()
	t.OnFinished(func() {
		fmt.Println("finished")
	})

	t.Start(0, 10, 2, curve.Linear, 1)
	for _, dt := range []float64{0.5, 1, 1, 1} {
		v := t.Advance(dt)
		fmt.Println(t.State(), v)
	}

	// Output:
	// delaying 0
	// running 2.5
	// running 7.5
	// finished
	// finished 10
}
