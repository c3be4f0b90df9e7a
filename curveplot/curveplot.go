package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/256dpi/max-easing/curve"
)

var name = flag.String("curve", "", "curve to sample, all curves if empty")
var samples = flag.Int("samples", 11, "number of samples")
var from = flag.Float64("from", 0, "begin value")
var to = flag.Float64("to", 1, "target value")
var bars = flag.Bool("bars", false, "draw bars")

func main() {
	flag.Parse()

	// get kinds
	kinds := curve.Kinds()
	if *name != "" {
		kind, ok := curve.Lookup(*name)
		if !ok {
			fmt.Fprintf(os.Stderr, "unknown curve: %s\n", *name)
			os.Exit(1)
		}
		kinds = []curve.Kind{kind}
	}

	// check samples
	if *samples < 2 {
		fmt.Fprintln(os.Stderr, "at least two samples are required")
		os.Exit(1)
	}

	for _, kind := range kinds {
		plot(os.Stdout, kind, *samples, *from, *to, *bars)
	}
}

func sample(kind curve.Kind, n int, begin, target float64) ([]float64, []float64) {
	// get times
	times := floats.Span(make([]float64, n), 0, 1)

	// evaluate curve
	fn := curve.Resolve(kind)
	values := make([]float64, n)
	for i, t := range times {
		values[i] = fn(t, begin, target-begin, 1)
	}

	return times, values
}

func plot(w io.Writer, kind curve.Kind, n int, begin, target float64, bars bool) {
	// sample curve
	times, values := sample(kind, n, begin, target)
	low, high := floats.Min(values), floats.Max(values)

	// print header
	_, _ = fmt.Fprintf(w, "%s [%.4f, %.4f]\n", kind, low, high)

	for i, t := range times {
		// print value
		_, _ = fmt.Fprintf(w, "  %.3f  %+.4f", t, values[i])

		// print bar
		if bars && high > low {
			width := int((values[i] - low) / (high - low) * 40)
			_, _ = fmt.Fprintf(w, "  %s", strings.Repeat("#", width))
		}

		_, _ = fmt.Fprintln(w)
	}
}
