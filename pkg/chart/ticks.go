package chart

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
)

// headroom leaves a margin above the highest point.
const headroom = 1.05

// axisMax is the top of a percentage axis whose bottom is pinned at 0.
func axisMax(values []float64) float64 {
	if len(values) == 0 {
		return 1
	}
	if m := floats.Max(values); m > 0 {
		return m * headroom
	}
	return 1
}

// axisTicks are the ticks drawn on a [0, max] axis, minor ones included.
func axisTicks(max float64) []plot.Tick {
	return plot.DefaultTicks{}.Ticks(0, max)
}

// MajorTicks returns the labelled tick values of a [0, max] axis in order.
// Secondary axes are derived from these.
func MajorTicks(max float64) []float64 {
	var out []float64
	for _, t := range axisTicks(max) {
		if t.IsMinor() {
			continue
		}
		out = append(out, t.Value)
	}
	return out
}
