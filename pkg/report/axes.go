package report

import (
	"math"
	"strconv"
	"time"
)

// LegacyKiloDivisor is the middle divisor of the memory axis conversion.
// MB/GB labels read about 15% low against true MiB/GiB.
const LegacyKiloDivisor = 1204

const (
	threadBand = 100 // one fully used core, in CPU%
	memUnitMB  = "MB"
	memUnitGB  = "GB"
)

// Tick is a labelled position on a secondary axis, in primary-axis units.
type Tick struct {
	Value float64
	Label string
}

// Step is the time between two recorded samples: the measurement window
// plus the wait that follows it.
func Step(interval time.Duration) float64 {
	return 2 * interval.Seconds()
}

// TimeAxis returns points 0, step, 2*step, ... strictly below period.
func TimeAxis(period float64, interval time.Duration) []float64 {
	step := Step(interval)
	if step <= 0 || period <= 0 || math.IsNaN(period) || math.IsInf(period, 0) {
		return nil
	}
	n := int(math.Ceil(period / step))
	axis := make([]float64, n)
	for i := range axis {
		axis[i] = float64(i) * step
	}
	return axis
}

// WithLeadingZero prepends the value at time 0.
func WithLeadingZero(values []float64) []float64 {
	out := make([]float64, 0, len(values)+1)
	out = append(out, 0)
	return append(out, values...)
}

// Truncate cuts x and y to the shorter of the two lengths.
func Truncate(x, y []float64) ([]float64, []float64) {
	n := min(len(x), len(y))
	return x[:n], y[:n]
}

// Line builds the plotted points of one panel from the time axis and a series column.
func Line(axis, values []float64) ([]float64, []float64) {
	return Truncate(axis, WithLeadingZero(values))
}

// ThreadTicks numbers every CPU% tick that is a multiple of 100, counting
// how many extra cores' worth of CPU sit below it. cpuTicks must lie within
// the visible axis range. Tick values carry float rounding noise
// (199.99999999999997), so the multiple test uses a relative tolerance.
func ThreadTicks(cpuTicks []float64) []Tick {
	var ticks []Tick
	count := 0
	for _, v := range cpuTicks {
		if !multipleOf(v, threadBand) {
			continue
		}
		ticks = append(ticks, Tick{Value: v, Label: strconv.Itoa(count)})
		count++
	}
	return ticks
}

// MemoryTicks converts visible MEM% ticks into absolute memory. The whole axis
// switches to GB as soon as one tick reaches 1 GB, otherwise it stays in MB.
func MemoryTicks(memTicks []float64, totalMem uint64) ([]Tick, string) {
	values := memTicks
	unit := memUnitMB
	for _, v := range values {
		if memoryAmount(v, totalMem, true) >= 1 {
			unit = memUnitGB
			break
		}
	}

	ticks := make([]Tick, 0, len(values))
	for _, v := range values {
		amount := memoryAmount(v, totalMem, unit == memUnitGB)
		ticks = append(ticks, Tick{Value: v, Label: formatAmount(amount, unit)})
	}
	return ticks, unit
}

// memoryAmount turns a MEM% tick into MB or GB using LegacyKiloDivisor.
func memoryAmount(percent float64, totalMem uint64, gb bool) float64 {
	amount := percent * float64(totalMem) / 1024 / LegacyKiloDivisor
	if gb {
		amount /= 1024
	}
	return amount / 100
}

func formatAmount(amount float64, unit string) string {
	if unit == memUnitGB {
		return strconv.FormatFloat(amount, 'f', 2, 64)
	}
	return strconv.FormatFloat(amount, 'f', 1, 64)
}

func multipleOf(v, m float64) bool {
	r := math.Mod(math.Abs(v), m)
	eps := 1e-9 * math.Max(1, math.Abs(v))
	return r <= eps || m-r <= eps
}
