package types

import "errors"

// DefaultInterval is the polling/measurement window in seconds used when none is given.
const DefaultInterval = 0.01

// ErrNoSamples is returned when a run finished before a single sample was recorded.
var ErrNoSamples = errors.New("no samples collected")

// CPUTimes holds the cumulative CPU seconds a process spent in user and kernel mode.
type CPUTimes struct {
	User   float64
	System float64
}

// MemoryInfo describes the resident and virtual footprint of a process.
type MemoryInfo struct {
	RSSBytes uint64
	VMSBytes uint64
}

// Sample is one snapshot of a process's resource usage.
type Sample struct {
	Threads    int32
	CPUPercent float64 // since the previous sample, 100 == one core
	CPUTimes   CPUTimes
	MemPercent float64 // of total system memory
	Memory     MemoryInfo
}

// SampleSeries is the ordered sample history of one run; index order is time order.
type SampleSeries []Sample

// Len returns the number of recorded samples.
func (s SampleSeries) Len() int { return len(s) }

// CPUPercents returns the CPU% column.
func (s SampleSeries) CPUPercents() []float64 {
	out := make([]float64, len(s))
	for i, sample := range s {
		out[i] = sample.CPUPercent
	}
	return out
}

// MemPercents returns the MEM% column.
func (s SampleSeries) MemPercents() []float64 {
	out := make([]float64, len(s))
	for i, sample := range s {
		out[i] = sample.MemPercent
	}
	return out
}

// CPUUserTime returns the cumulative user CPU seconds recorded by the final sample.
func (s SampleSeries) CPUUserTime() (float64, error) {
	if len(s) == 0 {
		return 0, ErrNoSamples
	}
	return s[len(s)-1].CPUTimes.User, nil
}

// PeakRSS returns the largest resident set size seen across the series.
func (s SampleSeries) PeakRSS() uint64 {
	var peak uint64
	for _, sample := range s {
		if sample.Memory.RSSBytes > peak {
			peak = sample.Memory.RSSBytes
		}
	}
	return peak
}
