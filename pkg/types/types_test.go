package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCPUUserTimeEmptySeries(t *testing.T) {
	var series SampleSeries
	_, err := series.CPUUserTime()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoSamples))
}

func TestCPUUserTimeUsesFinalSample(t *testing.T) {
	series := SampleSeries{
		{CPUTimes: CPUTimes{User: 0.5, System: 0.1}},
		{CPUTimes: CPUTimes{User: 1.25, System: 0.2}},
	}
	got, err := series.CPUUserTime()
	require.NoError(t, err)
	assert.Equal(t, 1.25, got)
}

func TestSeriesColumnsKeepOrder(t *testing.T) {
	series := SampleSeries{
		{CPUPercent: 10, MemPercent: 1.5, Memory: MemoryInfo{RSSBytes: 100}},
		{CPUPercent: 250, MemPercent: 2.5, Memory: MemoryInfo{RSSBytes: 300}},
		{CPUPercent: 90, MemPercent: 2.0, Memory: MemoryInfo{RSSBytes: 200}},
	}
	assert.Equal(t, 3, series.Len())
	assert.Equal(t, []float64{10, 250, 90}, series.CPUPercents())
	assert.Equal(t, []float64{1.5, 2.5, 2.0}, series.MemPercents())
	assert.Equal(t, uint64(300), series.PeakRSS())
}
