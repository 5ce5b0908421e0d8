package report

import (
	"math"
	"reflect"
	"strconv"
	"testing"
	"time"
)

const sixteenGiB = 16 << 30

func TestTimeAxisSpacingIsTwiceInterval(t *testing.T) {
	for _, interval := range []time.Duration{10 * time.Millisecond, 100 * time.Millisecond, 1500 * time.Millisecond} {
		axis := TimeAxis(30, interval)
		if len(axis) < 2 {
			t.Fatalf("interval %v: expected several points, got %d", interval, len(axis))
		}
		if axis[0] != 0 {
			t.Fatalf("interval %v: axis must start at 0, got %v", interval, axis[0])
		}
		want := 2 * interval.Seconds()
		for i := 1; i < len(axis); i++ {
			if gap := axis[i] - axis[i-1]; math.Abs(gap-want) > 1e-9 {
				t.Fatalf("interval %v: gap %d is %v, want %v", interval, i, gap, want)
			}
		}
		if last := axis[len(axis)-1]; last >= 30 {
			t.Fatalf("interval %v: axis must stop below period, last=%v", interval, last)
		}
	}
}

func TestTimeAxisLength(t *testing.T) {
	cases := []struct {
		name     string
		period   float64
		interval time.Duration
		expected int
	}{
		{"exact", 1.0, 100 * time.Millisecond, 5},
		{"partialStep", 0.7, 10 * time.Millisecond, 35},
		{"belowOneStep", 0.05, 100 * time.Millisecond, 1},
		{"zeroPeriod", 0, 100 * time.Millisecond, 0},
		{"zeroInterval", 1, 0, 0},
	}
	for _, tc := range cases {
		if got := len(TimeAxis(tc.period, tc.interval)); got != tc.expected {
			t.Fatalf("%s: expected %d points, got %d", tc.name, tc.expected, got)
		}
	}
}

func TestLineTruncatesToShorter(t *testing.T) {
	axis := []float64{0, 0.2, 0.4, 0.6, 0.8}

	x, y := Line(axis, []float64{10, 20})
	if !reflect.DeepEqual(x, []float64{0, 0.2, 0.4}) || !reflect.DeepEqual(y, []float64{0, 10, 20}) {
		t.Fatalf("short series: got x=%v y=%v", x, y)
	}

	x, y = Line(axis, []float64{1, 2, 3, 4, 5, 6, 7})
	if len(x) != len(axis) || len(y) != len(axis) {
		t.Fatalf("long series: expected %d points, got x=%d y=%d", len(axis), len(x), len(y))
	}
	if y[0] != 0 || y[1] != 1 {
		t.Fatalf("leading zero missing: %v", y)
	}

	x, y = Line(nil, []float64{1, 2})
	if len(x) != 0 || len(y) != 0 {
		t.Fatalf("empty axis should give an empty line, got x=%v y=%v", x, y)
	}
}

func TestWithLeadingZeroDoesNotAlias(t *testing.T) {
	values := []float64{5, 6}
	out := WithLeadingZero(values)
	out[1] = 99
	if values[0] != 5 {
		t.Fatalf("input modified: %v", values)
	}
}

func TestThreadTicks(t *testing.T) {
	cases := []struct {
		name     string
		ticks    []float64
		expected []Tick
	}{
		{"bands", []float64{0, 100, 200, 300, 400}, []Tick{{0, "0"}, {100, "1"}, {200, "2"}, {300, "3"}, {400, "4"}}},
		{"halfSteps", []float64{0, 50, 100, 150, 200, 250}, []Tick{{0, "0"}, {100, "1"}, {200, "2"}}},
		{"belowOneCore", []float64{0, 20, 40, 60, 80}, []Tick{{0, "0"}}},
		{"oneCore", []float64{0, 50, 100}, []Tick{{0, "0"}, {100, "1"}}},
		{"coarseSteps", []float64{0, 200, 400}, []Tick{{0, "0"}, {200, "1"}, {400, "2"}}},
		{"offsetStart", []float64{100, 150, 200}, []Tick{{100, "0"}, {200, "1"}}},
		{"floatNoise", []float64{0, 100.00000000000001, 199.99999999999997, 300}, []Tick{{0, "0"}, {100.00000000000001, "1"}, {199.99999999999997, "2"}, {300, "3"}}},
		{"empty", nil, nil},
	}
	for _, tc := range cases {
		got := ThreadTicks(tc.ticks)
		if !reflect.DeepEqual(got, tc.expected) {
			t.Fatalf("%s: expected %+v, got %+v", tc.name, tc.expected, got)
		}
	}
}

func TestThreadTicksLabelsIncrease(t *testing.T) {
	var ticks []float64
	for v := 0.0; v <= 3200; v += 50 {
		ticks = append(ticks, v)
	}
	got := ThreadTicks(ticks)
	for i, tick := range got {
		if math.Mod(tick.Value, 100) != 0 {
			t.Fatalf("tick %v is not a multiple of 100", tick.Value)
		}
		if tick.Label != strconv.Itoa(i) {
			t.Fatalf("expected label %d, got %s", i, tick.Label)
		}
	}
}

func TestMemoryTicksStaysInMB(t *testing.T) {
	ticks, unit := MemoryTicks([]float64{0, 2, 4, 6}, sixteenGiB)
	if unit != "MB" {
		t.Fatalf("expected MB, got %s", unit)
	}
	expected := []Tick{{0, "0.0"}, {2, "278.7"}, {4, "557.4"}, {6, "836.1"}}
	if !reflect.DeepEqual(ticks, expected) {
		t.Fatalf("expected %+v, got %+v", expected, ticks)
	}
}

func TestMemoryTicksSwitchesToGB(t *testing.T) {
	ticks, unit := MemoryTicks([]float64{0, 5, 10, 15}, sixteenGiB)
	if unit != "GB" {
		t.Fatalf("expected GB, got %s", unit)
	}
	// 5% stays below 1 GB but is still shown in GB once any tick crosses.
	expected := []Tick{{0, "0.00"}, {5, "0.68"}, {10, "1.36"}, {15, "2.04"}}
	if !reflect.DeepEqual(ticks, expected) {
		t.Fatalf("expected %+v, got %+v", expected, ticks)
	}
}

func TestMemoryAmountUsesLegacyDivisor(t *testing.T) {
	got := memoryAmount(100, 1024*LegacyKiloDivisor*1024, true)
	if math.Abs(got-1) > 1e-12 {
		t.Fatalf("expected exactly 1 GB at the divisor boundary, got %v", got)
	}
	if got := memoryAmount(100, 1024*1024*1024, true); got >= 1 {
		t.Fatalf("1 GiB must read below 1 with the 1204 divisor, got %v", got)
	}
}

func TestAxesAreDeterministic(t *testing.T) {
	cpuTicks := []float64{0, 100, 200, 300}
	memTicks := []float64{0, 0.5, 1, 1.5}
	a, _ := MemoryTicks(memTicks, sixteenGiB)
	b, _ := MemoryTicks(memTicks, sixteenGiB)
	if !reflect.DeepEqual(a, b) || !reflect.DeepEqual(ThreadTicks(cpuTicks), ThreadTicks(cpuTicks)) {
		t.Fatalf("tick derivation must be deterministic")
	}
}
