// Package sampler polls one process until it exits and records a SampleSeries.
package sampler

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/shirou/gopsutil/v4/process"
	"github.com/sirupsen/logrus"

	"github.com/srodi/monitor2plot/pkg/types"
)

var errExitedDuringRead = errors.New("process exited during measurement")

// Target is the part of a launcher target the sampling loop needs.
type Target interface {
	PID() int
	Exited() bool
}

// Reading is the outcome of one poll: a recorded Sample, or a skip with its reason.
type Reading struct {
	Sample  types.Sample
	Skipped bool
	Reason  error
}

func skip(reason error) Reading {
	return Reading{Skipped: true, Reason: reason}
}

// Sampler reads process stats every interval.
type Sampler struct {
	interval time.Duration
	log      logrus.FieldLogger

	// wait runs after every recorded sample; tests replace it.
	wait func(ctx context.Context, d time.Duration) error
}

// New returns a Sampler measuring CPU over interval.
func New(interval time.Duration, log logrus.FieldLogger) *Sampler {
	return &Sampler{interval: interval, log: log, wait: sleepContext}
}

// Interval is the CPU measurement window.
func (s *Sampler) Interval() time.Duration { return s.interval }

// Read takes one snapshot. The CPU percent call blocks for the whole interval.
// Any failed read, or a process found dead after the window, is a skip.
func (s *Sampler) Read(ctx context.Context, src Source) Reading {
	threads, err := src.NumThreadsWithContext(ctx)
	if err != nil {
		return skip(fmt.Errorf("reading thread count: %w", err))
	}
	cpuPercent, err := src.PercentWithContext(ctx, s.interval)
	if err != nil {
		return skip(fmt.Errorf("measuring cpu percent: %w", err))
	}
	times, err := src.TimesWithContext(ctx)
	if err != nil || times == nil {
		return skip(fmt.Errorf("reading cpu times: %w", orMissing(err)))
	}
	memPercent, err := src.MemoryPercentWithContext(ctx)
	if err != nil {
		return skip(fmt.Errorf("reading memory percent: %w", err))
	}
	memInfo, err := src.MemoryInfoWithContext(ctx)
	if err != nil || memInfo == nil {
		return skip(fmt.Errorf("reading memory info: %w", orMissing(err)))
	}
	status, err := src.StatusWithContext(ctx)
	if err != nil {
		return skip(fmt.Errorf("reading status: %w", err))
	}
	// A zombie still has readable stats, but it died inside the window, so
	// the numbers describe a finished process. A run whose command never
	// outlives one window records no samples at all.
	if slices.Contains(status, process.Zombie) {
		return skip(errExitedDuringRead)
	}

	return Reading{Sample: types.Sample{
		Threads:    threads,
		CPUPercent: cpuPercent,
		CPUTimes:   types.CPUTimes{User: times.User, System: times.System},
		MemPercent: float64(memPercent),
		Memory:     types.MemoryInfo{RSSBytes: memInfo.RSS, VMSBytes: memInfo.VMS},
	}}
}

// Run samples target until it exits. Each recorded sample is followed by one
// more interval of waiting, so recorded samples are 2 × interval apart.
// On context cancellation the samples gathered so far are returned with ctx.Err().
func (s *Sampler) Run(ctx context.Context, target Target) (types.SampleSeries, error) {
	var (
		series  types.SampleSeries
		src     Source
		skipped int
	)
	log := s.log.WithField("pid", target.PID())

	for !target.Exited() {
		if err := ctx.Err(); err != nil {
			log.WithField("samples", len(series)).Warn("sampling interrupted")
			return series, err
		}
		if src == nil {
			opened, err := openSource(ctx, target.PID())
			if err != nil {
				skipped++
				log.WithError(err).Debug("skipping sample")
				if err := s.wait(ctx, s.interval); err != nil {
					return series, err
				}
				continue
			}
			src = opened
		}

		reading := s.Read(ctx, src)
		if reading.Skipped {
			skipped++
			log.WithError(reading.Reason).Debug("skipping sample")
			continue
		}
		series = append(series, reading.Sample)

		if err := s.wait(ctx, s.interval); err != nil {
			log.WithField("samples", len(series)).Warn("sampling interrupted")
			return series, err
		}
	}

	log.WithFields(logrus.Fields{"samples": len(series), "skipped": skipped}).Debug("target exited")
	return series, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func orMissing(err error) error {
	if err != nil {
		return err
	}
	return errors.New("empty result")
}
