package sampler

import (
	"context"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/process"
)

// Source is the per-process stats surface a gopsutil *process.Process provides.
type Source interface {
	NumThreadsWithContext(ctx context.Context) (int32, error)
	PercentWithContext(ctx context.Context, interval time.Duration) (float64, error)
	TimesWithContext(ctx context.Context) (*cpu.TimesStat, error)
	MemoryPercentWithContext(ctx context.Context) (float32, error)
	MemoryInfoWithContext(ctx context.Context) (*process.MemoryInfoStat, error)
	StatusWithContext(ctx context.Context) ([]string, error)
}

// openSource allows tests to replace the gopsutil handle.
var openSource = func(ctx context.Context, pid int) (Source, error) {
	return process.NewProcessWithContext(ctx, int32(pid))
}
