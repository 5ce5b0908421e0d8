package memory

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v4/mem"
)

// virtualMemory allows tests to stub the system memory lookup.
var virtualMemory = mem.VirtualMemoryWithContext

// TotalMemoryBytes returns the total system memory in bytes.
// TODO: future scenario, consider container memory limits
func TotalMemoryBytes(ctx context.Context) (uint64, error) {
	vm, err := virtualMemory(ctx)
	if err != nil {
		return 0, fmt.Errorf("reading virtual memory: %w", err)
	}
	if vm == nil || vm.Total == 0 {
		return 0, fmt.Errorf("total memory unavailable")
	}
	return vm.Total, nil
}
