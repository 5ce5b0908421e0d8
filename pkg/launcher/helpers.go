package launcher

import (
	"context"
	"fmt"
	"strings"
)

// procInfo is the subset of a gopsutil process used to describe an attached PID.
type procInfo interface {
	CmdlineWithContext(ctx context.Context) (string, error)
	NameWithContext(ctx context.Context) (string, error)
}

// labelForPID prefers the full command line, then the process name, then pid-N.
func labelForPID(ctx context.Context, p procInfo, pid int) string {
	if p != nil {
		if cmdline, err := p.CmdlineWithContext(ctx); err == nil {
			if cmdline = strings.TrimSpace(cmdline); cmdline != "" {
				return cmdline
			}
		}
		if name, err := p.NameWithContext(ctx); err == nil {
			if name = strings.TrimSpace(name); name != "" {
				return name
			}
		}
	}
	return fmt.Sprintf("pid-%d", pid)
}
