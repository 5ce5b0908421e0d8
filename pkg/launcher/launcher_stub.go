//go:build !unix

package launcher

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
)

var errUnsupported = errors.New("launcher requires a unix platform")

// Spawned is a placeholder on non-unix platforms.
type Spawned struct{}

// Spawn always fails on unsupported platforms.
func Spawn(cmdline string, log logrus.FieldLogger) (*Spawned, error) {
	return nil, errUnsupported
}

func (s *Spawned) PID() int      { return 0 }
func (s *Spawned) Label() string { return "" }
func (s *Spawned) Exited() bool  { return true }
func (s *Spawned) ExitCode() int { return -1 }
func (s *Spawned) Close() error  { return nil }

// Attached is a placeholder on non-unix platforms.
type Attached struct{}

// Attach always fails on unsupported platforms.
func Attach(ctx context.Context, pid int) (*Attached, error) {
	return nil, errUnsupported
}

func (a *Attached) PID() int      { return 0 }
func (a *Attached) Label() string { return "" }
func (a *Attached) Exited() bool  { return true }
func (a *Attached) Close() error  { return nil }
