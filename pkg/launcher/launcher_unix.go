//go:build unix

package launcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"slices"
	"strings"

	"github.com/shirou/gopsutil/v4/process"
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// Spawned is a child started from a shell command. It is reaped by Exited.
type Spawned struct {
	cmd     *exec.Cmd
	cmdline string
	log     logrus.FieldLogger

	exited bool
	status unix.WaitStatus
}

// Spawn starts cmdline through the shell with the caller's stdio attached.
func Spawn(cmdline string, log logrus.FieldLogger) (*Spawned, error) {
	if strings.TrimSpace(cmdline) == "" {
		return nil, errors.New("empty command")
	}
	cmd := exec.Command(shell, "-c", cmdline)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting %q: %w", cmdline, err)
	}
	log.WithField("pid", cmd.Process.Pid).Debug("spawned child")
	return &Spawned{cmd: cmd, cmdline: cmdline, log: log}, nil
}

func (s *Spawned) PID() int { return s.cmd.Process.Pid }

func (s *Spawned) Label() string { return s.cmdline }

// Exited polls the child with WNOHANG and reaps it once it has terminated.
func (s *Spawned) Exited() bool {
	if s.exited {
		return true
	}
	var ws unix.WaitStatus
	pid, err := unix.Wait4(s.PID(), &ws, unix.WNOHANG, nil)
	switch {
	case errors.Is(err, unix.EINTR):
		return false
	case err != nil:
		// ECHILD: nothing left to reap.
		s.log.WithError(err).Debug("wait4 failed, treating child as exited")
		s.exited = true
		return true
	case pid == 0:
		return false
	}
	s.exited = true
	s.status = ws
	switch {
	case ws.Exited():
		s.log.WithField("pid", pid).Debugf("child exited with status %d", ws.ExitStatus())
	case ws.Signaled():
		s.log.WithField("pid", pid).Debugf("child killed by %v", ws.Signal())
	}
	return true
}

// ExitCode is the child's exit status, or -1 while running or when killed by a signal.
func (s *Spawned) ExitCode() int {
	if !s.exited || !s.status.Exited() {
		return -1
	}
	return s.status.ExitStatus()
}

// Close releases the process handle; the child itself is left alone.
func (s *Spawned) Close() error {
	return s.cmd.Process.Release()
}

// Attached is a pre-existing process identified by PID.
type Attached struct {
	pid   int
	label string
	proc  *process.Process
}

// Attach resolves an existing PID. Nothing is spawned.
func Attach(ctx context.Context, pid int) (*Attached, error) {
	if pid <= 0 {
		return nil, fmt.Errorf("invalid pid %d", pid)
	}
	if err := unix.Kill(pid, 0); errors.Is(err, unix.ESRCH) {
		return nil, fmt.Errorf("pid %d: %w", pid, err)
	}
	proc, err := process.NewProcessWithContext(ctx, int32(pid))
	if err != nil {
		return nil, fmt.Errorf("looking up pid %d: %w", pid, err)
	}
	return &Attached{pid: pid, label: labelForPID(ctx, proc, pid), proc: proc}, nil
}

func (a *Attached) PID() int { return a.pid }

func (a *Attached) Label() string { return a.label }

// Exited is true once the PID is gone, reused by another process, or a zombie.
func (a *Attached) Exited() bool {
	ctx := context.Background()
	running, err := a.proc.IsRunningWithContext(ctx)
	if err != nil || !running {
		return true
	}
	status, err := a.proc.StatusWithContext(ctx)
	if err != nil {
		return true
	}
	return slices.Contains(status, process.Zombie)
}

func (a *Attached) Close() error { return nil }
