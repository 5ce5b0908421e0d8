//go:build unix

package launcher

import (
	"context"
	"math"
	"os/exec"
	"strings"
	"testing"
	"time"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitExited(t *testing.T, target Target) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !target.Exited() {
		if time.Now().After(deadline) {
			t.Fatalf("pid %d never reported exit", target.PID())
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestSpawnReapsChildAndKeepsExitCode(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	child, err := Spawn("exit 3", log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = child.Close() })

	assert.Greater(t, child.PID(), 0)
	assert.Equal(t, "exit 3", child.Label())

	waitExited(t, child)
	assert.True(t, child.Exited(), "exit state must stick once reaped")
	assert.Equal(t, 3, child.ExitCode())
}

func TestSpawnRunningChildIsNotExited(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	child, err := Spawn("sleep 1", log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = child.Close() })

	assert.False(t, child.Exited())
	assert.Equal(t, -1, child.ExitCode())
	waitExited(t, child)
	assert.Equal(t, 0, child.ExitCode())
}

func TestSpawnRejectsEmptyCommand(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	_, err := Spawn("   ", log)
	assert.Error(t, err)
}

func TestAttachFollowsForeignProcess(t *testing.T) {
	cmd := exec.Command("sleep", "0.3")
	require.NoError(t, cmd.Start())
	t.Cleanup(func() { _ = cmd.Wait() })

	target, err := Attach(context.Background(), cmd.Process.Pid)
	require.NoError(t, err)
	assert.Equal(t, cmd.Process.Pid, target.PID())
	assert.True(t, strings.Contains(target.Label(), "sleep"), "label %q", target.Label())
	assert.False(t, target.Exited())

	// Nobody reaps the child while we poll, so exit is only visible as a zombie.
	waitExited(t, target)
	assert.NoError(t, target.Close())
}

func TestAttachRejectsMissingPID(t *testing.T) {
	_, err := Attach(context.Background(), math.MaxInt32)
	assert.Error(t, err)

	_, err = Attach(context.Background(), 0)
	assert.Error(t, err)
}
