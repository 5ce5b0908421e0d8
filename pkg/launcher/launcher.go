// Package launcher produces the single process a monitoring run watches:
// either a child spawned from a shell command or an existing PID.
package launcher

// shell runs --cmd strings, matching what a subprocess launched with a shell would use.
var shell = "/bin/sh"

// Target is the process being monitored.
type Target interface {
	// PID is the monitored process id.
	PID() int
	// Label is the human readable command shown in the chart title.
	Label() string
	// Exited reports, without blocking, whether the process is no longer observable.
	Exited() bool
	// Close releases any handle held on the process.
	Close() error
}
