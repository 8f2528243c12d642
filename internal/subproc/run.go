// Package subproc runs the external parser process and classifies its
// exit. One contract: spawn, wait for full termination, capture combined
// stdout/stderr, succeed on exit 0 and fail with the captured text on
// anything else. Blocking by design — the parse protocol has no
// streaming or partial-result case.
package subproc

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Error is a failed invocation: the process could not be spawned, was
// killed by context cancellation, or exited non-zero. Output holds the
// combined stdout/stderr captured before termination, which for the
// parser script is the diagnostic to show the user verbatim.
type Error struct {
	Cmd    string
	Output string
	Err    error
}

func (e *Error) Error() string {
	if e.Output == "" {
		return fmt.Sprintf("%s: %v", e.Cmd, e.Err)
	}
	return fmt.Sprintf("%s: %v\n%s", e.Cmd, e.Err, e.Output)
}

func (e *Error) Unwrap() error { return e.Err }

// Run executes exe with args and blocks until the child terminates.
// Interleaving between the child's stdout and stderr is whatever the OS
// delivered, but both are captured in full. Context cancellation kills
// the child and surfaces ctx.Err() in the returned *Error.
func Run(ctx context.Context, exe string, args ...string) error {
	cmd := exec.CommandContext(ctx, exe, args...)

	output, err := cmd.CombinedOutput()
	if err != nil {
		// Prefer the cancellation cause over the generic "signal: killed"
		// the kill produces.
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		}
		return &Error{
			Cmd:    strings.Join(append([]string{exe}, args...), " "),
			Output: strings.TrimSpace(string(output)),
			Err:    err,
		}
	}
	return nil
}
