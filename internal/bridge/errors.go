package bridge

import (
	"errors"
	"fmt"
)

// ErrUnavailable matches both construction failures. Callers that only
// care about "can I parse at all" check errors.Is(err, ErrUnavailable);
// callers that want to guide the user toward a fix check the two
// specific causes below.
var ErrUnavailable = errors.New("python parser unavailable")

// ErrRuntimeNotFound: no python3 on PATH or in /usr/local/bin.
var ErrRuntimeNotFound = fmt.Errorf("%w: python3 not found", ErrUnavailable)

// ErrSelfCheckFailed: an interpreter exists but the parser script's
// no-argument self-check did not exit cleanly.
var ErrSelfCheckFailed = fmt.Errorf("%w: parser self-check failed", ErrUnavailable)

// ErrNoOutput: the parser exited zero but its output file is missing or
// unreadable. This is a contract violation by the parser script, not a
// parse failure, and is reported distinctly from one.
var ErrNoOutput = errors.New("parser exited cleanly but produced no output")
