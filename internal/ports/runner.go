package ports

import "context"

// Runner executes an external process to completion. The concrete
// implementation (internal/subproc) captures combined output and returns
// a typed error on non-zero exit; tests substitute fakes.
type Runner func(ctx context.Context, exe string, args ...string) error

// Locator probes the host for the python3 interpreter. Returns the
// resolved absolute path, or ok=false when none is installed. The
// concrete implementation lives in internal/pyruntime.
type Locator func() (path string, ok bool)
