package subproc

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeScript drops an executable shell script into a temp dir.
func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fake.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755))
	return path
}

func TestRun_ZeroExit(t *testing.T) {
	script := writeScript(t, "echo ignored\nexit 0\n")
	err := Run(context.Background(), script)
	assert.NoError(t, err)
}

func TestRun_NonZeroExitCapturesCombinedOutput(t *testing.T) {
	script := writeScript(t, "echo to-stdout\necho to-stderr >&2\nexit 3\n")
	err := Run(context.Background(), script)
	require.Error(t, err)

	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, perr.Output, "to-stdout")
	assert.Contains(t, perr.Output, "to-stderr")
	assert.Contains(t, perr.Error(), "to-stderr")
}

func TestRun_PassesArguments(t *testing.T) {
	// The script fails unless it sees the expected operands, so a pass
	// here proves the argv ordering.
	script := writeScript(t, `[ "$1" = "alpha" ] && [ "$2" = "beta" ] && exit 0
exit 1
`)
	assert.NoError(t, Run(context.Background(), script, "alpha", "beta"))
	assert.Error(t, Run(context.Background(), script, "beta", "alpha"))
}

func TestRun_SpawnFailure(t *testing.T) {
	err := Run(context.Background(), filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)

	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Empty(t, perr.Output)
}

func TestRun_ContextTimeoutKillsChild(t *testing.T) {
	script := writeScript(t, "sleep 10\n")
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := Run(ctx, script)
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded), "got %v", err)
	assert.Less(t, elapsed, 5*time.Second, "child was not killed on deadline")
}
