package bridge

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaths(t *testing.T) {
	p := NewPaths("/home/u/.pyast")
	assert.Equal(t, "/home/u/.pyast", p.Root)
	assert.Equal(t, filepath.Join("/home/u/.pyast", "runtime"), p.RuntimeDir)
	assert.Equal(t, filepath.Join("/home/u/.pyast", "runtime", "parse_ast.py"), p.Script)
	assert.Equal(t, filepath.Join("/home/u/.pyast", "runtime", "ast.proto"), p.Schema)
}

func TestEnsureDirs(t *testing.T) {
	p := NewPaths(filepath.Join(t.TempDir(), ".pyast"))

	// First call creates directories.
	require.NoError(t, p.EnsureDirs())
	info, err := os.Stat(p.RuntimeDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Second call is idempotent — no error.
	require.NoError(t, p.EnsureDirs())
}

func TestMaterialize(t *testing.T) {
	p := NewPaths(filepath.Join(t.TempDir(), ".pyast"))
	require.NoError(t, Materialize(p))

	script, err := os.ReadFile(p.Script)
	require.NoError(t, err)
	assert.Contains(t, string(script), "def main")

	// Repeat is a no-op, and a stale copy gets overwritten.
	require.NoError(t, Materialize(p))
	require.NoError(t, os.WriteFile(p.Script, []byte("# stale"), 0o644))
	require.NoError(t, Materialize(p))

	script, err = os.ReadFile(p.Script)
	require.NoError(t, err)
	assert.NotContains(t, string(script), "stale")
}
