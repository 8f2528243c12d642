package bridge

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corey/pyast/internal/pyruntime"
	"github.com/corey/pyast/internal/subproc"
)

// newRealBridge builds a bridge against the host python3, skipping the
// test when none is installed.
func newRealBridge(t *testing.T) (*Bridge, string) {
	t.Helper()
	if _, ok := pyruntime.Locate(); !ok {
		t.Skip("python3 not installed")
	}
	tempDir := t.TempDir()
	b, err := New(context.Background(),
		WithHome(t.TempDir()),
		WithTempDir(tempDir),
	)
	require.NoError(t, err)
	return b, tempDir
}

func TestE2E_EmptyStatement(t *testing.T) {
	b, tempDir := newRealBridge(t)

	root, err := b.Parse(context.Background(), pySource(t, "pass\n"))
	require.NoError(t, err)

	assert.Equal(t, "Module", root.Kind)
	require.Len(t, root.Children, 1)
	pass := root.Children[0]
	assert.Equal(t, "Pass", pass.Kind)
	assert.Equal(t, "body", pass.Edge)
	assert.Equal(t, uint32(1), pass.Line)
	assert.Equal(t, uint32(0), pass.Col)
	assertNoArtifacts(t, tempDir)
}

func TestE2E_Assignment(t *testing.T) {
	b, tempDir := newRealBridge(t)

	root, err := b.Parse(context.Background(), pySource(t, "x = 1\n"))
	require.NoError(t, err)

	require.Len(t, root.Children, 1)
	assign := root.Children[0]
	assert.Equal(t, "Assign", assign.Kind)

	var target, value *struct{ kind, attr string }
	for _, c := range assign.Children {
		switch c.Edge {
		case "targets":
			target = &struct{ kind, attr string }{c.Kind, c.Attr("id")}
		case "value":
			value = &struct{ kind, attr string }{c.Kind, c.Attr("value")}
		}
	}
	require.NotNil(t, target)
	require.NotNil(t, value)
	// Scalars are stringified with python repr: strings keep quotes.
	assert.Equal(t, "Name", target.kind)
	assert.Equal(t, "'x'", target.attr)
	assert.Equal(t, "Constant", value.kind)
	assert.Equal(t, "1", value.attr)
	assertNoArtifacts(t, tempDir)
}

func TestE2E_SyntaxError(t *testing.T) {
	b, tempDir := newRealBridge(t)

	_, err := b.Parse(context.Background(), pySource(t, "def f(:\n"))
	require.Error(t, err)

	var perr *subproc.Error
	require.ErrorAs(t, err, &perr)
	assert.NotEmpty(t, perr.Output)
	assertNoArtifacts(t, tempDir)
}

func TestE2E_SelfCheck(t *testing.T) {
	if _, ok := pyruntime.Locate(); !ok {
		t.Skip("python3 not installed")
	}
	b, ok := NewAvailable(context.Background(), WithHome(t.TempDir()))
	require.True(t, ok)
	assert.NotEmpty(t, b.Interpreter())
}
