package bridge

import (
	"os"
	"path/filepath"

	"github.com/corey/pyast/pyparser"
)

// Paths holds the resolved filesystem layout under the pyast home
// directory. All fields are pre-computed strings.
type Paths struct {
	Root       string // ~/.pyast/
	RuntimeDir string // ~/.pyast/runtime/
	Script     string // ~/.pyast/runtime/parse_ast.py
	Schema     string // ~/.pyast/runtime/ast.proto
}

// NewPaths constructs all resolved paths from a home directory.
func NewPaths(home string) *Paths {
	runtimeDir := filepath.Join(home, "runtime")
	return &Paths{
		Root:       home,
		RuntimeDir: runtimeDir,
		Script:     filepath.Join(runtimeDir, pyparser.ScriptName),
		Schema:     filepath.Join(runtimeDir, pyparser.SchemaName),
	}
}

// DefaultHome returns ~/.pyast.
func DefaultHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".pyast"), nil
}

// EnsureDirs creates the directory tree. Idempotent.
func (p *Paths) EnsureDirs() error {
	return os.MkdirAll(p.RuntimeDir, 0o755)
}
