package bridge

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"

	"github.com/corey/pyast/pyparser"
)

// Materialize writes the embedded parser script and schema into the
// runtime directory so they exist as real files for the subprocess.
// Files already on disk with matching content are left alone; a stale
// copy from a previous build is overwritten.
func Materialize(p *Paths) error {
	if err := p.EnsureDirs(); err != nil {
		return fmt.Errorf("create runtime dir: %w", err)
	}
	files := map[string]string{
		pyparser.ScriptName: p.Script,
		pyparser.SchemaName: p.Schema,
	}
	for name, dst := range files {
		if err := syncFile(pyparser.FS, name, dst); err != nil {
			return fmt.Errorf("materialize %s: %w", name, err)
		}
	}
	return nil
}

func syncFile(src fs.FS, name, dst string) error {
	want, err := fs.ReadFile(src, name)
	if err != nil {
		return err
	}
	if have, err := os.ReadFile(dst); err == nil && bytes.Equal(have, want) {
		return nil
	}
	return os.WriteFile(dst, want, 0o644)
}
