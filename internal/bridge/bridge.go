// Package bridge drives the external python parser. A Bridge is built
// once — locating the interpreter, materializing the bundled script and
// schema, and running a self-check — then serves any number of Parse
// calls, each of which spawns one parser subprocess and decodes the
// binary AST it writes.
package bridge

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/corey/pyast/internal/adapters/protoschema"
	"github.com/corey/pyast/internal/domain/ast"
	"github.com/corey/pyast/internal/ports"
	"github.com/corey/pyast/internal/pyruntime"
	"github.com/corey/pyast/internal/subproc"
)

// Bridge orchestrates parse calls against the external parser.
// All fields are read-only after New, so a single Bridge is safe for
// concurrent Parse calls; isolation between calls comes from each one
// using a fresh unique output path.
type Bridge struct {
	interpreter string
	scriptPath  string
	schemaPath  string
	tempDir     string
	codec       *protoschema.Codec
	run         ports.Runner
}

type options struct {
	interpreter string
	home        string
	tempDir     string
	run         ports.Runner
	locate      ports.Locator
}

// Option customizes construction.
type Option func(*options)

// WithInterpreter bypasses PATH discovery and uses the given python3
// binary. The self-check still runs against it.
func WithInterpreter(path string) Option {
	return func(o *options) { o.interpreter = path }
}

// WithHome overrides the ~/.pyast home directory.
func WithHome(dir string) Option {
	return func(o *options) { o.home = dir }
}

// WithTempDir overrides where per-call output files are created.
// Defaults to os.TempDir().
func WithTempDir(dir string) Option {
	return func(o *options) { o.tempDir = dir }
}

// WithRunner substitutes the process runner. Test seam.
func WithRunner(run ports.Runner) Option {
	return func(o *options) { o.run = run }
}

// WithLocator substitutes interpreter discovery. Test seam.
func WithLocator(locate ports.Locator) Option {
	return func(o *options) { o.locate = locate }
}

// New builds a Bridge or reports why the parser cannot be used.
// Failures carry a reason — ErrRuntimeNotFound or ErrSelfCheckFailed —
// and both match ErrUnavailable.
func New(ctx context.Context, opts ...Option) (*Bridge, error) {
	o := options{
		run:    subproc.Run,
		locate: pyruntime.Locate,
	}
	for _, opt := range opts {
		opt(&o)
	}

	interpreter := o.interpreter
	if interpreter == "" {
		path, ok := o.locate()
		if !ok {
			return nil, ErrRuntimeNotFound
		}
		interpreter = path
	}

	home := o.home
	if home == "" {
		var err error
		if home, err = DefaultHome(); err != nil {
			return nil, fmt.Errorf("resolve pyast home: %w", err)
		}
	}
	paths := NewPaths(home)
	if err := Materialize(paths); err != nil {
		return nil, err
	}

	if err := o.run(ctx, interpreter, paths.Script); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSelfCheckFailed, err)
	}

	codec, err := protoschema.Load(ctx, paths.Schema)
	if err != nil {
		return nil, err
	}

	tempDir := o.tempDir
	if tempDir == "" {
		tempDir = os.TempDir()
	}

	return &Bridge{
		interpreter: interpreter,
		scriptPath:  paths.Script,
		schemaPath:  paths.Schema,
		tempDir:     tempDir,
		codec:       codec,
		run:         o.run,
	}, nil
}

// NewAvailable is the collapsed form of New: a Bridge or ok=false, with
// the reason discarded. Callers that would only log the reason should
// use New.
func NewAvailable(ctx context.Context, opts ...Option) (*Bridge, bool) {
	b, err := New(ctx, opts...)
	if err != nil {
		return nil, false
	}
	return b, true
}

// Interpreter returns the resolved python3 path.
func (b *Bridge) Interpreter() string { return b.interpreter }

// Parse runs one parser subprocess over sourcePath and returns the
// decoded tree. Errors are never retried; one failed invocation is
// terminal for the call. A non-zero parser exit surfaces as a
// *subproc.Error carrying the parser's diagnostic text.
func (b *Bridge) Parse(ctx context.Context, sourcePath string) (*ast.Node, error) {
	outPath, err := b.tempPath()
	if err != nil {
		return nil, err
	}

	if err := b.run(ctx, b.interpreter, b.scriptPath, b.schemaPath, sourcePath, outPath); err != nil {
		// The script writes the output file only after a successful
		// parse, but don't trust that across versions.
		_ = os.Remove(outPath)
		return nil, err
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoOutput, err)
	}
	if err := os.Remove(outPath); err != nil {
		return nil, fmt.Errorf("remove parser output: %w", err)
	}

	return b.codec.Decode(data)
}

// tempPath computes a fresh collision-free output path. The file itself
// is created by the parser subprocess, not here.
func (b *Bridge) tempPath() (string, error) {
	var token [12]byte
	if _, err := rand.Read(token[:]); err != nil {
		return "", fmt.Errorf("generate output token: %w", err)
	}
	return filepath.Join(b.tempDir, "pyast-"+hex.EncodeToString(token[:])+".bin"), nil
}
