package ports

// Watcher monitors a directory tree for Python source changes.
// The adapter (fsnotify) must filter out non-Python files and junk
// directories (.git, .venv, __pycache__, etc.) before invoking onChange.
// Only one Watch call should be active at a time.
type Watcher interface {
	// Watch starts monitoring root recursively. onChange is called with
	// the absolute path of each changed .py file, possibly from any
	// goroutine. Returns an error if the directory doesn't exist or
	// permissions are insufficient.
	Watch(root string, onChange func(path string)) error

	// Stop ends monitoring and releases all resources. After Stop
	// returns, no further onChange calls will fire. Safe to call
	// multiple times.
	Stop() error
}
