// Package pyruntime discovers a usable python3 interpreter on the host.
// Discovery is a plain first-match PATH walk plus one fallback directory:
// IDE-launched processes (especially on macOS) often run with a truncated
// PATH that misses /usr/local/bin, where python installers put the binary.
package pyruntime

import (
	"os"
	"path/filepath"
)

// Binary is the interpreter name probed for in each candidate directory.
const Binary = "python3"

// fallbackDir is appended after PATH entries.
const fallbackDir = "/usr/local/bin"

// Locate returns the absolute path of the first executable python3 found
// on PATH (then the fallback directory), or ok=false if none qualifies.
// A missing PATH variable means no search at all, not a fallback-only
// search. Pure filesystem probing, no side effects.
func Locate() (string, bool) {
	pathEnv, ok := os.LookupEnv("PATH")
	if !ok {
		return "", false
	}
	return locateIn(pathEnv, fallbackDir, Binary)
}

func locateIn(pathEnv, fallback, name string) (string, bool) {
	dirs := filepath.SplitList(pathEnv)
	dirs = append(dirs, fallback)

	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, name)
		if isExecutable(candidate) {
			return candidate, true
		}
	}
	return "", false
}

// isExecutable reports whether path is a regular file with any execute
// bit set.
func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	return info.Mode().Perm()&0o111 != 0
}
