package project

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

var (
	cachedRoot string
	cachedErr  error
	rootOnce   sync.Once
)

// FindRoot searches upward from start (or CWD if empty) for a directory that
// indicates a project root. A directory is considered a project root if
// either a protodeck.yaml file exists there or a .protodeck directory exists.
// Returns os.ErrNotExist if no project root is found.
func FindRoot(start string) (string, error) {
	var err error
	if start == "" {
		start, err = os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working dir: %w", err)
		}
	}
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path %s: %w", start, err)
	}

	for {
		cfgPath := filepath.Join(dir, ConfigFile)
		if _, err := os.Stat(cfgPath); err == nil {
			return dir, nil
		}
		statePath := filepath.Join(dir, StateDir)
		if fi, err := os.Stat(statePath); err == nil && fi.IsDir() {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

// Root returns the project root by searching from the current working
// directory. Convenience wrapper around FindRoot.
func Root() (string, error) {
	// memoize filesystem walk
	rootOnce.Do(func() {
		root, err := FindRoot("")
		if err == nil {
			cachedRoot = root
		}
		cachedErr = err
	})
	if cachedRoot != "" {
		return cachedRoot, nil
	}
	return "", cachedErr
}

// RootOrCwd returns the absolute path to the project root if found,
// otherwise returns the current working directory as a fallback.
func RootOrCwd() string {
	if root, err := Root(); err == nil {
		return root
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

// ResetRootCache clears the cached project root.
// This is primarily for testing purposes.
func ResetRootCache() {
	cachedRoot = ""
	cachedErr = nil
	rootOnce = sync.Once{}
}

// StatePath returns a path under the project state directory (.protodeck).
func StatePath(parts ...string) string {
	elems := append([]string{RootOrCwd(), StateDir}, parts...)
	return filepath.Join(elems...)
}

// EnsureStateDir ensures the project state directory exists. It is safe to
// call repeatedly.
func EnsureStateDir() error {
	dir := StatePath()
	if err := os.MkdirAll(dir, DirPerm); err != nil {
		return fmt.Errorf("creating state dir %s: %w", dir, err)
	}
	return nil
}
