// Package pathutil locates the project root and prepares log directories.
package pathutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultMarker is the file whose presence identifies a project root
const DefaultMarker = "go.mod"

// ErrProjectRootNotFound is returned when no ancestor of the start
// directory contains the marker file.
var ErrProjectRootNotFound = errors.New("project root not found")

// FindProjectRoot walks from startDir towards the filesystem root and
// returns the first directory containing marker. An empty startDir means
// the working directory, an empty marker means DefaultMarker.
func FindProjectRoot(startDir, marker string) (string, error) {
	if marker == "" {
		marker = DefaultMarker
	}
	if startDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolve working directory: %w", err)
		}
		startDir = wd
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", startDir, err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w: no %s above %s", ErrProjectRootNotFound, marker, startDir)
		}
		dir = parent
	}
}

// EnsureDir creates path and any missing parents. It is a no-op when the
// directory already exists.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("create directory %s: %w", path, err)
	}
	return nil
}
