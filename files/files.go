package files

import (
	"fmt"
	"os"
	"path/filepath"

	apperrors "tabfile/errors"
)

// TypeSelector filters directory entries by kind.
type TypeSelector int

const (
	// TypeAll keeps every entry.
	TypeAll TypeSelector = 0
	// TypeFiles keeps non-directory entries only.
	TypeFiles TypeSelector = 1
	// TypeDirs keeps directories only.
	TypeDirs TypeSelector = 2
)

// validate rejects selectors outside the allowed set.
func (s TypeSelector) validate() error {
	switch s {
	case TypeAll, TypeFiles, TypeDirs:
		return nil
	}
	return apperrors.NewValidationError(fmt.Sprintf(
		"invalid type selector %d, allowed values are 0, 1 or 2", int(s)))
}

// matches reports whether the entry passes the selector.
func (s TypeSelector) matches(entry os.DirEntry) bool {
	switch s {
	case TypeFiles:
		return !entry.IsDir()
	case TypeDirs:
		return entry.IsDir()
	default:
		return true
	}
}

// List returns the names of the immediate children of path that pass
// the selector.
func List(path string, sel TypeSelector) ([]string, error) {
	entries, err := readDir(path, sel)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		if sel.matches(entry) {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// ListPaths returns the full paths of the immediate children of path
// that pass the selector.
func ListPaths(path string, sel TypeSelector) ([]string, error) {
	entries, err := readDir(path, sel)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, entry := range entries {
		if sel.matches(entry) {
			paths = append(paths, filepath.Join(path, entry.Name()))
		}
	}
	return paths, nil
}

// Map returns a name-to-full-path mapping of the immediate children of
// path that pass the selector.
func Map(path string, sel TypeSelector) (map[string]string, error) {
	entries, err := readDir(path, sel)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string)
	for _, entry := range entries {
		if sel.matches(entry) {
			out[entry.Name()] = filepath.Join(path, entry.Name())
		}
	}
	return out, nil
}

// Files returns the names of the regular entries of path.
func Files(path string) ([]string, error) { return List(path, TypeFiles) }

// FilePaths returns the full paths of the regular entries of path.
func FilePaths(path string) ([]string, error) { return ListPaths(path, TypeFiles) }

// Dirs returns the names of the subdirectories of path.
func Dirs(path string) ([]string, error) { return List(path, TypeDirs) }

// DirPaths returns the full paths of the subdirectories of path.
func DirPaths(path string) ([]string, error) { return ListPaths(path, TypeDirs) }

// FileMap returns a name-to-path mapping of the regular entries of
// path.
func FileMap(path string) (map[string]string, error) { return Map(path, TypeFiles) }

// DirMap returns a name-to-path mapping of the subdirectories of path.
func DirMap(path string) (map[string]string, error) { return Map(path, TypeDirs) }

// readDir validates the selector and lists the directory. Filesystem
// errors propagate wrapped.
func readDir(path string, sel TypeSelector) ([]os.DirEntry, error) {
	if err := sel.validate(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", path, err)
	}
	return entries, nil
}
