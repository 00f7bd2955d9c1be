package files

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "tabfile/errors"
)

// setupDir builds a directory holding two files and two subdirectories.
func setupDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "one.txt"), []byte("1"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "two.csv"), []byte("2"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub_a"), 0755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub_b"), 0755))
	return dir
}

func TestList(t *testing.T) {
	dir := setupDir(t)

	tests := []struct {
		name string
		sel  TypeSelector
		want []string
	}{
		{"all entries", TypeAll, []string{"one.txt", "sub_a", "sub_b", "two.csv"}},
		{"files only", TypeFiles, []string{"one.txt", "two.csv"}},
		{"dirs only", TypeDirs, []string{"sub_a", "sub_b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			names, err := List(dir, tt.sel)
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, names)
		})
	}
}

func TestList_InvalidSelector(t *testing.T) {
	dir := setupDir(t)

	_, err := List(dir, TypeSelector(7))
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeValidation))
	assert.Contains(t, err.Error(), "0, 1 or 2")
}

func TestListPaths(t *testing.T) {
	dir := setupDir(t)

	paths, err := FilePaths(dir)
	require.NoError(t, err)
	require.Len(t, paths, 2)
	for _, p := range paths {
		assert.True(t, strings.HasPrefix(p, dir), "path %s not under %s", p, dir)
	}
}

func TestMap(t *testing.T) {
	dir := setupDir(t)

	m, err := FileMap(dir)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"one.txt": filepath.Join(dir, "one.txt"),
		"two.csv": filepath.Join(dir, "two.csv"),
	}, m)

	dm, err := DirMap(dir)
	require.NoError(t, err)
	assert.Len(t, dm, 2)
	assert.Equal(t, filepath.Join(dir, "sub_a"), dm["sub_a"])
}

func TestList_MissingDirectory(t *testing.T) {
	_, err := List(filepath.Join(t.TempDir(), "missing"), TypeAll)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestList_NotADirectory(t *testing.T) {
	dir := setupDir(t)

	_, err := List(filepath.Join(dir, "one.txt"), TypeAll)
	assert.Error(t, err)
}

func TestReadWriteLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lines.txt")

	require.NoError(t, WriteLines(path, []string{"first", "second"}, false))
	require.NoError(t, WriteLines(path, []string{"third"}, true))

	lines, err := ReadLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "third"}, lines)

	// Truncating write replaces the content.
	require.NoError(t, WriteLines(path, []string{"only"}, false))
	lines, err = ReadLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"only"}, lines)
}

func TestTransformLines(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "src.txt")
	dst := filepath.Join(tmpDir, "dst.tsv")

	require.NoError(t, os.WriteFile(src, []byte("a:1\n\nskip-me\nb:2\n"), 0644))

	err := TransformLines(src, dst, []string{"key", "value"}, func(line string) []string {
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			return nil
		}
		return parts
	})
	require.NoError(t, err)

	lines, err := ReadLines(dst)
	require.NoError(t, err)
	assert.Equal(t, []string{"key\tvalue", "a\t1", "b\t2"}, lines)
}

func TestTransformLines_MissingSource(t *testing.T) {
	tmpDir := t.TempDir()
	err := TransformLines(
		filepath.Join(tmpDir, "missing.txt"),
		filepath.Join(tmpDir, "out.txt"),
		nil,
		func(line string) []string { return []string{line} },
	)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}
