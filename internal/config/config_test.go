package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Builtins(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "\t", cfg.Separator)
	assert.Equal(t, "new_sheet", cfg.SheetName)
	assert.Equal(t, "lines", cfg.Orient)
	assert.Equal(t, '\t', cfg.SeparatorRune())
}

func TestLoad_EnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("TABFILE_SEPARATOR", ",")
	t.Setenv("TABFILE_ORIENT", "records")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ",", cfg.Separator)
	assert.Equal(t, "records", cfg.Orient)
	assert.Equal(t, "new_sheet", cfg.SheetName)
}

func TestLoad_FileWithEnvPrecedence(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tabfile.yaml"),
		[]byte("separator: \";\"\nsheet_name: results\n"), 0644))
	t.Setenv("TABFILE_SEPARATOR", "|")

	cfg, err := Load()
	require.NoError(t, err)
	// Env wins over file, file wins over builtin.
	assert.Equal(t, "|", cfg.Separator)
	assert.Equal(t, "results", cfg.SheetName)
	assert.Equal(t, "lines", cfg.Orient)
}

func TestLoad_InvalidValues(t *testing.T) {
	chdir(t, t.TempDir())

	t.Run("multi-character separator", func(t *testing.T) {
		t.Setenv("TABFILE_SEPARATOR", "ab")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("unknown orient", func(t *testing.T) {
		t.Setenv("TABFILE_ORIENT", "columns")
		_, err := Load()
		assert.Error(t, err)
	})
}

// chdir switches the working directory for the test so the optional
// config file lookup is isolated.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
