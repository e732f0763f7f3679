package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	assert.True(t, FileExists(path))
	assert.False(t, FileExists(filepath.Join(dir, "missing.csv")))
	assert.False(t, FileExists(dir), "directories are not files")
}

func TestEnsureDir(t *testing.T) {
	t.Parallel()

	assert.NoError(t, EnsureDir(""))
	assert.NoError(t, EnsureDir("."))

	nested := filepath.Join(t.TempDir(), "a", "b", "c")
	require.NoError(t, EnsureDir(nested))
	info, err := os.Stat(nested)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestExtension(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "csv", Extension("clientes.csv"))
	assert.Equal(t, "xlsx", Extension("Clientes.XLSX"))
	assert.Equal(t, "", Extension("README"))
	assert.Equal(t, "csv", Extension(filepath.Join("a", "b", "data.CSV")))
}
