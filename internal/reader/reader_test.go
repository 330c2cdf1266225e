package reader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saldo-dev/saldo/internal/classify"
	"github.com/saldo-dev/saldo/internal/model"
)

func TestRegistry_GetUnknown(t *testing.T) {
	r := NewRegistry()
	assert.Nil(t, r.Get("nonexistent"))
}

func TestRegistry_CaseInsensitive(t *testing.T) {
	r := DefaultRegistry()
	assert.NotNil(t, r.Get("MBank"))
	assert.NotNil(t, r.Get("MBANK"))
	assert.NotNil(t, r.Get("PkoSA"))
}

func TestDefaultRegistry_BuildsReaders(t *testing.T) {
	r := DefaultRegistry()

	mk := r.Get("mbank")
	require.NotNil(t, mk)
	assert.Equal(t, model.BankMBank, mk(readerSource(""), classify.Default(), zerolog.Nop()).Bank())

	pk := r.Get("pkosa")
	require.NotNil(t, pk)
	assert.Equal(t, model.BankPkoSA, pk(readerSource(""), classify.Default(), zerolog.Nop()).Bank())
}

func TestScan_FindsCSVs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mbank.csv"), []byte("data"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("data"), 0o644))

	files, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "mbank.csv", files[0].Name)
	assert.Equal(t, filepath.Join(dir, "mbank.csv"), files[0].Path)
}

func TestScan_IgnoresSubdirs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "old"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "old", "a.csv"), []byte("data"), 0o644))

	files, err := Scan(dir)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestScan_MissingDir(t *testing.T) {
	files, err := Scan(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Nil(t, files)
}

func TestFileSource_MissingFile(t *testing.T) {
	src := FileSource(filepath.Join(t.TempDir(), "missing.csv"))
	_, err := src()
	assert.Error(t, err)
}
