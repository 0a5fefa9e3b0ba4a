package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomicCreatesParentDirs(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "nested", "dir", "data.json")

	require.NoError(t, WriteFileAtomic(dest, []byte(`[]`)))

	content, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(content))
}

func TestWriteFileAtomicReplacesExisting(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "data.json")

	require.NoError(t, WriteFileAtomic(dest, []byte(`["old"]`)))
	require.NoError(t, WriteFileAtomic(dest, []byte(`["new"]`)))

	content, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, `["new"]`, string(content))
}

func TestWriteFileAtomicLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "data.json")

	require.NoError(t, WriteFileAtomic(dest, []byte(`[]`)))
	require.NoError(t, WriteFileAtomic(dest, []byte(`[1]`)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "data.json", entries[0].Name())
}
