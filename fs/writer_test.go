package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	docfs "github.com/fwojciec/docindex/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFile(t *testing.T) {
	t.Parallel()

	t.Run("creates parent directories and writes content", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out", "index.html")

		require.NoError(t, docfs.WriteFile(path, []byte("<div></div>")))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "<div></div>", string(data))
	})

	t.Run("replaces existing file without leaving temp files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "index.html")
		require.NoError(t, os.WriteFile(path, []byte("old"), 0644))

		require.NoError(t, docfs.WriteFile(path, []byte("new")))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new", string(data))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})
}
