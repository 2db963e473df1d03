package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/wtlaunch/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseFS(t *testing.T, fs types.FS, root string) {
	testFile := filepath.Join(root, "settings.json")
	testContent := []byte(`{"profiles":[]}`)

	require.NoError(t, fs.MkdirAll(filepath.Join(root, "sub", "dir"), 0755))
	require.NoError(t, fs.WriteFile(testFile, testContent, 0644))

	info, err := fs.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, "settings.json", info.Name())
	assert.Equal(t, int64(len(testContent)), info.Size())

	content, err := fs.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, testContent, content)

	entries, err := fs.ReadDir(root)
	require.NoError(t, err)
	assert.Len(t, entries, 2) // settings.json and sub/

	require.NoError(t, fs.Remove(testFile))
	_, err = fs.Stat(testFile)
	assert.True(t, os.IsNotExist(err))
}

func TestNewOS(t *testing.T) {
	exerciseFS(t, NewOS(), t.TempDir())
}

func TestNewMemory(t *testing.T) {
	exerciseFS(t, NewMemory(), "/local")
}

func TestAferoReadFileOnDirectory(t *testing.T) {
	fs := NewMemory()
	require.NoError(t, fs.MkdirAll("/local/state", 0755))

	_, err := fs.ReadFile("/local/state")
	assert.Error(t, err)
}
