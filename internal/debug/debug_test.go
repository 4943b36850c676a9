package debug

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_CreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "debug.log")

	f, err := Open(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, path, f.Path())
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestFile_AppendsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")

	for _, line := range []string{"first\n", "second\n"} {
		f, err := Open(path)
		require.NoError(t, err)
		_, err = f.Write([]byte(line))
		require.NoError(t, err)
		require.NoError(t, f.Close())
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", string(data))
}

func TestFile_WriteAfterClose(t *testing.T) {
	f, err := Open(filepath.Join(t.TempDir(), "debug.log"))
	require.NoError(t, err)
	require.NoError(t, f.Close())
	require.NoError(t, f.Close())

	_, err = f.Write([]byte("late"))
	assert.True(t, errors.Is(err, os.ErrClosed))
}

func TestOpen_DefaultPath(t *testing.T) {
	t.Chdir(t.TempDir())

	f, err := Open("")
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, DefaultPath, f.Path())
}

func TestOpen_InvalidDirectory(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	_, err := Open(filepath.Join(blocker, "debug.log"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create log directory")
}
