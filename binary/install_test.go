package binary

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstaller_FirstSuccessWins(t *testing.T) {
	root := t.TempDir()
	executable := touch(t, filepath.Join(root, "src", "hugo"))
	dirs := []string{
		filepath.Join(root, "a"),
		filepath.Join(root, "b"),
		filepath.Join(root, "c"),
		filepath.Join(root, "d"),
	}

	var attempted []string
	installer := NewInstaller(dirs)
	installer.Copy = func(src, dst string) error {
		attempted = append(attempted, filepath.Dir(dst))
		if len(attempted) <= 2 {
			return os.ErrPermission
		}
		return CopyFile(src, dst)
	}

	dir, err := installer.Install(executable)
	require.NoError(t, err)

	assert.Equal(t, dirs[2], dir)
	assert.Equal(t, dirs[:3], attempted)
	assert.FileExists(t, filepath.Join(dirs[2], "hugo"))
	assert.NoDirExists(t, dirs[3])
}

func TestInstaller_AllFail(t *testing.T) {
	root := t.TempDir()
	executable := touch(t, filepath.Join(root, "src", "hugo"))
	dirs := []string{
		filepath.Join(root, "first"),
		filepath.Join(root, "second"),
		filepath.Join(root, "third"),
	}

	installer := NewInstaller(dirs)
	installer.Copy = func(_, _ string) error { return os.ErrPermission }

	_, err := installer.Install(executable)
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrInstall)
	assert.ErrorIs(t, err, os.ErrPermission)
	for _, dir := range dirs {
		assert.Contains(t, err.Error(), dir)
	}

	var failure *InstallError
	require.True(t, errors.As(err, &failure))
	assert.Equal(t, dirs, failure.Dirs)
	assert.Len(t, failure.Causes, 3)
}

func TestInstaller_Overwrites(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "bin")
	require.NoError(t, os.MkdirAll(target, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "hugo"), []byte("old"), 0o755))

	executable := filepath.Join(root, "hugo")
	require.NoError(t, os.WriteFile(executable, []byte("new"), 0o755))

	dir, err := NewInstaller([]string{target}).Install(executable)
	require.NoError(t, err)
	assert.Equal(t, target, dir)

	content, err := os.ReadFile(filepath.Join(target, "hugo"))
	require.NoError(t, err)
	assert.Equal(t, "new", string(content))

	if runtime.GOOS != "windows" {
		info, err := os.Stat(filepath.Join(target, "hugo"))
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
	}
}

func TestInstaller_CreatesDirectories(t *testing.T) {
	root := t.TempDir()
	executable := touch(t, filepath.Join(root, "hugo"))
	target := filepath.Join(root, "nested", "bin")

	dir, err := NewInstaller([]string{target}).Install(executable)
	require.NoError(t, err)
	assert.Equal(t, target, dir)
	assert.FileExists(t, filepath.Join(target, "hugo"))
}
