package fileio

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_RegularFile(t *testing.T) {
	path := writeFile(t, "file.txt", "hello\nworld\n")

	content, size, err := Load(path, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(12), size)
	assert.Equal(t, []byte("hello\nworld\n"), content)
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeFile(t, "empty.txt", "")

	content, size, err := Load(path, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), size)
	assert.NotNil(t, content)
	assert.Empty(t, content)
}

func TestLoad_NotFound(t *testing.T) {
	_, size, err := Load(filepath.Join(t.TempDir(), "missing.txt"), 0)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, int64(0), size)
}

func TestLoad_Directory(t *testing.T) {
	_, _, err := Load(t.TempDir(), 0)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLoad_Symlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation requires elevation on windows")
	}

	target := writeFile(t, "target.txt", "content")
	link := filepath.Join(filepath.Dir(target), "link.txt")
	require.NoError(t, os.Symlink(target, link))

	// A symlink is rejected even when it points at a regular file.
	_, _, err := Load(link, 0)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLoad_SizeLimit(t *testing.T) {
	path := writeFile(t, "big.txt", "0123456789")

	content, size, err := Load(path, 5)
	require.ErrorIs(t, err, ErrSizeLimit)
	assert.Nil(t, content)
	// Size is still reported so the caller can say "skipped: too large".
	assert.Equal(t, int64(10), size)
}

func TestLoad_SizeLimitExactFits(t *testing.T) {
	path := writeFile(t, "exact.txt", "0123456789")

	content, size, err := Load(path, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(10), size)
	assert.Len(t, content, 10)
}

func TestLoad_ZeroMaxBytesIsUnlimited(t *testing.T) {
	path := writeFile(t, "any.txt", "0123456789")

	_, _, err := Load(path, 0)
	require.NoError(t, err)
}

func TestLoad_PermissionDenied(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits not enforced here")
	}

	path := writeFile(t, "secret.txt", "classified")
	require.NoError(t, os.Chmod(path, 0o000))
	t.Cleanup(func() { _ = os.Chmod(path, 0o644) })

	content, size, err := Load(path, 0)
	require.ErrorIs(t, err, ErrRead)
	assert.Nil(t, content)
	assert.Equal(t, int64(10), size)
}
