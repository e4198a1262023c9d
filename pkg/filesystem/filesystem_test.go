package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSSymlinkRoundTrip(t *testing.T) {
	fs := NewOS()
	dir := t.TempDir()

	source := filepath.Join(dir, "kick.wav")
	link := filepath.Join(dir, "All", "Pack__kick.wav")
	require.NoError(t, fs.WriteFile(source, []byte("audio"), 0644))
	require.NoError(t, fs.MkdirAll(filepath.Dir(link), 0755))
	require.NoError(t, fs.Symlink(source, link))

	target, err := fs.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, source, target)

	// Lstat sees the link itself, not the target
	info, err := fs.Lstat(link)
	require.NoError(t, err)
	assert.True(t, info.Mode()&os.ModeSymlink != 0)

	require.NoError(t, fs.Remove(link))
	_, err = fs.Lstat(link)
	assert.True(t, os.IsNotExist(err))

	// Removing the link never touches the source
	_, err = fs.Stat(source)
	assert.NoError(t, err)
}

func TestMemorySymlinkRoundTrip(t *testing.T) {
	fs := NewMemory()

	require.NoError(t, fs.MkdirAll("/organized/All", 0755))
	require.NoError(t, fs.Symlink("/library/Pack/kick.wav", "/organized/All/Pack__kick.wav"))

	target, err := fs.Readlink("/organized/All/Pack__kick.wav")
	require.NoError(t, err)
	assert.Equal(t, "/library/Pack/kick.wav", target)

	require.NoError(t, fs.Remove("/organized/All/Pack__kick.wav"))
	_, err = fs.Lstat("/organized/All/Pack__kick.wav")
	assert.Error(t, err)
}

func TestMemoryWalk(t *testing.T) {
	fs := NewMemory()
	require.NoError(t, fs.MkdirAll("/library/Pack/One_Shots", 0755))
	require.NoError(t, fs.WriteFile("/library/Pack/One_Shots/kick.wav", []byte("a"), 0644))
	require.NoError(t, fs.WriteFile("/library/Pack/One_Shots/snare.wav", []byte("a"), 0644))

	var files []string
	err := fs.Walk("/library", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Len(t, files, 2)
}

func TestMemoryReadFileOnDirFails(t *testing.T) {
	fs := NewMemory()
	require.NoError(t, fs.MkdirAll("/library", 0755))

	_, err := fs.ReadFile("/library")
	assert.Error(t, err)
}
